package service

import (
	"strings"

	"hbnb-front/internal/domain"
)

const greetingPrefix = "Hello, user "

// ParseUserID extrae el id del saludo de /auth/protected ("Hello, user <id>").
func ParseUserID(message string) (string, error) {
	if !strings.HasPrefix(message, greetingPrefix) {
		return "", &domain.ParseError{What: "greeting", Input: message}
	}
	id := strings.TrimSpace(strings.TrimPrefix(message, greetingPrefix))
	if id == "" {
		return "", &domain.ParseError{What: "greeting", Input: message}
	}
	return id, nil
}
