package service

import "strings"

const (
	starFilled = "★"
	starEmpty  = "☆"
	maxStars   = 5
)

// Stars dibuja rating sobre 5; no valida el rango.
func Stars(rating int) string {
	var b strings.Builder
	for i := 0; i < maxStars; i++ {
		if i < rating {
			b.WriteString(starFilled)
		} else {
			b.WriteString(starEmpty)
		}
	}
	return b.String()
}
