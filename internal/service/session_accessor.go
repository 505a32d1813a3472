package service

import "strings"

// SessionAccessor lee tokens del estado de sesión del cliente.
type SessionAccessor interface {
	ReadToken(name string) (string, bool)
}

// SessionStore agrega escritura; solo el login la usa.
type SessionStore interface {
	SessionAccessor
	WriteToken(name, value string)
}

// CookieSession interpreta una cadena estilo document.cookie ("a=1; token=xyz").
type CookieSession struct {
	Raw string
}

func (s CookieSession) ReadToken(name string) (string, bool) {
	return ReadCookieToken(s.Raw, name)
}

// ReadCookieToken devuelve el valor de la primera clave que coincide tras el trim.
// Entradas sin "=" se ignoran; el valor se devuelve tal cual.
func ReadCookieToken(raw, name string) (string, bool) {
	if raw == "" {
		return "", false
	}
	for _, entry := range strings.Split(raw, ";") {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == name {
			return value, true
		}
	}
	return "", false
}
