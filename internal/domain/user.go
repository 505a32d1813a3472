package domain

import "strings"

// User es el autor de una review o el anfitrión de un listing.
type User struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

// FullName devuelve "nombre apellido" tal como se muestra en las páginas.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
