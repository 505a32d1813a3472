package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb-front/internal/service"
)

// cookieSession adapta las cookies del request de gin a service.SessionStore.
type cookieSession struct {
	c *gin.Context
}

func (s cookieSession) ReadToken(name string) (string, bool) {
	return service.CookieSession{Raw: s.c.Request.Header.Get("Cookie")}.ReadToken(name)
}

// WriteToken deja una cookie de sesión (sin expiración) con path "/".
func (s cookieSession) WriteToken(name, value string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(name, value, 0, "/", "", false, true)
}
