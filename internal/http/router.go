package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hbnb-front/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter configura el router de Gin del front con sus plantillas embebidas.
func NewRouter(logger *zap.Logger, pages *PageHandler) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/"+service.PageIndex)
	})
	r.GET("/:page", pages.Show)
	r.POST("/"+service.PageIndex, pages.SelectPlace)
	r.POST("/"+service.PageLogin, pages.Login)
	r.POST("/"+service.PageAddReview, pages.AddReview)
	return r
}
