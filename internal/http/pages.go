package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hbnb-front/internal/domain"
	"hbnb-front/internal/render"
	"hbnb-front/internal/service"
)

// flashCookie lleva los alerts de una petición a la página a la que se redirige.
const flashCookie = "flash"

var pageTitles = map[string]string{
	service.PageIndex:     "HBnB - Places",
	service.PagePlace:     "HBnB - Place Details",
	service.PageLogin:     "HBnB - Login",
	service.PageAddReview: "HBnB - Add Review",
}

type priceOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageView struct {
	Title        string
	Doc          *render.Document
	ListingID    string
	PriceOptions []priceOption
}

// PageHandler renderiza las páginas ejecutando los controladores sobre un render.Document.
type PageHandler struct {
	logger     *zap.Logger
	dispatcher *service.Dispatcher
	cookieName string
}

func NewPageHandler(logger *zap.Logger, dispatcher *service.Dispatcher, cookieName string) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cookieName == "" {
		cookieName = service.DefaultSessionCookie
	}
	return &PageHandler{
		logger:     logger,
		dispatcher: dispatcher,
		cookieName: cookieName,
	}
}

// Show maneja GET /:page.
func (h *PageHandler) Show(c *gin.Context) {
	page := service.PageIdentity(c.Param("page"))
	if _, ok := pageTitles[page]; !ok {
		c.String(http.StatusNotFound, "page not found")
		return
	}
	doc := render.NewDocument()
	err := h.dispatcher.Load(c.Request.Context(), h.request(c, page, doc))
	h.logOutcome(page, err)
	h.finish(c, page, doc)
}

// SelectPlace maneja el click en "View Details": solo gate y navegación.
func (h *PageHandler) SelectPlace(c *gin.Context) {
	doc := render.NewDocument()
	ctrl := h.dispatcher.Listing(h.dispatcher.Page(h.request(c, service.PageIndex, doc)))
	err := ctrl.Enter(c.Request.Context())
	if err == nil {
		err = ctrl.Select(c.PostForm("select"))
	}
	h.logOutcome(service.PageIndex, err)
	h.finish(c, service.PageIndex, doc)
}

// Login maneja el envío del formulario de login.
func (h *PageHandler) Login(c *gin.Context) {
	doc := render.NewDocument()
	req := h.request(c, service.PageLogin, doc)
	err := h.dispatcher.Login(req.Session, h.dispatcher.Page(req)).
		Submit(c.Request.Context(), c.PostForm("email"), c.PostForm("password"))
	h.logOutcome(service.PageLogin, err)
	h.finish(c, service.PageLogin, doc)
}

// AddReview carga el contexto de la review y envía el formulario.
func (h *PageHandler) AddReview(c *gin.Context) {
	doc := render.NewDocument()
	ctrl := h.dispatcher.Review(h.dispatcher.Page(h.request(c, service.PageAddReview, doc)))
	err := ctrl.Load(c.Request.Context(), c.Query("id"))
	if err == nil {
		err = ctrl.Submit(c.Request.Context(), c.PostForm("review"), c.PostForm("rating"))
	}
	h.logOutcome(service.PageAddReview, err)
	h.finish(c, service.PageAddReview, doc)
}

func (h *PageHandler) request(c *gin.Context, page string, doc *render.Document) service.PageRequest {
	return service.PageRequest{
		Path:    page,
		Query:   c.Request.URL.Query(),
		Session: cookieSession{c: c},
		Target:  doc,
	}
}

func (h *PageHandler) logOutcome(page string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAuthDenied):
		h.logger.Debug("page gated", zap.String("page", page))
	default:
		h.logger.Debug("page finished with error", zap.String("page", page), zap.Error(err))
	}
}

// finish convierte la navegación en un 303; si no hay, renderiza la plantilla.
func (h *PageHandler) finish(c *gin.Context, page string, doc *render.Document) {
	alerts := strings.Join(doc.Alerts(), " ")
	if target := doc.Navigation(); target != "" {
		if alerts != "" {
			c.SetCookie(flashCookie, alerts, 0, "/", "", false, true)
		}
		c.Redirect(http.StatusSeeOther, target)
		return
	}

	if flash, err := c.Cookie(flashCookie); err == nil && flash != "" {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
		if alerts == "" {
			alerts = flash
		}
	}
	if alerts != "" && !doc.Written(service.RegionNotice) {
		doc.SetText(service.RegionNotice, alerts)
	}

	c.HTML(http.StatusOK, page, pageView{
		Title:        pageTitles[page],
		Doc:          doc,
		ListingID:    c.Query("id"),
		PriceOptions: priceOptions(c.Query("price")),
	})
}

func priceOptions(current string) []priceOption {
	if current == "" {
		current = service.FilterAll
	}
	opts := []priceOption{
		{Value: service.FilterAll, Label: "All"},
		{Value: "$10", Label: "$10"},
		{Value: "$50", Label: "$50"},
		{Value: "$100", Label: "$100"},
	}
	for i := range opts {
		opts[i].Selected = opts[i].Value == current
	}
	return opts
}
