package service

import (
	"context"
	"net/url"
	"path"

	"go.uber.org/zap"

	"hbnb-front/internal/domain"
)

// Identidades de página reconocidas.
const (
	PageIndex     = "index.html"
	PagePlace     = "place.html"
	PageLogin     = "login.html"
	PageAddReview = "add_review.html"
)

// APIClient es la unión de lo que usan todos los controladores.
type APIClient interface {
	LoginAPI
	AuthChecker
	ListListings(ctx context.Context) ([]domain.ListingSummary, error)
	GetListing(ctx context.Context, token, id string) (domain.Listing, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	CreateReview(ctx context.Context, token string, payload domain.ReviewPayload) (domain.CreatedReview, error)
}

// PageRequest describe una carga de página.
type PageRequest struct {
	Path    string
	Query   url.Values
	Session SessionStore
	Target  RenderTarget
}

// Dispatcher elige exactamente un controlador según la identidad de la página.
type Dispatcher struct {
	logger      *zap.Logger
	api         APIClient
	gate        *AuthGate
	cookieName  string
	concurrency int
}

func NewDispatcher(logger *zap.Logger, api APIClient, cookieName string, concurrency int) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return &Dispatcher{
		logger:      logger,
		api:         api,
		gate:        NewAuthGate(api, logger),
		cookieName:  cookieName,
		concurrency: concurrency,
	}
}

// PageIdentity devuelve el último segmento del path.
func PageIdentity(p string) string {
	base := path.Base("/" + p)
	if base == "/" || base == "." {
		return ""
	}
	return base
}

// Load dispara el controlador de la página; identidades desconocidas no hacen nada.
func (d *Dispatcher) Load(ctx context.Context, req PageRequest) error {
	page := d.Page(req)
	switch PageIdentity(req.Path) {
	case PageIndex:
		return d.Listing(page).Load(ctx, req.Query.Get("price"))
	case PagePlace:
		return d.Detail(page).Load(ctx, req.Query.Get("id"))
	case PageAddReview:
		return d.Review(page).Load(ctx, req.Query.Get("id"))
	case PageLogin:
		return d.Login(req.Session, page).Load(ctx)
	default:
		d.logger.Debug("no controller for page", zap.String("path", req.Path))
		return nil
	}
}

// Page arma la página anfitriona para los controladores de formularios.
func (d *Dispatcher) Page(req PageRequest) Page {
	return Page{Session: req.Session, Target: req.Target, CookieName: d.cookieName}
}

func (d *Dispatcher) Listing(page Page) *ListingController {
	return NewListingController(d.logger.Named("listing"), d.api, d.gate, page, d.concurrency)
}

func (d *Dispatcher) Detail(page Page) *DetailController {
	return NewDetailController(d.logger.Named("detail"), d.api, d.gate, page, d.concurrency)
}

func (d *Dispatcher) Review(page Page) *ReviewController {
	return NewReviewController(d.logger.Named("review"), d.api, d.gate, page)
}

func (d *Dispatcher) Login(session SessionStore, page Page) *LoginController {
	return NewLoginController(d.logger.Named("login"), d.api, session, page)
}
