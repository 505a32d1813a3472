package service

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"hbnb-front/internal/domain"
	"hbnb-front/internal/render"
)

// Ids de las regiones que escriben los controladores.
const (
	RegionLoginLink        = "login-link"
	RegionNotice           = "notice"
	RegionPlaces           = "places-container"
	RegionPlaceUser        = "place-user"
	RegionPlaceTitle       = "place-title"
	RegionPlaceDescription = "place-description"
	RegionPlacePrice       = "place-price"
	RegionPlaceAmenities   = "place-amenities"
	RegionReviews          = "reviews-section"
	RegionLoginResult      = "login-result"
	RegionReviewResult     = "review-result"
)

const DefaultSessionCookie = "token"

const (
	noticeTransport         = "Could not reach the server. Please try again later."
	noticeUnexpectedPayload = "The server sent an unexpected response."
)

// RenderTarget abstrae el documento; render.Document es la implementación en memoria.
type RenderTarget interface {
	SetText(region, text string)
	SetStyle(region, property, value string)
	Hide(region string)
	Replace(region string, nodes ...render.Node)
	Navigate(url string)
	Alert(message string)
}

// Page agrupa lo que un controlador necesita de la página anfitriona.
type Page struct {
	Session    SessionAccessor
	Target     RenderTarget
	CookieName string
}

func (p Page) cookieName() string {
	if p.CookieName == "" {
		return DefaultSessionCookie
	}
	return p.CookieName
}

// enter ejecuta el gate; si pasa, oculta el enlace de login y devuelve el token.
func (p Page) enter(ctx context.Context, gate *AuthGate) (string, error) {
	token, _ := p.Session.ReadToken(p.cookieName())
	if !gate.IsAuthenticated(ctx, token) {
		return "", domain.ErrAuthDenied
	}
	p.Target.Hide(RegionLoginLink)
	return token, nil
}

// fail muestra el aviso correspondiente al tipo de error y lo devuelve sin cambios.
func (p Page) fail(logger *zap.Logger, op string, err error) error {
	var (
		de *domain.DomainError
		pe *domain.ParseError
	)
	switch {
	case errors.As(err, &de):
		p.Target.SetText(RegionNotice, de.Message)
	case errors.As(err, &pe):
		p.Target.SetText(RegionNotice, noticeUnexpectedPayload)
	default:
		p.Target.SetText(RegionNotice, noticeTransport)
	}
	logger.Warn(op+" failed", zap.Error(err))
	return err
}

func placeURL(id string) string {
	return "place.html?id=" + url.QueryEscape(id)
}

func addReviewURL(id string) string {
	return "add_review.html?id=" + url.QueryEscape(id)
}
