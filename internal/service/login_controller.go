package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hbnb-front/internal/domain"
)

type LoginAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginController maneja login.html; no pasa por el gate.
type LoginController struct {
	logger  *zap.Logger
	api     LoginAPI
	session SessionStore
	page    Page
}

func NewLoginController(logger *zap.Logger, api LoginAPI, session SessionStore, page Page) *LoginController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginController{
		logger:  logger,
		api:     api,
		session: session,
		page:    page,
	}
}

// Load no hace nada: la página de login es solo el formulario.
func (c *LoginController) Load(context.Context) error {
	return nil
}

// Submit guarda el token y navega al índice, o muestra el error del servidor en rojo.
func (c *LoginController) Submit(ctx context.Context, email, password string) error {
	token, err := c.api.Login(ctx, email, password)
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) {
			c.page.Target.SetText(RegionLoginResult, de.Message)
			c.page.Target.SetStyle(RegionLoginResult, "color", "red")
			c.logger.Info("login rejected", zap.String("error", de.Message))
			return err
		}
		return c.page.fail(c.logger, "login", err)
	}

	c.session.WriteToken(c.page.cookieName(), token)
	c.page.Target.Navigate("index.html")
	return nil
}
