package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type AuthChecker interface {
	CheckAuth(ctx context.Context, token string) (string, error)
}

// AuthGate confirma contra la API remota que el token sigue siendo válido.
type AuthGate struct {
	api    AuthChecker
	logger *zap.Logger
}

func NewAuthGate(api AuthChecker, logger *zap.Logger) *AuthGate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthGate{api: api, logger: logger}
}

// IsAuthenticated falla cerrado: token ausente o cualquier error devuelven false.
func (g *AuthGate) IsAuthenticated(ctx context.Context, token string) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}
	msg, err := g.api.CheckAuth(ctx, token)
	if err != nil {
		g.logger.Info("auth check failed", zap.Error(err))
		return false
	}
	return msg != ""
}
