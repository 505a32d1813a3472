package mockapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hbnb-front/internal/domain"
	apphttp "hbnb-front/internal/http"
)

const claimsKey = "auth_claims"

// Handler expone el contrato /api/v1 sobre el Store en memoria.
type Handler struct {
	logger  *zap.Logger
	store   *Store
	tokens  *TokenIssuer
	limiter LoginLimiter
}

func NewHandler(logger *zap.Logger, store *Store, tokens *TokenIssuer, limiter LoginLimiter) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:  logger,
		store:   store,
		tokens:  tokens,
		limiter: limiter,
	}
}

// NewRouter arma el router de la API de desarrollo.
func NewRouter(logger *zap.Logger, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(apphttp.RequestLogger(logger), gin.Recovery(), apphttp.JSONContentType())

	v1 := r.Group("/api/v1")
	v1.POST("/auth/login", h.Login)
	v1.GET("/auth/protected", h.RequireToken(), h.Protected)
	v1.GET("/places/", h.ListPlaces)
	v1.GET("/places/:id", h.RequireToken(), h.GetPlace)
	v1.GET("/users/:id", h.GetUser)
	v1.POST("/reviews/", h.RequireToken(), h.CreateReview)
	return r
}

// Login maneja POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidInput.Error()})
		return
	}
	if h.limiter != nil && !h.limiter.Allow(req.Email) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts"})
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrBadCredentials.Error()})
		return
	}
	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("issue token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// RequireToken valida el bearer token y guarda los claims en el contexto.
func (h *Handler) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		claims, err := h.tokens.Parse(strings.TrimSpace(header[len("Bearer "):]))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func authClaims(c *gin.Context) (Claims, bool) {
	val, ok := c.Get(claimsKey)
	if !ok {
		return Claims{}, false
	}
	claims, ok := val.(Claims)
	return claims, ok
}

// Protected maneja GET /auth/protected.
func (h *Handler) Protected(c *gin.Context) {
	claims, _ := authClaims(c)
	c.JSON(http.StatusOK, gin.H{"message": "Hello, user " + claims.UserID})
}

func (h *Handler) ListPlaces(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Places())
}

func (h *Handler) GetPlace(c *gin.Context) {
	place, err := h.store.Place(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, place)
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.store.User(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateReview maneja POST /reviews/; el autor debe ser el dueño del token.
func (h *Handler) CreateReview(c *gin.Context) {
	var req domain.ReviewPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidInput.Error()})
		return
	}
	claims, _ := authClaims(c)
	if !claims.IsAdmin && claims.UserID != req.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized action"})
		return
	}

	review, err := h.store.AddReview(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, domain.CreatedReview{
		ID:      review.ID,
		Text:    review.Text,
		Rating:  review.Rating,
		PlaceID: req.PlaceID,
		UserID:  review.UserID,
	})
}
