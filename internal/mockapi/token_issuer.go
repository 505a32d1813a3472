package mockapi

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer emite y valida los access tokens de la API de desarrollo.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	store  TokenStore
}

type Claims struct {
	UserID  string `json:"uid"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

func NewTokenIssuer(secret string, ttl time.Duration, store TokenStore) *TokenIssuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if store == nil {
		store = NewMemoryTokenStore()
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "hbnb-api",
		store:  store,
	}
}

func (s *TokenIssuer) Issue(user StoredUser) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}
	now := time.Now().UTC()
	jti := uuid.NewString()
	claims := Claims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if err := s.store.Store(jti, user.ID, s.ttl); err != nil {
		return "", err
	}
	return signed, nil
}

// Parse valida firma, emisor y que el jti siga registrado.
func (s *TokenIssuer) Parse(token string) (Claims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(token) == "" {
		return Claims{}, ErrTokenInvalid
	}
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if strings.TrimSpace(claims.UserID) == "" || claims.Subject != claims.UserID || claims.Issuer != s.issuer {
		return Claims{}, ErrTokenInvalid
	}
	ok, err := s.store.Exists(claims.ID)
	if err != nil || !ok {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}

// Revoke invalida un token en el servidor.
func (s *TokenIssuer) Revoke(token string) error {
	claims, err := s.Parse(token)
	if err != nil {
		return err
	}
	return s.store.Revoke(claims.ID)
}
