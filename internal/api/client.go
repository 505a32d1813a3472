package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"hbnb-front/internal/domain"
)

const DefaultBaseURL = "http://127.0.0.1:5000/api/v1"

// Client envuelve los endpoints de la API remota de HBnB.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient construye un cliente apuntando a la base /api/v1.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// WithHTTPClient reemplaza el http.Client subyacente (tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.client = hc
	}
	return c
}

// Login maneja POST /auth/login y devuelve el access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", &domain.ParseError{What: "login response", Input: "access_token missing"}
	}
	return out.AccessToken, nil
}

// CheckAuth maneja GET /auth/protected y devuelve el mensaje de saludo.
func (c *Client) CheckAuth(ctx context.Context, token string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "check auth", http.MethodGet, "/auth/protected", token, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) ListListings(ctx context.Context) ([]domain.ListingSummary, error) {
	var out []domain.ListingSummary
	if err := c.do(ctx, "list listings", http.MethodGet, "/places/", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetListing(ctx context.Context, token, id string) (domain.Listing, error) {
	var out domain.Listing
	if err := c.do(ctx, "get listing", http.MethodGet, "/places/"+url.PathEscape(id), token, nil, &out); err != nil {
		return domain.Listing{}, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "get user", http.MethodGet, "/users/"+url.PathEscape(id), "", nil, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (c *Client) CreateReview(ctx context.Context, token string, payload domain.ReviewPayload) (domain.CreatedReview, error) {
	var out domain.CreatedReview
	if err := c.do(ctx, "create review", http.MethodPost, "/reviews/", token, payload, &out); err != nil {
		return domain.CreatedReview{}, err
	}
	return out, nil
}

// do emite una sola petición y clasifica el resultado en transporte, dominio o parseo.
func (c *Client) do(ctx context.Context, op, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", op, err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", zap.String("op", op), zap.Error(err))
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if msg, ok := errorField(respBody); ok {
		c.logger.Debug("api domain error",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("error", msg),
		)
		return &domain.DomainError{Op: op, Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		c.logger.Warn("api unexpected body",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return &domain.ParseError{What: op + " response", Input: truncate(string(respBody), 120), Err: err}
	}
	return nil
}

// errorField detecta el cuerpo {"error": "..."} sin importar el status HTTP.
func errorField(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil || len(envelope.Error) == 0 {
		return "", false
	}
	var msg string
	if err := json.Unmarshal(envelope.Error, &msg); err != nil {
		// Algunos endpoints devuelven error como objeto.
		msg = string(envelope.Error)
	}
	if msg == "" || msg == "null" {
		return "", false
	}
	return msg, true
}

// truncate corta a lo sumo n bytes sin partir una runa.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// IsTransport reporta si err proviene de un fallo de red.
func IsTransport(err error) bool {
	var te *domain.TransportError
	return errors.As(err, &te)
}
