package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"hbnb-front/internal/domain"
)

const reviewSubmittedMessage = "Review submitted successfully!"

type ReviewAPI interface {
	AuthChecker
	GetListing(ctx context.Context, token, id string) (domain.Listing, error)
	CreateReview(ctx context.Context, token string, payload domain.ReviewPayload) (domain.CreatedReview, error)
}

// ReviewController maneja add_review.html.
type ReviewController struct {
	logger *zap.Logger
	api    ReviewAPI
	gate   *AuthGate
	page   Page

	mu        sync.Mutex
	ready     bool
	token     string
	userID    string
	listingID string
}

func NewReviewController(logger *zap.Logger, api ReviewAPI, gate *AuthGate, page Page) *ReviewController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewController{
		logger: logger,
		api:    api,
		gate:   gate,
		page:   page,
	}
}

// Load resuelve el usuario actual y el contexto del listing; deja el formulario listo.
func (c *ReviewController) Load(ctx context.Context, listingID string) error {
	token, err := c.page.enter(ctx, c.gate)
	if err != nil {
		return err
	}

	msg, err := c.api.CheckAuth(ctx, token)
	if err != nil {
		return c.page.fail(c.logger, "resolve current user", err)
	}
	userID, err := ParseUserID(msg)
	if err != nil {
		return c.page.fail(c.logger, "resolve current user", err)
	}

	if strings.TrimSpace(listingID) == "" {
		return c.page.fail(c.logger, "load listing", &domain.ParseError{What: "listing id", Input: listingID})
	}
	listing, err := c.api.GetListing(ctx, token, listingID)
	if err != nil {
		return c.page.fail(c.logger, "load listing", err)
	}
	c.page.Target.SetText(RegionPlaceTitle, "Reviewing: "+listing.Title)

	c.mu.Lock()
	c.ready = true
	c.token = token
	c.userID = userID
	c.listingID = listingID
	c.mu.Unlock()
	return nil
}

// UserID devuelve el id resuelto en Load.
func (c *ReviewController) UserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

// Submit publica la review; un error de dominio se muestra literal en review-result.
func (c *ReviewController) Submit(ctx context.Context, text, ratingInput string) error {
	c.mu.Lock()
	ready, token, userID, listingID := c.ready, c.token, c.userID, c.listingID
	c.mu.Unlock()
	if !ready {
		return domain.ErrNotReady
	}

	rating, err := ParseRating(ratingInput)
	if err != nil {
		c.showResult("Rating must be a whole number")
		return err
	}

	_, err = c.api.CreateReview(ctx, token, domain.ReviewPayload{
		Text:    text,
		Rating:  rating,
		UserID:  userID,
		PlaceID: listingID,
	})
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) {
			c.showResult(de.Message)
			c.logger.Info("review rejected", zap.String("listing_id", listingID), zap.String("error", de.Message))
			return err
		}
		return c.page.fail(c.logger, "create review", err)
	}

	c.page.Target.Alert(reviewSubmittedMessage)
	c.page.Target.Navigate(placeURL(listingID))
	return nil
}

func (c *ReviewController) showResult(msg string) {
	c.page.Target.SetText(RegionReviewResult, msg)
	c.page.Target.SetStyle(RegionReviewResult, "color", "red")
}
