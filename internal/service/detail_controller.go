package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hbnb-front/internal/domain"
	"hbnb-front/internal/render"
)

const unknownAuthor = "Unknown guest"

type DetailAPI interface {
	AuthChecker
	GetListing(ctx context.Context, token, id string) (domain.Listing, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// DetailController maneja place.html.
type DetailController struct {
	logger      *zap.Logger
	api         DetailAPI
	gate        *AuthGate
	page        Page
	concurrency int
}

func NewDetailController(logger *zap.Logger, api DetailAPI, gate *AuthGate, page Page, concurrency int) *DetailController {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &DetailController{
		logger:      logger,
		api:         api,
		gate:        gate,
		page:        page,
		concurrency: concurrency,
	}
}

// Load renderiza el detalle y luego todas las reviews en el orden recibido.
func (c *DetailController) Load(ctx context.Context, listingID string) error {
	token, err := c.page.enter(ctx, c.gate)
	if err != nil {
		return err
	}
	if strings.TrimSpace(listingID) == "" {
		return c.page.fail(c.logger, "load listing", &domain.ParseError{What: "listing id", Input: listingID})
	}

	listing, err := c.api.GetListing(ctx, token, listingID)
	if err != nil {
		return c.page.fail(c.logger, "load listing", err)
	}

	t := c.page.Target
	t.Replace(RegionPlaceUser, render.El("strong", "", "Host:"), render.Node{Text: " " + listing.Owner.FullName()})
	t.SetText(RegionPlaceTitle, listing.Title)
	t.Replace(RegionPlaceDescription, render.El("strong", "", "Description:"), render.Node{Text: " " + listing.Description})
	t.Replace(RegionPlacePrice, render.El("strong", "", "Price per night:"), render.Node{Text: " $" + formatPrice(listing.Price)})

	amenities := make([]render.Node, 0, len(listing.Amenities))
	for _, a := range listing.Amenities {
		amenities = append(amenities, render.El("span", "amenity", a.Name))
	}
	t.Replace(RegionPlaceAmenities, amenities...)

	authors, err := c.resolveAuthors(ctx, listing.Reviews)
	if err != nil {
		return c.page.fail(c.logger, "resolve review authors", err)
	}

	section := make([]render.Node, 0, len(listing.Reviews)+2)
	section = append(section, render.El("h2", "", "Reviews"))
	for i, r := range listing.Reviews {
		section = append(section, reviewCard(authors[i], r))
	}
	section = append(section, render.El("a", "details-button", "Add Review").With("href", addReviewURL(listingID)))
	t.Replace(RegionReviews, section...)
	return nil
}

// resolveAuthors busca los autores en paralelo; el resultado queda indexado como reviews.
func (c *DetailController) resolveAuthors(ctx context.Context, reviews []domain.Review) ([]string, error) {
	names := make([]string, len(reviews))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, r := range reviews {
		i, r := i, r
		g.Go(func() error {
			user, err := c.api.GetUser(gctx, r.UserID)
			if err != nil {
				var de *domain.DomainError
				if errors.As(err, &de) {
					c.logger.Info("review author not found", zap.String("user_id", r.UserID), zap.String("error", de.Message))
					names[i] = unknownAuthor
					return nil
				}
				return err
			}
			names[i] = user.FullName()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

func reviewCard(author string, r domain.Review) render.Node {
	return render.El("div", "review-card", "",
		render.El("p", "review-author", author),
		render.El("p", "", r.Text),
		render.El("div", "rating", Stars(r.Rating)),
	)
}
