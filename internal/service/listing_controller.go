package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hbnb-front/internal/domain"
	"hbnb-front/internal/render"
)

type ListingAPI interface {
	AuthChecker
	ListListings(ctx context.Context) ([]domain.ListingSummary, error)
	GetListing(ctx context.Context, token, id string) (domain.Listing, error)
}

// ListingController maneja index.html: listado, filtro de precio y selección.
type ListingController struct {
	logger      *zap.Logger
	api         ListingAPI
	gate        *AuthGate
	page        Page
	concurrency int

	mu    sync.Mutex
	token string
	ready bool

	generation atomic.Uint64
	renderMu   sync.Mutex
}

func NewListingController(logger *zap.Logger, api ListingAPI, gate *AuthGate, page Page, concurrency int) *ListingController {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ListingController{
		logger:      logger,
		api:         api,
		gate:        gate,
		page:        page,
		concurrency: concurrency,
	}
}

// Load pasa el gate y aplica el filtro inicial ("all" si viene vacío).
func (c *ListingController) Load(ctx context.Context, initialFilter string) error {
	if err := c.Enter(ctx); err != nil {
		return err
	}
	if initialFilter == "" {
		initialFilter = FilterAll
	}
	return c.ApplyFilter(ctx, initialFilter)
}

// Enter solo pasa el gate y deja el controlador listo para Select, sin pedir listings.
func (c *ListingController) Enter(ctx context.Context) error {
	token, err := c.page.enter(ctx, c.gate)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.token = token
	c.ready = true
	c.mu.Unlock()
	return nil
}

// ApplyFilter re-ejecuta todo el pipeline; un pipeline superado por otro más nuevo no escribe.
func (c *ListingController) ApplyFilter(ctx context.Context, value string) error {
	token, ok := c.session()
	if !ok {
		return domain.ErrNotReady
	}

	// Un filtro inválido también invalida los pipelines en curso.
	gen := c.generation.Add(1)
	filter, err := ParsePriceFilter(value)
	if err != nil {
		return c.page.fail(c.logger, "apply price filter", err)
	}

	summaries, err := c.api.ListListings(ctx)
	if err != nil {
		return c.abort(gen, "list listings", err)
	}

	details, err := c.fetchDetails(ctx, token, summaries)
	if err != nil {
		return c.abort(gen, "fetch listing prices", err)
	}

	cards := make([]render.Node, 0, len(summaries))
	for i, s := range summaries {
		d := details[i]
		if d == nil || !filter.Retain(d.Price) {
			continue
		}
		cards = append(cards, listingCard(s.ID, s.Title, d.Price))
	}

	c.renderMu.Lock()
	defer c.renderMu.Unlock()
	if gen != c.generation.Load() {
		c.logger.Debug("discarding stale listing render", zap.Uint64("generation", gen))
		return nil
	}
	c.page.Target.Replace(RegionPlaces, cards...)
	return nil
}

// fetchDetails pide el detalle de cada listing en paralelo y conserva el índice original.
// Un error de dominio omite el listing; un error de transporte aborta.
func (c *ListingController) fetchDetails(ctx context.Context, token string, summaries []domain.ListingSummary) ([]*domain.Listing, error) {
	details := make([]*domain.Listing, len(summaries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, s := range summaries {
		i, s := i, s
		g.Go(func() error {
			listing, err := c.api.GetListing(gctx, token, s.ID)
			if err != nil {
				var de *domain.DomainError
				if errors.As(err, &de) {
					c.logger.Info("skipping listing", zap.String("id", s.ID), zap.String("error", de.Message))
					return nil
				}
				return err
			}
			details[i] = &listing
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// abort deja intacto lo ya renderizado; solo el pipeline vigente muestra aviso.
func (c *ListingController) abort(gen uint64, op string, err error) error {
	if gen != c.generation.Load() {
		c.logger.Debug(op+" failed in stale pipeline", zap.Error(err))
		return err
	}
	return c.page.fail(c.logger, op, err)
}

// Select navega al detalle del listing elegido.
func (c *ListingController) Select(id string) error {
	if _, ok := c.session(); !ok {
		return domain.ErrNotReady
	}
	c.page.Target.Navigate(placeURL(id))
	return nil
}

func (c *ListingController) Generation() uint64 {
	return c.generation.Load()
}

func (c *ListingController) session() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, c.ready
}

func listingCard(id, title string, price float64) render.Node {
	return render.El("div", "place-card", "",
		render.El("h2", "", title),
		render.El("p", "", "Price per Night: $"+formatPrice(price)),
		render.El("button", "details-button", "View Details").
			With("data-id", id).
			With("type", "submit").
			With("name", "select").
			With("value", id),
	)
}
