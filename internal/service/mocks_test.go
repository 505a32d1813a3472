package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"hbnb-front/internal/domain"
	"hbnb-front/internal/render"
)

var errConnRefused = &domain.TransportError{Op: "test", Err: errors.New("connection refused")}

type mockAPI struct {
	mu sync.Mutex

	checkMsg   string
	checkErr   error
	checkCalls int

	loginToken string
	loginErr   error
	loginCalls int

	summaries []domain.ListingSummary
	listErr   error
	listCalls int
	listHook  func(call int)

	listings     map[string]domain.Listing
	listingErrs  map[string]error
	listingDelay map[string]time.Duration
	listingCalls int

	users     map[string]domain.User
	userErrs  map[string]error
	userDelay map[string]time.Duration
	userCalls int

	created   []domain.ReviewPayload
	createErr error
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		checkMsg:     "Hello, user 7",
		listings:     make(map[string]domain.Listing),
		listingErrs:  make(map[string]error),
		listingDelay: make(map[string]time.Duration),
		users:        make(map[string]domain.User),
		userErrs:     make(map[string]error),
		userDelay:    make(map[string]time.Duration),
	}
}

func (m *mockAPI) Login(_ context.Context, _, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loginCalls++
	return m.loginToken, m.loginErr
}

func (m *mockAPI) CheckAuth(_ context.Context, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkCalls++
	return m.checkMsg, m.checkErr
}

func (m *mockAPI) ListListings(context.Context) ([]domain.ListingSummary, error) {
	m.mu.Lock()
	m.listCalls++
	call := m.listCalls
	hook := m.listHook
	summaries, err := m.summaries, m.listErr
	m.mu.Unlock()
	if hook != nil {
		hook(call)
	}
	return summaries, err
}

func (m *mockAPI) GetListing(ctx context.Context, _ string, id string) (domain.Listing, error) {
	m.mu.Lock()
	m.listingCalls++
	delay := m.listingDelay[id]
	listing, ok := m.listings[id]
	err := m.listingErrs[id]
	m.mu.Unlock()
	if err := sleep(ctx, delay); err != nil {
		return domain.Listing{}, err
	}
	if err != nil {
		return domain.Listing{}, err
	}
	if !ok {
		return domain.Listing{}, &domain.DomainError{Message: "Place not found"}
	}
	return listing, nil
}

func (m *mockAPI) GetUser(ctx context.Context, id string) (domain.User, error) {
	m.mu.Lock()
	m.userCalls++
	delay := m.userDelay[id]
	user := m.users[id]
	err := m.userErrs[id]
	m.mu.Unlock()
	if err := sleep(ctx, delay); err != nil {
		return domain.User{}, err
	}
	return user, err
}

func (m *mockAPI) CreateReview(_ context.Context, _ string, payload domain.ReviewPayload) (domain.CreatedReview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, payload)
	if m.createErr != nil {
		return domain.CreatedReview{}, m.createErr
	}
	return domain.CreatedReview{ID: "r1", Text: payload.Text, Rating: payload.Rating}, nil
}

func (m *mockAPI) calls() (check, list, listing, user int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checkCalls, m.listCalls, m.listingCalls, m.userCalls
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return &domain.TransportError{Op: "test", Err: ctx.Err()}
	}
}

type memorySession struct {
	mu      sync.Mutex
	cookies map[string]string
}

func newMemorySession(pairs ...string) *memorySession {
	s := &memorySession{cookies: make(map[string]string)}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.cookies[pairs[i]] = pairs[i+1]
	}
	return s
}

func (s *memorySession) ReadToken(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cookies[name]
	return v, ok
}

func (s *memorySession) WriteToken(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookies[name] = value
}

func newTestPage(session SessionAccessor) (Page, *render.Document) {
	doc := render.NewDocument()
	return Page{Session: session, Target: doc}, doc
}

func regionText(doc *render.Document, name string) string {
	r, _ := doc.Region(name)
	return r.TextContent()
}

