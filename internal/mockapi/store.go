package mockapi

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hbnb-front/internal/domain"
)

// Los mensajes se devuelven tal cual en el campo "error".
var (
	ErrUserNotFound    = errors.New("User not found")
	ErrPlaceNotFound   = errors.New("Place not found")
	ErrInvalidInput    = errors.New("Invalid input data")
	ErrOwnPlace        = errors.New("You cannot review your own place")
	ErrAlreadyReviewed = errors.New("You have already reviewed this place")
	ErrBadCredentials  = errors.New("Invalid credentials")
)

// StoredUser agrega credenciales al usuario público.
type StoredUser struct {
	domain.User
	PasswordHash string
	IsAdmin      bool
}

type storedPlace struct {
	domain.Listing
	OwnerID string
}

// Store guarda en memoria usuarios, places y reviews.
type Store struct {
	mu         sync.RWMutex
	bcryptCost int
	users      map[string]StoredUser
	byEmail    map[string]string
	places     map[string]*storedPlace
	order      []string
}

func NewStore(bcryptCost int) *Store {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Store{
		bcryptCost: bcryptCost,
		users:      make(map[string]StoredUser),
		byEmail:    make(map[string]string),
		places:     make(map[string]*storedPlace),
	}
}

func (s *Store) AddUser(firstName, lastName, email, password string, isAdmin bool) (StoredUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return StoredUser{}, ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return StoredUser{}, err
	}
	u := StoredUser{
		User: domain.User{
			ID:        uuid.NewString(),
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
		},
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[email]; exists {
		return StoredUser{}, ErrInvalidInput
	}
	s.users[u.ID] = u
	s.byEmail[email] = u.ID
	return u, nil
}

// Authenticate compara la contraseña contra el hash bcrypt.
func (s *Store) Authenticate(email, password string) (StoredUser, error) {
	s.mu.RLock()
	id, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	u := s.users[id]
	s.mu.RUnlock()
	if !ok {
		return StoredUser{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return StoredUser{}, ErrBadCredentials
	}
	return u, nil
}

func (s *Store) User(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return u.User, nil
}

func (s *Store) AddPlace(ownerID, title, description string, price float64, amenities ...string) (domain.Listing, error) {
	if strings.TrimSpace(title) == "" || price < 0 {
		return domain.Listing{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[ownerID]; !ok {
		return domain.Listing{}, ErrUserNotFound
	}
	p := &storedPlace{
		Listing: domain.Listing{
			ID:          uuid.NewString(),
			Title:       title,
			Description: description,
			Price:       price,
			Amenities:   make([]domain.Amenity, 0, len(amenities)),
			Reviews:     []domain.Review{},
		},
		OwnerID: ownerID,
	}
	for _, name := range amenities {
		p.Amenities = append(p.Amenities, domain.Amenity{ID: uuid.NewString(), Name: name})
	}
	s.places[p.ID] = p
	s.order = append(s.order, p.ID)
	return p.Listing, nil
}

// Places devuelve los resúmenes en orden de creación.
func (s *Store) Places() []domain.ListingSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ListingSummary, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, domain.ListingSummary{ID: id, Title: s.places[id].Title})
	}
	return out
}

// Place devuelve el detalle con el owner embebido.
func (s *Store) Place(id string) (domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.places[id]
	if !ok {
		return domain.Listing{}, ErrPlaceNotFound
	}
	owner, ok := s.users[p.OwnerID]
	if !ok {
		return domain.Listing{}, errors.New("Owner not found")
	}
	out := p.Listing
	out.Owner = owner.User
	out.Amenities = append([]domain.Amenity(nil), p.Amenities...)
	out.Reviews = append([]domain.Review{}, p.Reviews...)
	return out, nil
}

func (s *Store) AddReview(payload domain.ReviewPayload) (domain.Review, error) {
	if strings.TrimSpace(payload.Text) == "" || payload.Rating < 1 || payload.Rating > 5 {
		return domain.Review{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[payload.UserID]; !ok {
		return domain.Review{}, ErrInvalidInput
	}
	p, ok := s.places[payload.PlaceID]
	if !ok {
		return domain.Review{}, ErrInvalidInput
	}
	if p.OwnerID == payload.UserID {
		return domain.Review{}, ErrOwnPlace
	}
	for _, r := range p.Reviews {
		if r.UserID == payload.UserID {
			return domain.Review{}, ErrAlreadyReviewed
		}
	}
	r := domain.Review{
		ID:     uuid.NewString(),
		UserID: payload.UserID,
		Rating: payload.Rating,
		Text:   payload.Text,
	}
	p.Reviews = append(p.Reviews, r)
	return r, nil
}
