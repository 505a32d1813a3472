package mockapi

import (
	"fmt"

	"hbnb-front/internal/domain"
)

// Seed carga los datos de ejemplo usados en desarrollo local.
func Seed(s *Store) error {
	if _, err := s.AddUser("Admin", "HBnB", "admin@admin.com", "admin", true); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	host, err := s.AddUser("Ada", "Lovelace", "ada@hbnb.io", "ada", false)
	if err != nil {
		return fmt.Errorf("seed host: %w", err)
	}
	guest, err := s.AddUser("Alan", "Turing", "alan@hbnb.io", "alan", false)
	if err != nil {
		return fmt.Errorf("seed guest: %w", err)
	}
	other, err := s.AddUser("Grace", "Hopper", "grace@hbnb.io", "grace", false)
	if err != nil {
		return fmt.Errorf("seed guest: %w", err)
	}

	cabin, err := s.AddPlace(host.ID, "Cozy Cabin", "A wooden cabin near the lake.", 50, "Wifi", "Fireplace")
	if err != nil {
		return fmt.Errorf("seed place: %w", err)
	}
	if _, err := s.AddPlace(host.ID, "City Loft", "Open loft in the old town.", 150, "Wifi", "Air conditioning", "Washer"); err != nil {
		return fmt.Errorf("seed place: %w", err)
	}
	if _, err := s.AddPlace(host.ID, "Beach Villa", "Private villa with pool.", 300, "Pool", "Parking"); err != nil {
		return fmt.Errorf("seed place: %w", err)
	}

	reviews := []domain.ReviewPayload{
		{Text: "Lovely and quiet.", Rating: 5, UserID: guest.ID, PlaceID: cabin.ID},
		{Text: "Good value, a bit cold at night.", Rating: 3, UserID: other.ID, PlaceID: cabin.ID},
	}
	for _, r := range reviews {
		if _, err := s.AddReview(r); err != nil {
			return fmt.Errorf("seed review: %w", err)
		}
	}
	return nil
}
