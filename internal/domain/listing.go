package domain

// ListingSummary es la forma que devuelve GET /places/.
type ListingSummary struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Price *float64 `json:"price,omitempty"`
}

// Listing es el detalle completo de GET /places/{id}.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude,omitempty"`
	Longitude   float64   `json:"longitude,omitempty"`
	Owner       User      `json:"owner"`
	Amenities   []Amenity `json:"amenities"`
	Reviews     []Review  `json:"reviews"`
}

type Amenity struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
