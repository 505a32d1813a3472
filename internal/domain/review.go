package domain

// Review pertenece a un Listing; UserID se resuelve a User aparte.
type Review struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"user_id"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// ReviewPayload es el cuerpo de POST /reviews/.
type ReviewPayload struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// CreatedReview es la respuesta exitosa de POST /reviews/.
type CreatedReview struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place"`
	UserID  string `json:"user"`
}
