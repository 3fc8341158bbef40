package request_models

// PlacePayload is the wire shape for adding or updating a single place on a
// trip day. Longitude/Latitude are optional; a place without both stays
// unresolved rather than getting a sentinel coordinate.
type PlacePayload struct {
	Name        string   `json:"name" binding:"required"`
	Longitude   *float64 `json:"longitude"`
	Latitude    *float64 `json:"latitude"`
	Type        string   `json:"type"`
	Time        string   `json:"time"`
	Duration    string   `json:"duration"`
	TravelMode  string   `json:"travelMode"`
	Cost        string   `json:"cost"`
	Description string   `json:"description"`
}

// UpdatePlacePayload carries partial updates; nil fields are left untouched.
type UpdatePlacePayload struct {
	Name        *string  `json:"name"`
	Longitude   *float64 `json:"longitude"`
	Latitude    *float64 `json:"latitude"`
	Type        *string  `json:"type"`
	Time        *string  `json:"time"`
	Duration    *string  `json:"duration"`
	TravelMode  *string  `json:"travelMode"`
	Cost        *string  `json:"cost"`
	Description *string  `json:"description"`
	Completed   *bool    `json:"completed"`
}
