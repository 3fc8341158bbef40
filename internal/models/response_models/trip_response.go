package response_models

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedTripResponse is the itinerary plus the request metadata it was
// generated from. TripID is set only when the trip was persisted for a
// known user.
type GeneratedTripResponse struct {
	AIItinerary
	LandingCity string     `json:"landingCity"`
	TripDays    int        `json:"tripDays"`
	Month       string     `json:"month"`
	Budget      string     `json:"budget"`
	GroupType   string     `json:"groupType"`
	Interests   []string   `json:"interests"`
	GeneratedAt time.Time  `json:"generatedAt"`
	TripID      *uuid.UUID `json:"tripId,omitempty"`
}
