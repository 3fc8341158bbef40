package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Trip is the persisted, user-owned document derived from a generated
// itinerary. Days are ordered by DayNumber; that order is the display order
// and the unit of addressing for point edits. Edits assume at most one
// editor per trip at a time; there is no version guard.
type Trip struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;index:idx_trips_user_start" json:"userId"`
	Title     string    `json:"title"`
	StartDate time.Time `gorm:"index:idx_trips_user_start" json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	Days []TripDay `gorm:"constraint:OnDelete:CASCADE" json:"days"`

	// Generation metadata, empty for manually created trips.
	LandingCity string         `json:"landingCity,omitempty"`
	TripDays    int            `json:"tripDays,omitempty"`
	Budget      string         `json:"budget,omitempty"`
	GroupType   string         `json:"groupType,omitempty"`
	Interests   pq.StringArray `gorm:"type:text[]" json:"interests,omitempty"`
	GeneratedAt *time.Time     `json:"generatedAt,omitempty"`

	TotalEstimatedCost string `json:"totalEstimatedCost,omitempty"`
	Currency           string `json:"currency,omitempty"`
}

type TripDay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;index" json:"-"`
	DayNumber int       `json:"dayNumber"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	DailyCost string    `json:"dailyCost,omitempty"`

	Places []TripPlace `gorm:"foreignKey:TripDayID;constraint:OnDelete:CASCADE" json:"places"`
}

// TripPlace is a single stop on a day. Longitude/Latitude are nullable as a
// pair: a place whose coordinates were never geocoded stays unresolved
// instead of carrying a [0,0] sentinel that downstream consumers could
// mistake for a real location.
type TripPlace struct {
	BaseModel
	TripDayID uuid.UUID `gorm:"type:uuid;index" json:"-"`
	SortIndex int       `json:"-"`

	Name      string   `json:"name"`
	Longitude *float64 `json:"longitude,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`

	Type        string `json:"type,omitempty"`
	Time        string `json:"time,omitempty"`
	Duration    string `json:"duration,omitempty"`
	TravelMode  string `json:"travelMode,omitempty"`
	Cost        string `json:"cost,omitempty"`
	Description string `json:"description,omitempty"`

	AIRecommendation bool `json:"aiRecommendation"`
	Completed        bool `json:"completed"`
}

// GeoPoint is a resolved coordinate pair.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Location returns the resolved coordinates, or nil when the place was
// never geocoded.
func (p *TripPlace) Location() *GeoPoint {
	if p.Longitude == nil || p.Latitude == nil {
		return nil
	}
	return &GeoPoint{Longitude: *p.Longitude, Latitude: *p.Latitude}
}

// SetLocation marks the place resolved at the given coordinates.
func (p *TripPlace) SetLocation(lng, lat float64) {
	p.Longitude = &lng
	p.Latitude = &lat
}
