package request_models

import (
	"fmt"
	"strings"
	"time"
)

var validMonths = map[string]bool{
	"January": true, "February": true, "March": true, "April": true,
	"May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
}

var validBudgets = map[string]bool{"Low": true, "Medium": true, "High": true}

var validGroupTypes = map[string]bool{"Solo": true, "Couple": true, "Family": true}

var validInterests = map[string]bool{
	"Beaches": true, "Hills": true, "Culture": true,
	"Ayurveda": true, "Food": true, "Adventure": true,
}

// CreateTripWithAIRequest carries the trip parameters for AI generation.
// Validate runs before any external call is made.
type CreateTripWithAIRequest struct {
	TripDays    int      `json:"tripDays"`
	Month       string   `json:"month"`
	LandingCity string   `json:"landingCity"`
	Budget      string   `json:"budget"`
	GroupType   string   `json:"groupType"`
	Interests   []string `json:"interests"`
}

func (r *CreateTripWithAIRequest) Validate() error {
	if r.TripDays < 1 || r.TripDays > 30 {
		return fmt.Errorf("tripDays must be between 1 and 30, got %d", r.TripDays)
	}
	if !validMonths[r.Month] {
		return fmt.Errorf("month must be a full English month name, got %q", r.Month)
	}
	if len(strings.TrimSpace(r.LandingCity)) < 2 {
		return fmt.Errorf("landingCity must be at least 2 characters")
	}
	if len(r.LandingCity) > 100 {
		return fmt.Errorf("landingCity must be at most 100 characters")
	}
	if !validBudgets[r.Budget] {
		return fmt.Errorf("budget must be one of Low/Medium/High, got %q", r.Budget)
	}
	if !validGroupTypes[r.GroupType] {
		return fmt.Errorf("groupType must be one of Solo/Couple/Family, got %q", r.GroupType)
	}
	if len(r.Interests) == 0 {
		return fmt.Errorf("interests must contain at least one entry")
	}
	for _, interest := range r.Interests {
		if !validInterests[interest] {
			return fmt.Errorf("unknown interest %q", interest)
		}
	}
	return nil
}

// CreateTripRequest is the manual (non-AI) creation path.
type CreateTripRequest struct {
	Title     string       `json:"title" binding:"required"`
	StartDate time.Time    `json:"startDate" binding:"required"`
	EndDate   time.Time    `json:"endDate" binding:"required"`
	Days      []DayPayload `json:"days"`
}

type UpdateTripRequest struct {
	Title     string       `json:"title"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Days      []DayPayload `json:"days"`
}

type DayPayload struct {
	Date      time.Time      `json:"date"`
	Notes     string         `json:"notes"`
	DailyCost string         `json:"dailyCost"`
	Places    []PlacePayload `json:"places"`
}

type ModifyTripRequest struct {
	Prompt string `json:"prompt"`
}
