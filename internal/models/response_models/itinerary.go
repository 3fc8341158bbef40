package response_models

import (
	"encoding/json"
	"errors"
	"fmt"

	"primetravel/pkg/utils"
)

// AIItinerary is the validated shape of a full generation response. Cost and
// date fields are opaque display strings; the validator is a type gate, not
// a business-rule engine (it does not cross-check day numbers against
// positions or sum costs).
type AIItinerary struct {
	TripSummary        string    `json:"tripSummary"`
	TotalEstimatedCost string    `json:"totalEstimatedCost"`
	Currency           string    `json:"currency,omitempty"`
	CurrencySymbol     string    `json:"currencySymbol,omitempty"`
	Country            string    `json:"country,omitempty"`
	TravelTips         []string  `json:"travelTips,omitempty"`
	Itinerary          []DayPlan `json:"itinerary"`
}

type DayPlan struct {
	Day       int          `json:"day"`
	Date      string       `json:"date,omitempty"`
	DailyCost string       `json:"dailyCost"`
	Places    []PlaceVisit `json:"places"`
}

type PlaceVisit struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	TravelMode  string `json:"travelMode"`
	Cost        string `json:"cost"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed,omitempty"`
}

// RevisedItinerary is the shape of an AI-modification response: day/place
// structure only, no summary or currency envelope.
type RevisedItinerary struct {
	Itinerary []RevisedDay `json:"itinerary"`
}

type RevisedDay struct {
	Day    int          `json:"day"`
	Places []PlaceVisit `json:"places"`
}

// DecodeItinerary parses and structurally validates a raw model response.
// Invalid JSON yields a *utils.ParseError; a shape mismatch yields a
// *utils.SchemaError listing every violated constraint. There is no partial
// acceptance.
func DecodeItinerary(raw string) (*AIItinerary, error) {
	var it AIItinerary
	if err := unmarshalResponse(raw, &it); err != nil {
		return nil, err
	}

	var violations []string
	if it.TripSummary == "" {
		violations = append(violations, "tripSummary is required")
	}
	if it.TotalEstimatedCost == "" {
		violations = append(violations, "totalEstimatedCost is required")
	}
	if len(it.Itinerary) == 0 {
		violations = append(violations, "itinerary must be a non-empty array")
	}
	for i, day := range it.Itinerary {
		violations = append(violations, validateDayPlan(i, day)...)
	}

	if len(violations) > 0 {
		return nil, &utils.SchemaError{Violations: violations}
	}
	return &it, nil
}

// DecodeRevisedItinerary is the modification-path counterpart of
// DecodeItinerary.
func DecodeRevisedItinerary(raw string) (*RevisedItinerary, error) {
	var rev RevisedItinerary
	if err := unmarshalResponse(raw, &rev); err != nil {
		return nil, err
	}

	var violations []string
	if len(rev.Itinerary) == 0 {
		violations = append(violations, "itinerary must be a non-empty array")
	}
	for i, day := range rev.Itinerary {
		if day.Day < 1 {
			violations = append(violations, fmt.Sprintf("itinerary[%d].day must be a positive integer", i))
		}
		for j, place := range day.Places {
			violations = append(violations, validatePlaceVisit(i, j, place)...)
		}
	}

	if len(violations) > 0 {
		return nil, &utils.SchemaError{Violations: violations}
	}
	return &rev, nil
}

// unmarshalResponse separates the two decode failure modes: text that is
// not JSON at all is a parse failure, while well-formed JSON carrying a
// wrong primitive type (a string where a number belongs) is a shape
// violation like any other.
func unmarshalResponse(raw string, v interface{}) error {
	err := json.Unmarshal([]byte(raw), v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = typeErr.Struct
		}
		return &utils.SchemaError{Violations: []string{
			fmt.Sprintf("%s must be of type %s, got %s", field, typeErr.Type, typeErr.Value),
		}}
	}
	return &utils.ParseError{Err: err}
}

func validateDayPlan(i int, day DayPlan) []string {
	var violations []string
	if day.Day < 1 {
		violations = append(violations, fmt.Sprintf("itinerary[%d].day must be a positive integer", i))
	}
	if day.DailyCost == "" {
		violations = append(violations, fmt.Sprintf("itinerary[%d].dailyCost is required", i))
	}
	if day.Places == nil {
		violations = append(violations, fmt.Sprintf("itinerary[%d].places is required", i))
	}
	for j, place := range day.Places {
		violations = append(violations, validatePlaceVisit(i, j, place)...)
	}
	return violations
}

func validatePlaceVisit(i, j int, place PlaceVisit) []string {
	var violations []string
	requiredString := func(field, value string) {
		if value == "" {
			violations = append(violations, fmt.Sprintf("itinerary[%d].places[%d].%s is required", i, j, field))
		}
	}
	requiredString("name", place.Name)
	requiredString("time", place.Time)
	requiredString("duration", place.Duration)
	requiredString("travelMode", place.TravelMode)
	requiredString("cost", place.Cost)
	return violations
}
