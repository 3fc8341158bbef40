package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"primetravel/internal/models/db_models"
	"primetravel/internal/models/request_models"
)

// SystemPrompt establishes the planner role, the strict-JSON output
// contract, and the planning heuristics. Sampling parameters live in the
// completion client, not here.
const SystemPrompt = `You are an expert travel planner AI. Generate realistic, practical day-by-day travel itineraries.

RULES:
- Output ONLY valid JSON, no extra text or markdown
- Respect the user's budget level (Low = budget-friendly, Medium = moderate comfort, High = luxury)
- Consider the travel month for weather-appropriate activities
- Tailor activities to the group type (Solo = adventure/exploration, Couple = romantic, Family = kid-friendly)
- Focus on the specified interests
- Avoid excessive travel in one day (max 3-4 major activities per day)
- Include realistic time slots, travel modes, and cost estimates
- Use the LOCAL CURRENCY of the destination for ALL cost estimates
- Provide practical travel tips for the destination

OUTPUT FORMAT (STRICT JSON):
{
  "tripSummary": "Brief overview of the trip",
  "totalEstimatedCost": "XXX - XXX [LOCAL_CURRENCY_SYMBOL]",
  "currency": "CURRENCY_CODE",
  "currencySymbol": "CURRENCY_SYMBOL",
  "travelTips": ["tip1", "tip2", "tip3"],
  "itinerary": [
    {
      "day": 1,
      "date": "Day 1",
      "dailyCost": "XXX - XXX [LOCAL_CURRENCY_SYMBOL]",
      "places": [
        {
          "name": "Place Name",
          "time": "09:00 AM",
          "duration": "2 hours",
          "travelMode": "Walking/Taxi/Metro",
          "cost": "XXX [LOCAL_CURRENCY_SYMBOL]",
          "description": "Brief description"
        }
      ]
    }
  ]
}`

// ModificationSystemPrompt drives the revise-an-existing-trip path. The
// output shape is day/place structure only; dates and notes are preserved
// by the reconciler, not the model.
const ModificationSystemPrompt = `You are a travel planning AI assistant. You will receive a current trip itinerary and a user request to modify it.
Your task is to modify the itinerary according to the user's request while maintaining the same structure.
Output ONLY valid JSON with this exact structure:
{
  "itinerary": [
    {
      "day": 1,
      "places": [
        {
          "name": "Place Name",
          "time": "09:00 AM",
          "duration": "2 hours",
          "travelMode": "Walking",
          "cost": "$50",
          "description": "Brief description",
          "completed": false
        }
      ]
    }
  ]
}`

// BuildUserPrompt interpolates the trip parameters and resolved currency
// into the generation request. The currency code and symbol are repeated
// several times on purpose: it measurably biases the model toward pricing
// in local currency. Pure function, deterministic given its inputs.
func BuildUserPrompt(params request_models.CreateTripWithAIRequest, currency CurrencyInfo) string {
	interests := strings.Join(params.Interests, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %d-day travel itinerary for %s.\n\n", params.TripDays, params.LandingCity)

	b.WriteString("TRAVELER DETAILS:\n")
	fmt.Fprintf(&b, "- Travel month: %s\n", params.Month)
	fmt.Fprintf(&b, "- Budget: %s\n", params.Budget)
	fmt.Fprintf(&b, "- Group type: %s\n", params.GroupType)
	fmt.Fprintf(&b, "- Interests: %s\n\n", interests)

	fmt.Fprintf(&b, "DESTINATION COUNTRY: %s\n", currency.Country)
	fmt.Fprintf(&b, "LOCAL CURRENCY: %s (%s)\n", currency.Currency, currency.Symbol)
	fmt.Fprintf(&b, "IMPORTANT: Use %s (%s) for ALL cost estimates. This is the official local currency of %s.\n\n",
		currency.Symbol, currency.Currency, currency.Country)

	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Create a day-by-day plan with specific places, times, and costs in %s\n", currency.Currency)
	fmt.Fprintf(&b, "- Consider %s weather and seasonal events\n", params.Month)
	fmt.Fprintf(&b, "- Match activities to %s travelers\n", params.GroupType)
	fmt.Fprintf(&b, "- Focus on: %s\n", interests)
	fmt.Fprintf(&b, "- Keep the %s budget in mind for all recommendations\n", params.Budget)
	b.WriteString("- Include realistic travel times between locations\n")
	fmt.Fprintf(&b, "- ALL prices must be in local currency: %s (%s)\n", currency.Symbol, currency.Currency)
	fmt.Fprintf(&b, "- Include \"currency\": %q and \"currencySymbol\": %q in your response\n", currency.Currency, currency.Symbol)
	b.WriteString("- Output STRICT JSON only, no markdown or extra text")

	return b.String()
}

// BuildModificationPrompt serializes the current itinerary as context and
// appends the user's change request.
func BuildModificationPrompt(trip *db_models.Trip, request string) string {
	type placeContext struct {
		Name        string `json:"name"`
		Time        string `json:"time,omitempty"`
		Duration    string `json:"duration,omitempty"`
		TravelMode  string `json:"travelMode,omitempty"`
		Cost        string `json:"cost,omitempty"`
		Description string `json:"description,omitempty"`
		Completed   bool   `json:"completed"`
	}
	type dayContext struct {
		Day    int            `json:"day"`
		Date   string         `json:"date"`
		Places []placeContext `json:"places"`
	}

	tripContext := struct {
		Title string       `json:"title"`
		Days  []dayContext `json:"days"`
	}{Title: trip.Title}

	for i, day := range trip.Days {
		dc := dayContext{Day: i + 1, Date: day.Date.Format("2006-01-02"), Places: []placeContext{}}
		for _, place := range day.Places {
			dc.Places = append(dc.Places, placeContext{
				Name:        place.Name,
				Time:        place.Time,
				Duration:    place.Duration,
				TravelMode:  place.TravelMode,
				Cost:        place.Cost,
				Description: place.Description,
				Completed:   place.Completed,
			})
		}
		tripContext.Days = append(tripContext.Days, dc)
	}

	contextJSON, _ := json.MarshalIndent(tripContext, "", "  ")

	var b strings.Builder
	b.WriteString("Current trip itinerary:\n")
	b.Write(contextJSON)
	fmt.Fprintf(&b, "\n\nUser request: %s\n\n", request)
	b.WriteString("Please modify the itinerary according to this request. Keep the same number of days unless specifically asked to change. Output only the modified itinerary in JSON format.")

	return b.String()
}
