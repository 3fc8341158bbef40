package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"primetravel/internal/models/db_models"
	"primetravel/internal/models/request_models"
	"primetravel/internal/models/response_models"
	"primetravel/internal/repositories"
	"primetravel/pkg/utils"
)

type TripServiceInterface interface {
	CreateTripFromItinerary(ctx context.Context, userID uuid.UUID, params request_models.CreateTripWithAIRequest, itinerary *response_models.AIItinerary) (*db_models.Trip, error)
	CreateTrip(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*db_models.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
	GetTrip(ctx context.Context, tripID, userID uuid.UUID) (*db_models.Trip, error)
	UpdateTrip(ctx context.Context, tripID, userID uuid.UUID, req request_models.UpdateTripRequest) (*db_models.Trip, error)
	DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error

	AddPlace(ctx context.Context, tripID, userID uuid.UUID, dayIndex int, payload request_models.PlacePayload) (*db_models.Trip, error)
	RemovePlace(ctx context.Context, tripID, userID uuid.UUID, dayIndex, placeIndex int) (*db_models.Trip, error)
	TogglePlaceCompletion(ctx context.Context, tripID, userID uuid.UUID, dayIndex, placeIndex int) (*db_models.Trip, error)
	UpdatePlace(ctx context.Context, tripID, userID uuid.UUID, dayIndex, placeIndex int, payload request_models.UpdatePlacePayload) (*db_models.Trip, error)

	ModifyTripWithAI(ctx context.Context, tripID, userID uuid.UUID, prompt string) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo   repositories.TripRepository
	generation GenerationServiceInterface
}

func NewTripService(tripRepo repositories.TripRepository, generation GenerationServiceInterface) TripServiceInterface {
	return &TripService{
		tripRepo:   tripRepo,
		generation: generation,
	}
}

// MaterializeDays maps a validated itinerary onto persisted day records.
// Each day's calendar date is startDate plus (day.day - 1) days; the
// DayPlan's own date field is display text and is ignored here. Places are
// stored unresolved (no coordinates) and flagged as AI recommendations.
func MaterializeDays(itinerary *response_models.AIItinerary, startDate time.Time) []db_models.TripDay {
	days := make([]db_models.TripDay, 0, len(itinerary.Itinerary))
	for _, plan := range itinerary.Itinerary {
		day := db_models.TripDay{
			DayNumber: plan.Day,
			Date:      startDate.AddDate(0, 0, plan.Day-1),
			DailyCost: plan.DailyCost,
			Places:    make([]db_models.TripPlace, 0, len(plan.Places)),
		}
		for j, visit := range plan.Places {
			day.Places = append(day.Places, db_models.TripPlace{
				SortIndex:        j,
				Name:             visit.Name,
				Time:             visit.Time,
				Duration:         visit.Duration,
				TravelMode:       visit.TravelMode,
				Cost:             visit.Cost,
				Description:      visit.Description,
				AIRecommendation: true,
			})
		}
		days = append(days, day)
	}
	return days
}

// ReconcileModification zips an AI revision against the existing days by
// position: index i keeps the existing day's date and notes while places
// are replaced wholesale from the revision. Revised days beyond the
// original length get today's date and empty notes.
func ReconcileModification(existing []db_models.TripDay, revised []response_models.RevisedDay) []db_models.TripDay {
	days := make([]db_models.TripDay, 0, len(revised))
	for i, rev := range revised {
		day := db_models.TripDay{
			DayNumber: i + 1,
			Date:      time.Now(),
			Places:    make([]db_models.TripPlace, 0, len(rev.Places)),
		}
		if i < len(existing) {
			day.Date = existing[i].Date
			day.Notes = existing[i].Notes
			day.DailyCost = existing[i].DailyCost
		}
		for j, visit := range rev.Places {
			day.Places = append(day.Places, db_models.TripPlace{
				SortIndex:        j,
				Name:             visit.Name,
				Time:             visit.Time,
				Duration:         visit.Duration,
				TravelMode:       visit.TravelMode,
				Cost:             visit.Cost,
				Description:      visit.Description,
				Completed:        visit.Completed,
				AIRecommendation: true,
			})
		}
		days = append(days, day)
	}
	return days
}

func (s *TripService) CreateTripFromItinerary(ctx context.Context, userID uuid.UUID, params request_models.CreateTripWithAIRequest, itinerary *response_models.AIItinerary) (*db_models.Trip, error) {
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	trip := &db_models.Trip{
		UserID:             userID,
		Title:              fmt.Sprintf("%s - %d Day %s Trip", params.LandingCity, params.TripDays, params.GroupType),
		StartDate:          startDate,
		EndDate:            startDate.AddDate(0, 0, params.TripDays-1),
		Days:               MaterializeDays(itinerary, startDate),
		LandingCity:        params.LandingCity,
		TripDays:           params.TripDays,
		Budget:             params.Budget,
		GroupType:          params.GroupType,
		Interests:          params.Interests,
		GeneratedAt:        &now,
		TotalEstimatedCost: itinerary.TotalEstimatedCost,
		Currency:           itinerary.Currency,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		log.Printf("Failed to persist generated trip: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*db_models.Trip, error) {
	trip := &db_models.Trip{
		UserID:    userID,
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Days:      daysFromPayload(req.Days),
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		log.Printf("Failed to create trip: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	trips, err := s.tripRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *TripService) GetTrip(ctx context.Context, tripID, userID uuid.UUID) (*db_models.Trip, error) {
	return s.loadTrip(ctx, tripID, userID)
}

func (s *TripService) UpdateTrip(ctx context.Context, tripID, userID uuid.UUID, req request_models.UpdateTripRequest) (*db_models.Trip, error) {
	trip, err := s.loadTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		trip.Title = req.Title
	}
	if !req.StartDate.IsZero() {
		trip.StartDate = req.StartDate
	}
	if !req.EndDate.IsZero() {
		trip.EndDate = req.EndDate
	}

	if req.Days != nil {
		if err := s.tripRepo.ReplaceDays(ctx, trip.ID, daysFromPayload(req.Days)); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	trip.Days = nil // avoid re-saving associations Save would duplicate
	if err := s.tripRepo.Save(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.loadTrip(ctx, tripID, userID)
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	deleted, err := s.tripRepo.Delete(ctx, tripID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}

func (s *TripService) AddPlace(ctx context.Context, tripID, userID uuid.UUID, dayIndex int, payload request_models.PlacePayload) (*db_models.Trip, error) {
	trip, err := s.loadTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(trip.Days) {
		return nil, utils.ErrInvalidDayIndex
	}

	day := &trip.Days[dayIndex]
	place := db_models.TripPlace{
		TripDayID:   day.ID,
		SortIndex:   nextSortIndex(day.Places),
		Name:        payload.Name,
		Type:        payload.Type,
		Time:        payload.Time,
		Duration:    payload.Duration,
		TravelMode:  payload.TravelMode,
		Cost:        payload.Cost,
		Description: payload.Description,
	}
	if payload.Longitude != nil && payload.Latitude != nil {
		place.SetLocation(*payload.Longitude, *payload.Latitude)
	}

	if err := s.tripRepo.CreatePlace(ctx, &place); err != nil {
		return nil, utils.ErrDatabaseError
	}
	day.Places = append(day.Places, place)
	return trip, nil
}

func (s *TripService) RemovePlace(ctx context.Context, tripID, userID uuid.UUID, dayIndex, placeIndex int) (*db_models.Trip, error) {
	trip, place, err := s.resolvePlace(ctx, tripID, userID, dayIndex, placeIndex)
	if err != nil {
		return nil, err
	}

	if err := s.tripRepo.DeletePlace(ctx, place.ID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	day := &trip.Days[dayIndex]
	day.Places = append(day.Places[:placeIndex], day.Places[placeIndex+1:]...)
	return trip, nil
}

func (s *TripService) TogglePlaceCompletion(ctx context.Context, tripID, userID uuid.UUID, dayIndex, placeIndex int) (*db_models.Trip, error) {
	trip, place, err := s.resolvePlace(ctx, tripID, userID, dayIndex, placeIndex)
	if err != nil {
		return nil, err
	}

	place.Completed = !place.Completed
	if err := s.tripRepo.SavePlace(ctx, place); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) UpdatePlace(ctx context.Context, tripID, userID uuid.UUID, dayIndex, placeIndex int, payload request_models.UpdatePlacePayload) (*db_models.Trip, error) {
	trip, place, err := s.resolvePlace(ctx, tripID, userID, dayIndex, placeIndex)
	if err != nil {
		return nil, err
	}

	applyPlaceUpdate(place, payload)
	if err := s.tripRepo.SavePlace(ctx, place); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) ModifyTripWithAI(ctx context.Context, tripID, userID uuid.UUID, prompt string) (*db_models.Trip, error) {
	trip, err := s.loadTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	revision, err := s.generation.ModifyItinerary(ctx, trip, prompt)
	if err != nil {
		return nil, err
	}

	days := ReconcileModification(trip.Days, revision.Itinerary)
	if err := s.tripRepo.ReplaceDays(ctx, trip.ID, days); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.loadTrip(ctx, tripID, userID)
}

func (s *TripService) loadTrip(ctx context.Context, tripID, userID uuid.UUID) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindByIDAndUser(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

// resolvePlace bounds-checks both indices before anything mutates, so an
// out-of-range edit leaves the document untouched.
func (s *TripService) resolvePlace(ctx context.Context, tripID, userID uuid.UUID, dayIndex, placeIndex int) (*db_models.Trip, *db_models.TripPlace, error) {
	trip, err := s.loadTrip(ctx, tripID, userID)
	if err != nil {
		return nil, nil, err
	}
	if dayIndex < 0 || dayIndex >= len(trip.Days) {
		return nil, nil, utils.ErrInvalidDayIndex
	}
	if placeIndex < 0 || placeIndex >= len(trip.Days[dayIndex].Places) {
		return nil, nil, utils.ErrInvalidPlaceIndex
	}
	return trip, &trip.Days[dayIndex].Places[placeIndex], nil
}

func daysFromPayload(payloads []request_models.DayPayload) []db_models.TripDay {
	days := make([]db_models.TripDay, 0, len(payloads))
	for i, p := range payloads {
		day := db_models.TripDay{
			DayNumber: i + 1,
			Date:      p.Date,
			Notes:     p.Notes,
			DailyCost: p.DailyCost,
			Places:    make([]db_models.TripPlace, 0, len(p.Places)),
		}
		for j, pl := range p.Places {
			place := db_models.TripPlace{
				SortIndex:   j,
				Name:        pl.Name,
				Type:        pl.Type,
				Time:        pl.Time,
				Duration:    pl.Duration,
				TravelMode:  pl.TravelMode,
				Cost:        pl.Cost,
				Description: pl.Description,
			}
			if pl.Longitude != nil && pl.Latitude != nil {
				place.SetLocation(*pl.Longitude, *pl.Latitude)
			}
			day.Places = append(day.Places, place)
		}
		days = append(days, day)
	}
	return days
}

func applyPlaceUpdate(place *db_models.TripPlace, payload request_models.UpdatePlacePayload) {
	if payload.Name != nil {
		place.Name = *payload.Name
	}
	if payload.Longitude != nil && payload.Latitude != nil {
		place.SetLocation(*payload.Longitude, *payload.Latitude)
	}
	if payload.Type != nil {
		place.Type = *payload.Type
	}
	if payload.Time != nil {
		place.Time = *payload.Time
	}
	if payload.Duration != nil {
		place.Duration = *payload.Duration
	}
	if payload.TravelMode != nil {
		place.TravelMode = *payload.TravelMode
	}
	if payload.Cost != nil {
		place.Cost = *payload.Cost
	}
	if payload.Description != nil {
		place.Description = *payload.Description
	}
	if payload.Completed != nil {
		place.Completed = *payload.Completed
	}
}

func nextSortIndex(places []db_models.TripPlace) int {
	next := 0
	for _, p := range places {
		if p.SortIndex >= next {
			next = p.SortIndex + 1
		}
	}
	return next
}
