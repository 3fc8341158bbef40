package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"primetravel/internal/models/db_models"
	"primetravel/internal/models/request_models"
	"primetravel/internal/models/response_models"
	"primetravel/pkg/utils"
)

var errDB = errors.New("connection refused")

type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) FindByIDAndUser(ctx context.Context, tripID, userID uuid.UUID) (*db_models.Trip, error) {
	args := m.Called(ctx, tripID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Trip), args.Error(1)
}

func (m *MockTripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Trip), args.Error(1)
}

func (m *MockTripRepository) Save(ctx context.Context, trip *db_models.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) Delete(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tripID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripRepository) ReplaceDays(ctx context.Context, tripID uuid.UUID, days []db_models.TripDay) error {
	args := m.Called(ctx, tripID, days)
	return args.Error(0)
}

func (m *MockTripRepository) CreatePlace(ctx context.Context, place *db_models.TripPlace) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *MockTripRepository) SavePlace(ctx context.Context, place *db_models.TripPlace) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *MockTripRepository) DeletePlace(ctx context.Context, placeID uuid.UUID) error {
	args := m.Called(ctx, placeID)
	return args.Error(0)
}

type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) Generate(ctx context.Context, params request_models.CreateTripWithAIRequest) (*response_models.AIItinerary, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.AIItinerary), args.Error(1)
}

func (m *MockGenerationService) ModifyItinerary(ctx context.Context, trip *db_models.Trip, request string) (*response_models.RevisedItinerary, error) {
	args := m.Called(ctx, trip, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.RevisedItinerary), args.Error(1)
}

func sampleTrip(userID uuid.UUID) *db_models.Trip {
	trip := &db_models.Trip{
		UserID:    userID,
		Title:     "Paris - 2 Day Couple Trip",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Days: []db_models.TripDay{
			{
				DayNumber: 1,
				Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Notes:     "arrival day",
				Places: []db_models.TripPlace{
					{SortIndex: 0, Name: "Louvre Museum"},
					{SortIndex: 1, Name: "Café de Flore"},
				},
			},
			{
				DayNumber: 2,
				Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				Notes:     "departure day",
				Places: []db_models.TripPlace{
					{SortIndex: 0, Name: "Eiffel Tower"},
				},
			},
		},
	}
	trip.ID = uuid.New()
	for i := range trip.Days {
		trip.Days[i].ID = uuid.New()
		for j := range trip.Days[i].Places {
			trip.Days[i].Places[j].ID = uuid.New()
		}
	}
	return trip
}

func TestMaterializeDaysDatesFollowDayNumbers(t *testing.T) {
	itinerary := &response_models.AIItinerary{
		Itinerary: []response_models.DayPlan{
			{Day: 1, Date: "Day 1", DailyCost: "€150", Places: []response_models.PlaceVisit{{Name: "Louvre Museum"}}},
			{Day: 2, Date: "some label", DailyCost: "€160", Places: []response_models.PlaceVisit{{Name: "Eiffel Tower"}}},
			{Day: 3, Date: "another label", DailyCost: "€140", Places: []response_models.PlaceVisit{{Name: "Montmartre"}}},
		},
	}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	days := MaterializeDays(itinerary, start)

	require.Len(t, days, 3)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), days[1].Date)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), days[2].Date)
}

func TestMaterializeDaysUsesDayNumberNotPosition(t *testing.T) {
	itinerary := &response_models.AIItinerary{
		Itinerary: []response_models.DayPlan{
			{Day: 1, DailyCost: "€100", Places: []response_models.PlaceVisit{{Name: "A"}}},
			{Day: 3, DailyCost: "€100", Places: []response_models.PlaceVisit{{Name: "B"}}},
		},
	}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	days := MaterializeDays(itinerary, start)

	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), days[1].Date)
}

func TestMaterializeDaysPlacesAreUnresolvedRecommendations(t *testing.T) {
	itinerary := &response_models.AIItinerary{
		Itinerary: []response_models.DayPlan{
			{Day: 1, DailyCost: "€50", Places: []response_models.PlaceVisit{
				{Name: "Louvre Museum", Time: "09:00 AM", Duration: "3 hours", TravelMode: "Metro", Cost: "€17", Description: "Art museum"},
				{Name: "Café de Flore", Time: "01:00 PM", Duration: "1 hour", TravelMode: "Walk", Cost: "€25", Description: "Café"},
			}},
		},
	}

	days := MaterializeDays(itinerary, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	require.Len(t, days[0].Places, 2)
	for j, place := range days[0].Places {
		assert.Equal(t, j, place.SortIndex)
		assert.True(t, place.AIRecommendation)
		assert.Nil(t, place.Location(), "AI places have no resolved coordinates")
	}
	assert.Equal(t, "Louvre Museum", days[0].Places[0].Name)
	assert.Equal(t, "€17", days[0].Places[0].Cost)
}

func TestReconcileModificationPreservesDatesAndNotes(t *testing.T) {
	existing := sampleTrip(uuid.New()).Days
	revised := []response_models.RevisedDay{
		{Day: 1, Places: []response_models.PlaceVisit{{Name: "Musée d'Orsay"}}},
		{Day: 2, Places: []response_models.PlaceVisit{{Name: "Versailles"}, {Name: "Latin Quarter"}}},
	}

	days := ReconcileModification(existing, revised)

	require.Len(t, days, 2)
	assert.Equal(t, existing[0].Date, days[0].Date)
	assert.Equal(t, "arrival day", days[0].Notes)
	assert.Equal(t, existing[1].Date, days[1].Date)
	assert.Equal(t, "departure day", days[1].Notes)

	require.Len(t, days[0].Places, 1)
	assert.Equal(t, "Musée d'Orsay", days[0].Places[0].Name, "places are replaced wholesale")
	require.Len(t, days[1].Places, 2)
}

func TestReconcileModificationExtraDaysGetDefaults(t *testing.T) {
	existing := sampleTrip(uuid.New()).Days[:1]
	revised := []response_models.RevisedDay{
		{Day: 1, Places: []response_models.PlaceVisit{{Name: "A"}}},
		{Day: 2, Places: []response_models.PlaceVisit{{Name: "B"}}},
	}

	before := time.Now()
	days := ReconcileModification(existing, revised)

	require.Len(t, days, 2)
	assert.Equal(t, existing[0].Date, days[0].Date)
	assert.Equal(t, "", days[1].Notes)
	assert.False(t, days[1].Date.Before(before), "days beyond the original length default to now")
	assert.Equal(t, 2, days[1].DayNumber)
}

func TestReconcileModificationCarriesCompletionFlags(t *testing.T) {
	existing := sampleTrip(uuid.New()).Days
	revised := []response_models.RevisedDay{
		{Day: 1, Places: []response_models.PlaceVisit{
			{Name: "Louvre Museum", Completed: true},
			{Name: "New Spot"},
		}},
	}

	days := ReconcileModification(existing, revised)

	require.Len(t, days[0].Places, 2)
	assert.True(t, days[0].Places[0].Completed)
	assert.False(t, days[0].Places[1].Completed)
}

func TestGetTripNotFound(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	tripID, userID := uuid.New(), uuid.New()
	repo.On("FindByIDAndUser", mock.Anything, tripID, userID).Return(nil, nil)

	_, err := svc.GetTrip(context.Background(), tripID, userID)

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestDeleteTripNotFound(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	tripID, userID := uuid.New(), uuid.New()
	repo.On("Delete", mock.Anything, tripID, userID).Return(false, nil)

	err := svc.DeleteTrip(context.Background(), tripID, userID)

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestAddPlaceInvalidDayIndexLeavesTripUntouched(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	userID := uuid.New()
	trip := sampleTrip(userID)
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)

	_, err := svc.AddPlace(context.Background(), trip.ID, userID, 5, request_models.PlacePayload{Name: "X"})

	assert.ErrorIs(t, err, utils.ErrInvalidDayIndex)
	repo.AssertNotCalled(t, "CreatePlace", mock.Anything, mock.Anything)
	assert.Len(t, trip.Days[0].Places, 2)
	assert.Len(t, trip.Days[1].Places, 1)
}

func TestAddPlaceAppendsWithNextSortIndex(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	userID := uuid.New()
	trip := sampleTrip(userID)
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)
	repo.On("CreatePlace", mock.Anything, mock.Anything).Return(nil)

	lng, lat := 2.3364, 48.8606
	updated, err := svc.AddPlace(context.Background(), trip.ID, userID, 0, request_models.PlacePayload{
		Name:      "Tuileries Garden",
		Longitude: &lng,
		Latitude:  &lat,
	})

	require.NoError(t, err)
	require.Len(t, updated.Days[0].Places, 3)
	added := updated.Days[0].Places[2]
	assert.Equal(t, 2, added.SortIndex)
	assert.False(t, added.AIRecommendation)
	require.NotNil(t, added.Location())
	assert.Equal(t, 2.3364, added.Location().Longitude)
}

func TestRemovePlaceInvalidPlaceIndexLeavesTripUntouched(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	userID := uuid.New()
	trip := sampleTrip(userID)
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)

	_, err := svc.RemovePlace(context.Background(), trip.ID, userID, 1, 3)

	assert.ErrorIs(t, err, utils.ErrInvalidPlaceIndex)
	repo.AssertNotCalled(t, "DeletePlace", mock.Anything, mock.Anything)
	assert.Len(t, trip.Days[1].Places, 1)
}

func TestRemovePlaceDeletesAndCompacts(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	userID := uuid.New()
	trip := sampleTrip(userID)
	target := trip.Days[0].Places[0].ID
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)
	repo.On("DeletePlace", mock.Anything, target).Return(nil)

	updated, err := svc.RemovePlace(context.Background(), trip.ID, userID, 0, 0)

	require.NoError(t, err)
	require.Len(t, updated.Days[0].Places, 1)
	assert.Equal(t, "Café de Flore", updated.Days[0].Places[0].Name)
	repo.AssertCalled(t, "DeletePlace", mock.Anything, target)
}

func TestTogglePlaceCompletionFlips(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	userID := uuid.New()
	trip := sampleTrip(userID)
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)
	repo.On("SavePlace", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.TogglePlaceCompletion(context.Background(), trip.ID, userID, 0, 1)

	require.NoError(t, err)
	assert.True(t, updated.Days[0].Places[1].Completed)

	updated, err = svc.TogglePlaceCompletion(context.Background(), trip.ID, userID, 0, 1)
	require.NoError(t, err)
	assert.False(t, updated.Days[0].Places[1].Completed)
}

func TestUpdatePlaceAppliesOnlyProvidedFields(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	userID := uuid.New()
	trip := sampleTrip(userID)
	trip.Days[0].Places[0].Time = "09:00 AM"
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)
	repo.On("SavePlace", mock.Anything, mock.Anything).Return(nil)

	newCost := "€22"
	updated, err := svc.UpdatePlace(context.Background(), trip.ID, userID, 0, 0, request_models.UpdatePlacePayload{
		Cost: &newCost,
	})

	require.NoError(t, err)
	place := updated.Days[0].Places[0]
	assert.Equal(t, "€22", place.Cost)
	assert.Equal(t, "Louvre Museum", place.Name, "unset fields stay as they were")
	assert.Equal(t, "09:00 AM", place.Time)
}

func TestModifyTripWithAIReplacesDays(t *testing.T) {
	repo := new(MockTripRepository)
	generation := new(MockGenerationService)
	svc := NewTripService(repo, generation)

	userID := uuid.New()
	trip := sampleTrip(userID)
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)

	revision := &response_models.RevisedItinerary{
		Itinerary: []response_models.RevisedDay{
			{Day: 1, Places: []response_models.PlaceVisit{{Name: "Musée d'Orsay"}}},
			{Day: 2, Places: []response_models.PlaceVisit{{Name: "Versailles"}}},
		},
	}
	generation.On("ModifyItinerary", mock.Anything, trip, "more art, fewer cafés").Return(revision, nil)

	var replaced []db_models.TripDay
	repo.On("ReplaceDays", mock.Anything, trip.ID, mock.Anything).
		Run(func(args mock.Arguments) { replaced = args.Get(2).([]db_models.TripDay) }).
		Return(nil)

	_, err := svc.ModifyTripWithAI(context.Background(), trip.ID, userID, "more art, fewer cafés")

	require.NoError(t, err)
	require.Len(t, replaced, 2)
	assert.Equal(t, trip.Days[0].Date, replaced[0].Date)
	assert.Equal(t, "arrival day", replaced[0].Notes)
	assert.Equal(t, "Musée d'Orsay", replaced[0].Places[0].Name)
}

func TestModifyTripWithAIEmptyPromptDoesNotTouchRepo(t *testing.T) {
	repo := new(MockTripRepository)
	generation := new(MockGenerationService)
	svc := NewTripService(repo, generation)

	userID := uuid.New()
	trip := sampleTrip(userID)
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)
	generation.On("ModifyItinerary", mock.Anything, trip, "").Return(nil, utils.ErrEmptyPrompt)

	_, err := svc.ModifyTripWithAI(context.Background(), trip.ID, userID, "")

	assert.ErrorIs(t, err, utils.ErrEmptyPrompt)
	repo.AssertNotCalled(t, "ReplaceDays", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTripBuildsOrderedDaysFromPayload(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	var created *db_models.Trip
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*db_models.Trip) }).
		Return(nil)

	userID := uuid.New()
	lng, lat := -9.1393, 38.7223
	req := request_models.CreateTripRequest{
		Title:     "Lisbon Weekend",
		StartDate: time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC),
		Days: []request_models.DayPayload{
			{
				Date:  time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC),
				Notes: "arrival",
				Places: []request_models.PlacePayload{
					{Name: "Belém Tower", Longitude: &lng, Latitude: &lat},
					{Name: "Time Out Market"},
				},
			},
			{Date: time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)},
		},
	}

	trip, err := svc.CreateTrip(context.Background(), userID, req)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, userID, trip.UserID)
	assert.Equal(t, "Lisbon Weekend", trip.Title)
	require.Len(t, trip.Days, 2)
	assert.Equal(t, 1, trip.Days[0].DayNumber)
	assert.Equal(t, 2, trip.Days[1].DayNumber)
	assert.Equal(t, "arrival", trip.Days[0].Notes)

	require.Len(t, trip.Days[0].Places, 2)
	assert.Equal(t, 0, trip.Days[0].Places[0].SortIndex)
	assert.Equal(t, 1, trip.Days[0].Places[1].SortIndex)
	require.NotNil(t, trip.Days[0].Places[0].Location())
	assert.Equal(t, -9.1393, trip.Days[0].Places[0].Location().Longitude)
	assert.Nil(t, trip.Days[0].Places[1].Location())
	assert.False(t, trip.Days[0].Places[0].AIRecommendation, "manual places are not AI recommendations")
}

func TestCreateTripRepoFailure(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	repo.On("Create", mock.Anything, mock.Anything).Return(errDB)

	_, err := svc.CreateTrip(context.Background(), uuid.New(), request_models.CreateTripRequest{Title: "x"})

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestListTripsReturnsOwnerRows(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	userID := uuid.New()
	rows := []db_models.Trip{*sampleTrip(userID), *sampleTrip(userID)}
	repo.On("ListByUser", mock.Anything, userID).Return(rows, nil)

	trips, err := svc.ListTrips(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, trips, 2)
}

func TestListTripsRepoFailure(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	repo.On("ListByUser", mock.Anything, mock.Anything).Return(nil, errDB)

	_, err := svc.ListTrips(context.Background(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestUpdateTripAppliesOnlyProvidedFields(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	userID := uuid.New()
	trip := sampleTrip(userID)
	originalStart := trip.StartDate
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)

	var saved *db_models.Trip
	repo.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*db_models.Trip) }).
		Return(nil)

	_, err := svc.UpdateTrip(context.Background(), trip.ID, userID, request_models.UpdateTripRequest{
		Title: "Renamed Trip",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Renamed Trip", saved.Title)
	assert.Equal(t, originalStart, saved.StartDate, "unset fields stay as they were")
	assert.Nil(t, saved.Days, "days are not re-saved through the association")
	repo.AssertNotCalled(t, "ReplaceDays", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTripReplacesDaysWhenProvided(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	userID := uuid.New()
	trip := sampleTrip(userID)
	repo.On("FindByIDAndUser", mock.Anything, trip.ID, userID).Return(trip, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	var replaced []db_models.TripDay
	repo.On("ReplaceDays", mock.Anything, trip.ID, mock.Anything).
		Run(func(args mock.Arguments) { replaced = args.Get(2).([]db_models.TripDay) }).
		Return(nil)

	_, err := svc.UpdateTrip(context.Background(), trip.ID, userID, request_models.UpdateTripRequest{
		Days: []request_models.DayPayload{
			{Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Places: []request_models.PlacePayload{{Name: "New Stop"}}},
		},
	})

	require.NoError(t, err)
	require.Len(t, replaced, 1)
	assert.Equal(t, "New Stop", replaced[0].Places[0].Name)
}

func TestUpdateTripNotFound(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	tripID, userID := uuid.New(), uuid.New()
	repo.On("FindByIDAndUser", mock.Anything, tripID, userID).Return(nil, nil)

	_, err := svc.UpdateTrip(context.Background(), tripID, userID, request_models.UpdateTripRequest{Title: "x"})

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateTripFromItinerarySetsMetadata(t *testing.T) {
	repo := new(MockTripRepository)
	svc := NewTripService(repo, new(MockGenerationService))

	var created *db_models.Trip
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*db_models.Trip) }).
		Return(nil)

	userID := uuid.New()
	itinerary := &response_models.AIItinerary{
		TotalEstimatedCost: "€450",
		Currency:           "EUR",
		Itinerary: []response_models.DayPlan{
			{Day: 1, DailyCost: "€150", Places: []response_models.PlaceVisit{{Name: "Louvre Museum"}}},
			{Day: 2, DailyCost: "€160", Places: []response_models.PlaceVisit{{Name: "Eiffel Tower"}}},
			{Day: 3, DailyCost: "€140", Places: []response_models.PlaceVisit{{Name: "Montmartre"}}},
		},
	}

	trip, err := svc.CreateTripFromItinerary(context.Background(), userID, parisParams(), itinerary)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Paris - 3 Day Couple Trip", trip.Title)
	assert.Equal(t, userID, trip.UserID)
	assert.Equal(t, "EUR", trip.Currency)
	assert.Equal(t, "€450", trip.TotalEstimatedCost)
	assert.Len(t, trip.Days, 3)
	assert.Equal(t, trip.StartDate.AddDate(0, 0, 2), trip.EndDate)
	require.NotNil(t, trip.GeneratedAt)
}
