package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"primetravel/internal/models/request_models"
	"primetravel/internal/services"
	"primetravel/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

func (t *TripController) CreateTrip(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		utils.RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

func (t *TripController) ListTrips(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (t *TripController) GetTrip(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func (t *TripController) UpdateTrip(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), tripID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

func (t *TripController) DeleteTrip(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

func (t *TripController) AddPlace(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}

	var payload request_models.PlacePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place name is required")
		return
	}

	trip, err := t.tripService.AddPlace(c.Request.Context(), tripID, userID, dayIndex, payload)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Place added successfully")
}

func (t *TripController) RemovePlace(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	placeIndex, ok := indexParam(c, "placeIndex")
	if !ok {
		return
	}

	trip, err := t.tripService.RemovePlace(c.Request.Context(), tripID, userID, dayIndex, placeIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Place removed successfully")
}

func (t *TripController) ToggleCompletion(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	placeIndex, ok := indexParam(c, "placeIndex")
	if !ok {
		return
	}

	trip, err := t.tripService.TogglePlaceCompletion(c.Request.Context(), tripID, userID, dayIndex, placeIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Place completion toggled successfully")
}

func (t *TripController) UpdatePlace(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	placeIndex, ok := indexParam(c, "placeIndex")
	if !ok {
		return
	}

	var payload request_models.UpdatePlacePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := t.tripService.UpdatePlace(c.Request.Context(), tripID, userID, dayIndex, placeIndex, payload)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Place updated successfully")
}

func (t *TripController) ModifyTrip(c *gin.Context) {

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	var req request_models.ModifyTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := t.tripService.ModifyTripWithAI(c.Request.Context(), tripID, userID, req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip modified successfully")
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := userIDFromHeader(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "A valid X-User-ID header is required")
		return uuid.Nil, false
	}
	return userID, true
}

func tripIDParam(c *gin.Context) (uuid.UUID, bool) {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return uuid.Nil, false
	}
	return tripID, true
}

func indexParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return value, true
}
