package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"primetravel/internal/models/request_models"
	"primetravel/internal/models/response_models"
	"primetravel/internal/services"
	"primetravel/pkg/utils"
)

type GenerateController struct {
	generationService services.GenerationServiceInterface
	tripService       services.TripServiceInterface
}

func NewGenerateController(
	generationService services.GenerationServiceInterface,
	tripService services.TripServiceInterface) *GenerateController {
	return &GenerateController{
		generationService: generationService,
		tripService:       tripService,
	}
}

// GenerateTrip builds an AI itinerary for the requested destination. When
// the caller identifies itself via the X-User-ID header the itinerary is
// also persisted as a trip; anonymous callers only get the itinerary back.
func (g *GenerateController) GenerateTrip(c *gin.Context) {

	var req request_models.CreateTripWithAIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary, err := g.generationService.Generate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	res := response_models.GeneratedTripResponse{
		AIItinerary: *itinerary,
		LandingCity: req.LandingCity,
		TripDays:    req.TripDays,
		Month:       req.Month,
		Budget:      req.Budget,
		GroupType:   req.GroupType,
		Interests:   req.Interests,
		GeneratedAt: time.Now(),
	}

	if userID, ok := userIDFromHeader(c); ok {
		trip, err := g.tripService.CreateTripFromItinerary(c.Request.Context(), userID, req, itinerary)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		res.TripID = &trip.ID
	}

	utils.RespondCreated(c, res, "Itinerary generated successfully")
}

func userIDFromHeader(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
