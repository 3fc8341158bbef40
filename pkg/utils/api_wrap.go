package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	respond(c, code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP statuses:
// invalid parameters and bad indices are client errors, upstream failures
// are 502, exhausted generation is 500.
func HandleServiceError(c *gin.Context, err error) {
	var genErr *GenerationError
	var upErr *UpstreamError

	switch {
	case errors.Is(err, ErrInvalidRequest):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmptyPrompt):
		RespondError(c, http.StatusBadRequest, "Prompt is required")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrInvalidDayIndex):
		RespondError(c, http.StatusBadRequest, "Invalid day index")
	case errors.Is(err, ErrInvalidPlaceIndex):
		RespondError(c, http.StatusBadRequest, "Invalid place index")
	case errors.As(err, &genErr):
		log.Printf("Generation error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to generate itinerary")
	case errors.As(err, &upErr):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "Upstream service unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respond(c *gin.Context, code int, body APIResponse) {
	if traceID, ok := c.Get("trace_id"); ok {
		if s, ok := traceID.(string); ok {
			body.TraceID = s
		}
	}
	c.JSON(code, body)
}
