package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"primetravel/internal/models/db_models"
	"primetravel/internal/models/request_models"
	"primetravel/internal/models/response_models"
	"primetravel/pkg/utils"
)

const (
	defaultMaxRetries = 2

	// Backoff applies only to rate-limit failures: that is the one failure
	// mode where an immediate retry is guaranteed to fail again. Everything
	// else (malformed JSON, schema mismatch, transient transport errors) is
	// presumed model nondeterminism and retried immediately.
	rateLimitBackoffUnit = 5 * time.Second
)

type GenerationServiceInterface interface {
	Generate(ctx context.Context, params request_models.CreateTripWithAIRequest) (*response_models.AIItinerary, error)
	ModifyItinerary(ctx context.Context, trip *db_models.Trip, request string) (*response_models.RevisedItinerary, error)
}

type GenerationService struct {
	llm        utils.CompletionClientInterface
	currency   CurrencyServiceInterface
	maxRetries int
	sleep      func(time.Duration)
}

func NewGenerationService(llm utils.CompletionClientInterface, currency CurrencyServiceInterface) GenerationServiceInterface {
	return &GenerationService{
		llm:        llm,
		currency:   currency,
		maxRetries: defaultMaxRetries,
		sleep:      time.Sleep,
	}
}

// Generate runs the full pipeline: parameter validation, one currency
// resolution, one prompt build, then up to maxRetries+1 completion
// attempts. The same prompt is resent on every attempt. The caller gets
// either a complete, schema-valid itinerary or a single terminal error,
// never a partially validated result.
func (s *GenerationService) Generate(ctx context.Context, params request_models.CreateTripWithAIRequest) (*response_models.AIItinerary, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidRequest, err)
	}

	currencyInfo := s.currency.ResolveCurrency(ctx, params.LandingCity)
	log.Printf("Generating trip for %s - Currency: %s (%s) - Country: %s",
		params.LandingCity, currencyInfo.Currency, currencyInfo.Symbol, currencyInfo.Country)

	userPrompt := BuildUserPrompt(params, currencyInfo)

	var lastErr error
	attempts := s.maxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		itinerary, err := s.attempt(ctx, userPrompt)
		if err == nil {
			backfillCurrency(itinerary, currencyInfo)
			return itinerary, nil
		}

		lastErr = err
		log.Printf("AI generation attempt %d/%d failed: %v", attempt+1, attempts, err)

		if utils.IsRateLimited(err) && attempt < s.maxRetries {
			wait := time.Duration(attempt+1) * rateLimitBackoffUnit
			log.Printf("Rate limited. Waiting %s before retry...", wait)
			s.sleep(wait)
		}
	}

	return nil, &utils.GenerationError{Attempts: attempts, Err: lastErr}
}

func (s *GenerationService) attempt(ctx context.Context, userPrompt string) (*response_models.AIItinerary, error) {
	raw, err := s.llm.Complete(ctx, SystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}
	return response_models.DecodeItinerary(raw)
}

// ModifyItinerary asks the model to revise an existing trip. A single
// attempt, no retry loop: the caller surfaces failures directly and the
// user simply re-submits.
func (s *GenerationService) ModifyItinerary(ctx context.Context, trip *db_models.Trip, request string) (*response_models.RevisedItinerary, error) {
	if strings.TrimSpace(request) == "" {
		return nil, utils.ErrEmptyPrompt
	}

	raw, err := s.llm.Complete(ctx, ModificationSystemPrompt, BuildModificationPrompt(trip, request))
	if err != nil {
		return nil, err
	}
	return response_models.DecodeRevisedItinerary(raw)
}

// backfillCurrency fills currency fields the model omitted from the
// resolved CurrencyInfo. Fields the model did include are left alone.
func backfillCurrency(it *response_models.AIItinerary, info CurrencyInfo) {
	if it.Currency == "" {
		it.Currency = info.Currency
	}
	if it.CurrencySymbol == "" {
		it.CurrencySymbol = info.Symbol
	}
	if it.Country == "" {
		it.Country = info.Country
	}
}
