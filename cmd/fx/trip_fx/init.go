package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"primetravel/internal/repositories"
	"primetravel/internal/services"
	"primetravel/pkg/utils"
)

var Module = fx.Provide(
	provideTripRepo,
	provideCurrencyService,
	provideGenerationService,
	provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideCurrencyService() services.CurrencyServiceInterface {
	return services.NewCurrencyService()
}

func provideGenerationService(
	llm utils.CompletionClientInterface,
	currency services.CurrencyServiceInterface) services.GenerationServiceInterface {

	return services.NewGenerationService(llm, currency)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	generation services.GenerationServiceInterface) services.TripServiceInterface {

	return services.NewTripService(tripRepo, generation)
}
