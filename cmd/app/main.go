package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"primetravel/cmd/fx/controllers_fx"
	"primetravel/cmd/fx/db_fx"
	"primetravel/cmd/fx/llm_fx"
	"primetravel/cmd/fx/trip_fx"
	"primetravel/internal/api/controllers"
	"primetravel/pkg/middleware"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		llm_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	generateController *controllers.GenerateController,
	tripController *controllers.TripController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, generateController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	generateController *controllers.GenerateController,
	tripController *controllers.TripController) {

	trips := r.Group("/trips")
	trips.POST("/generate", generateController.GenerateTrip)

	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.PUT("/:tripId", tripController.UpdateTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)

	trips.POST("/:tripId/days/:dayIndex/places", tripController.AddPlace)
	trips.DELETE("/:tripId/days/:dayIndex/places/:placeIndex", tripController.RemovePlace)
	trips.PATCH("/:tripId/days/:dayIndex/places/:placeIndex/complete", tripController.ToggleCompletion)
	trips.PUT("/:tripId/days/:dayIndex/places/:placeIndex", tripController.UpdatePlace)

	trips.POST("/:tripId/modify", tripController.ModifyTrip)
}
