package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripforge/cmd/fx/geofx"
	"tripforge/cmd/fx/imagesfx"
	"tripforge/cmd/fx/itineraryfx"
	"tripforge/cmd/fx/plannerfx"
	"tripforge/cmd/fx/resiliencefx"
	"tripforge/cmd/fx/tripsfx"
	"tripforge/internal/api/controllers"
	"tripforge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	app := fx.New(
		resiliencefx.Module,
		plannerfx.Module,
		geofx.Module,
		imagesfx.Module,
		itineraryfx.Module,
		tripsfx.Module,

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
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", itineraryController.GenerateItinerary)

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.GET("/:id", tripsController.GetTrip)
	tripsGroup.POST("", tripsController.CreateTrip)
	tripsGroup.DELETE("/:id", tripsController.DeleteTrip)
}
