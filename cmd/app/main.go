package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"rionido/cmd/fx/auth_fx"
	"rionido/cmd/fx/catalog_fx"
	"rionido/cmd/fx/concierge_fx"
	"rionido/cmd/fx/controllers_fx"
	"rionido/cmd/fx/db_fx"
	"rionido/cmd/fx/itinerary_fx"
	"rionido/cmd/fx/memcache_fx"
	"rionido/internal/api/controllers"
	"rionido/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		itinerary_fx.Module,
		memcache_fx.Module,
		concierge_fx.Module,
		auth_fx.Module,
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
				log.Printf("Starting HTTP server on :%s", port)
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
	catalogController *controllers.CatalogController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, catalogController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	catalogController *controllers.CatalogController,
	authController *controllers.AuthController) {

	itineraries := r.Group("/itineraries")
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.POST("/signature-day", itineraryController.PlanSignatureDay)
	itineraries.GET("/:sessionId", itineraryController.GetSession)
	itineraries.POST("/:sessionId/replace", itineraryController.ReplaceActivity)
	itineraries.POST("/:sessionId/email", itineraryController.EmailItinerary)

	catalog := r.Group("/catalog")
	catalog.GET("/experiences", catalogController.GetExperiences)
	catalog.GET("/signature-experiences", catalogController.GetSignatureExperiences)
	catalog.POST("/reload",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware("staff"),
		catalogController.ReloadCatalog)

	auth := r.Group("/auth")
	auth.POST("/login", authController.Login)
}
