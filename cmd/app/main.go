package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"resto/cmd/fx/address_fx"
	"resto/cmd/fx/auth_fx"
	"resto/cmd/fx/controllers_fx"
	"resto/cmd/fx/db_fx"
	"resto/cmd/fx/favorites_fx"
	"resto/cmd/fx/locations_fx"
	"resto/cmd/fx/memcache_fx"
	"resto/cmd/fx/storage_fx"
	"resto/cmd/fx/tagsfx"
	"resto/internal/api/controllers"
	"resto/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, reading from environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		auth_fx.Module,
		storage_fx.Module,
		address_fx.Module,
		locations_fx.Module,
		tagsfx.Module,
		favorites_fx.Module,
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
					port = "3001"
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
	gate *middleware.AuthGate,
	locationsController *controllers.LocationsController,
	tagsController *controllers.TagsController,
	favoritesController *controllers.FavoritesController,
	authController *controllers.AuthController,
	uploadController *controllers.UploadController,
	addressController *controllers.AddressController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, gate, locationsController, tagsController,
		favoritesController, authController, uploadController,
		addressController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	gate *middleware.AuthGate,
	locationsController *controllers.LocationsController,
	tagsController *controllers.TagsController,
	favoritesController *controllers.FavoritesController,
	authController *controllers.AuthController,
	uploadController *controllers.UploadController,
	addressController *controllers.AddressController,
	healthController *controllers.HealthController) {

	r.GET("/health", healthController.Health)

	r.GET("/cities", locationsController.GetCities)
	r.GET("/tags", tagsController.ListAllTagsHandler)
	r.GET("/locations", locationsController.GetLocations)
	r.GET("/locations/:id", locationsController.GetLocationByID)

	authGroup := r.Group("/auth")
	authGroup.POST("/api/login", authController.Login)
	authGroup.GET("/logout", authController.Logout)

	meGroup := r.Group("/me", gate.RequireAuth())
	meGroup.GET("", authController.Me)
	meGroup.GET("/favorites", favoritesController.ListFavorites)
	meGroup.POST("/favorites/:locationId", favoritesController.AddFavorite)
	meGroup.DELETE("/favorites/:locationId", favoritesController.RemoveFavorite)

	adminGroup := r.Group("/admin", gate.RequireAdmin())
	adminGroup.GET("/locations", locationsController.ListAllLocations)
	adminGroup.POST("/locations", locationsController.CreateLocation)
	adminGroup.PUT("/locations/:id", locationsController.UpdateLocation)
	adminGroup.DELETE("/locations/:id", locationsController.DeleteLocation)

	adminGroup.POST("/tags", tagsController.CreateTag)
	adminGroup.PUT("/tags/:id", tagsController.UpdateTag)
	adminGroup.DELETE("/tags/:id", tagsController.DeleteTag)

	adminGroup.GET("/address-lookup", addressController.Lookup)

	adminGroup.POST("/upload", uploadController.Upload)
	adminGroup.DELETE("/upload", uploadController.DeleteUpload)
	adminGroup.GET("/storage/info", uploadController.StorageInfo)
}
