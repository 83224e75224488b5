package locations_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"resto/internal/repositories"
	"resto/internal/services"
)

var Module = fx.Provide(
	provideLocationsRepo, provideLocationsService)

func provideLocationsRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideLocationsService(locationRepo repositories.LocationRepository, uploadService services.UploadServiceInterface) services.LocationServiceInterface {
	return services.NewLocationService(locationRepo, uploadService)
}
