package favorites_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"resto/internal/repositories"
	"resto/internal/services"
)

var Module = fx.Provide(
	provideFavoritesRepo, provideFavoritesService)

func provideFavoritesRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoritesService(favoriteRepo repositories.FavoriteRepository, locationRepo repositories.LocationRepository) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, locationRepo)
}
