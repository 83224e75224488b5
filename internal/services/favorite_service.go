package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"resto/internal/models/response_models"
	"resto/internal/repositories"
	"resto/pkg/utils"
)

type FavoriteServiceInterface interface {
	Add(ctx context.Context, userID, locationID string) error
	Remove(ctx context.Context, userID, locationID string) error
	List(ctx context.Context, userID string) ([]response_models.Location, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	locationRepo repositories.LocationRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, locationRepo repositories.LocationRepository) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		locationRepo: locationRepo,
	}
}

func (f *FavoriteService) Add(ctx context.Context, userID, locationID string) error {
	id, err := uuid.Parse(locationID)
	if err != nil {
		return utils.ErrLocationNotFound
	}

	location, err := f.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return utils.ErrDatabaseError
	}
	if location == nil {
		return utils.ErrLocationNotFound
	}

	if err := f.favoriteRepo.Add(ctx, userID, id); err != nil {
		log.Printf("Error adding favorite: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoriteService) Remove(ctx context.Context, userID, locationID string) error {
	id, err := uuid.Parse(locationID)
	if err != nil {
		return utils.ErrLocationNotFound
	}

	if err := f.favoriteRepo.Remove(ctx, userID, id); err != nil {
		log.Printf("Error removing favorite: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FavoriteService) List(ctx context.Context, userID string) ([]response_models.Location, error) {
	favorites, err := f.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing favorites: %v", err)
		return nil, utils.ErrDatabaseError
	}

	locations := make([]response_models.Location, 0, len(favorites))
	for _, favorite := range favorites {
		location := toLocationResponse(favorite.Location)
		location.FavoritedAt = favorite.CreatedAt
		locations = append(locations, location)
	}
	return locations, nil
}
