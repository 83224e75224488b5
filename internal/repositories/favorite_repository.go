package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resto/internal/models/db_models"
)

type FavoriteRepository interface {
	// Add is idempotent: inserting an existing pair is a no-op.
	Add(ctx context.Context, userID string, locationID uuid.UUID) error

	// Remove is idempotent: deleting an absent pair is not an error.
	Remove(ctx context.Context, userID string, locationID uuid.UUID) error

	ListByUser(ctx context.Context, userID string) ([]db_models.Favorite, error)
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

type favoriteRepository struct {
	db *gorm.DB
}

func (f *favoriteRepository) Add(ctx context.Context, userID string, locationID uuid.UUID) error {
	favorite := db_models.Favorite{
		UserID:     userID,
		LocationID: locationID,
	}
	return f.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favorite).Error
}

func (f *favoriteRepository) Remove(ctx context.Context, userID string, locationID uuid.UUID) error {
	err := f.db.WithContext(ctx).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Delete(&db_models.Favorite{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (f *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Favorite, error) {
	var favorites []db_models.Favorite
	err := f.db.WithContext(ctx).
		Preload("Location.Tags").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
