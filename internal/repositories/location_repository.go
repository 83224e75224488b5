package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resto/internal/models/db_models"
)

// BoundingBox is west/south/east/north in degrees.
type BoundingBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

// LocationQuery holds the filters that can be pushed into the SQL
// predicate. City and tag-slug filtering happen after the fetch, in the
// service, because the stored city text and tag slugs are free-form and
// must be compared through the slug normalizer.
type LocationQuery struct {
	PublishedOnly bool
	BBox          *BoundingBox
	PriceMin      *int
	PriceMax      *int
}

type CityCount struct {
	City  string
	Count int
}

type LocationRepository interface {
	Create(ctx context.Context, location *db_models.Location, tagIDs []uuid.UUID) error
	Update(ctx context.Context, location *db_models.Location, tagIDs *[]uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Location, error)
	List(ctx context.Context, query LocationQuery) ([]db_models.Location, error)
	ListCities(ctx context.Context, limit int) ([]CityCount, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func tagRefs(tagIDs []uuid.UUID) []db_models.Tag {
	tags := make([]db_models.Tag, len(tagIDs))
	for i, id := range tagIDs {
		tags[i] = db_models.Tag{BaseModel: db_models.BaseModel{ID: id}}
	}
	return tags
}

// Create inserts the row and its tag associations in one transaction so a
// crash cannot leave a location with half its tags.
func (r *locationRepository) Create(ctx context.Context, location *db_models.Location, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(location).Error; err != nil {
			return err
		}
		if len(tagIDs) > 0 {
			if err := tx.Model(location).Association("Tags").Replace(tagRefs(tagIDs)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update saves the row and, when tagIDs is non-nil, replaces the tag
// associations in the same transaction.
func (r *locationRepository) Update(ctx context.Context, location *db_models.Location, tagIDs *[]uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(location).Error; err != nil {
			return err
		}
		if tagIDs != nil {
			if err := tx.Model(location).Association("Tags").Replace(tagRefs(*tagIDs)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		location := db_models.Location{BaseModel: db_models.BaseModel{ID: id}}
		if err := tx.Model(&location).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("location_id = ?", id).Delete(&db_models.Favorite{}).Error; err != nil {
			return err
		}
		err := tx.Delete(&db_models.Location{}, "id = ?", id).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).
		Preload("Tags").
		First(&location, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context, query LocationQuery) ([]db_models.Location, error) {
	db := r.db.WithContext(ctx).Model(&db_models.Location{}).Preload("Tags")

	if query.PublishedOnly {
		db = db.Where("is_published = ?", true)
	}
	if b := query.BBox; b != nil {
		db = db.Where("lng BETWEEN ? AND ? AND lat BETWEEN ? AND ?",
			b.West, b.East, b.South, b.North)
	}
	if query.PriceMin != nil {
		db = db.Where("price_level >= ?", *query.PriceMin)
	}
	if query.PriceMax != nil {
		db = db.Where("price_level <= ?", *query.PriceMax)
	}

	var locations []db_models.Location
	err := db.
		Order("featured_rank ASC NULLS LAST").
		Order("name ASC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) ListCities(ctx context.Context, limit int) ([]CityCount, error) {
	var cities []CityCount
	err := r.db.WithContext(ctx).
		Model(&db_models.Location{}).
		Select("city, COUNT(*) AS count").
		Where("city IS NOT NULL AND city <> ''").
		Group("city").
		Order("count DESC").
		Order("city ASC").
		Limit(limit).
		Scan(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
