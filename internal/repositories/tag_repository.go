package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resto/internal/models/db_models"
)

type TagRepository interface {
	Create(ctx context.Context, tag *db_models.Tag) error
	Update(ctx context.Context, tag *db_models.Tag) error
	Delete(ctx context.Context, tagID string) error

	GetByID(ctx context.Context, tagID string) (*db_models.Tag, error)
	GetAll(ctx context.Context) ([]db_models.Tag, error)
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

type tagRepository struct {
	db *gorm.DB
}

func (t *tagRepository) Create(ctx context.Context, tag *db_models.Tag) error {
	return t.db.WithContext(ctx).Create(tag).Error
}

func (t *tagRepository) Update(ctx context.Context, tag *db_models.Tag) error {
	return t.db.WithContext(ctx).Save(tag).Error
}

// Delete drops the join rows first so no location is left pointing at a
// missing tag; both statements share one transaction.
func (t *tagRepository) Delete(ctx context.Context, tagID string) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM location_tags WHERE tag_id = ?", tagID).Error; err != nil {
			return err
		}
		err := tx.Delete(&db_models.Tag{}, "id = ?", tagID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
}

func (t *tagRepository) GetByID(ctx context.Context, tagID string) (*db_models.Tag, error) {
	var tag db_models.Tag
	err := t.db.WithContext(ctx).Where("id = ?", tagID).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (t *tagRepository) GetAll(ctx context.Context) ([]db_models.Tag, error) {
	var tags []db_models.Tag
	err := t.db.WithContext(ctx).
		Order("kind ASC").
		Order("name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
