package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite links an identity-provider user to a location. One row per
// pair; adding twice is a no-op.
type Favorite struct {
	UserID     string    `gorm:"primaryKey"`
	LocationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  int64     `gorm:"autoCreateTime"`

	Location Location `gorm:"foreignKey:LocationID"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.CreatedAt == 0 {
		f.CreatedAt = time.Now().Unix()
	}
	return nil
}
