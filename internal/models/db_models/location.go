package db_models

import "github.com/lib/pq"

type Location struct {
	BaseModel
	City                string
	Street              string
	HouseNumber         string
	HouseNumberAddition string
	Postcode            string

	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	WhyCurated  string

	PriceLevel *int `gorm:"check:price_level BETWEEN 1 AND 4"`
	Lat        *float64
	Lng        *float64

	// Display string composed from the postal fields; kept denormalized so
	// the frontends never re-derive it.
	Address string

	HeroImageURL string
	GalleryURLs  pq.StringArray `gorm:"type:text[]"`

	IsPublished  bool `gorm:"not null;default:false"`
	FeaturedRank *int

	Tags []Tag `gorm:"many2many:location_tags"`
}
