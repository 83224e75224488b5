package request_models

import "github.com/google/uuid"

type CreateLocationRequest struct {
	City                string `json:"city"`
	Street              string `json:"street"`
	HouseNumber         string `json:"house_number"`
	HouseNumberAddition string `json:"house_number_addition"`
	Postcode            string `json:"postcode"`

	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	WhyCurated  string `json:"why_curated"`

	PriceLevel *int     `json:"price_level" binding:"omitempty,min=1,max=4"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`

	Address      *string  `json:"address"`
	HeroImageURL string   `json:"hero_image_url"`
	GalleryURLs  []string `json:"gallery_urls"`

	IsPublished  bool `json:"is_published"`
	FeaturedRank *int `json:"featured_rank"`

	TagIDs []uuid.UUID `json:"tag_ids"`
}

// UpdateLocationRequest is a partial update: nil pointers leave the stored
// value untouched, non-nil pointers overwrite.
type UpdateLocationRequest struct {
	City                *string `json:"city"`
	Street              *string `json:"street"`
	HouseNumber         *string `json:"house_number"`
	HouseNumberAddition *string `json:"house_number_addition"`
	Postcode            *string `json:"postcode"`

	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	WhyCurated  *string `json:"why_curated"`

	PriceLevel *int     `json:"price_level" binding:"omitempty,min=1,max=4"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`

	Address      *string   `json:"address"`
	HeroImageURL *string   `json:"hero_image_url"`
	GalleryURLs  *[]string `json:"gallery_urls"`

	IsPublished  *bool `json:"is_published"`
	FeaturedRank *int  `json:"featured_rank"`

	TagIDs *[]uuid.UUID `json:"tag_ids"`
}

// LocationFilter is the query surface of the public listing. Zero values
// mean "unfiltered".
type LocationFilter struct {
	City     string
	BBox     string
	TagSlugs string
	PriceMin string
	PriceMax string
}
