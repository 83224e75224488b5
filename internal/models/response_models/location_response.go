package response_models

type Location struct {
	ID                  string   `json:"id"`
	City                string   `json:"city,omitempty"`
	Street              string   `json:"street,omitempty"`
	HouseNumber         string   `json:"house_number,omitempty"`
	HouseNumberAddition string   `json:"house_number_addition,omitempty"`
	Postcode            string   `json:"postcode,omitempty"`
	Name                string   `json:"name"`
	Slug                string   `json:"slug"`
	Description         string   `json:"description,omitempty"`
	WhyCurated          string   `json:"why_curated,omitempty"`
	PriceLevel          *int     `json:"price_level"`
	Lat                 *float64 `json:"lat"`
	Lng                 *float64 `json:"lng"`
	Address             string   `json:"address,omitempty"`
	HeroImageURL        string   `json:"hero_image_url,omitempty"`
	GalleryURLs         []string `json:"gallery_urls"`
	IsPublished         bool     `json:"is_published"`
	FeaturedRank        *int     `json:"featured_rank"`
	CreatedAt           int64    `json:"created_at"`

	Tags []Tag `json:"tags"`

	// Unix seconds; only set on favorites listings.
	FavoritedAt int64 `json:"favorited_at,omitempty"`
}
