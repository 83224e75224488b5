package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"resto/internal/infra"
	"resto/internal/models/db_models"
	"resto/internal/repositories"
	"resto/pkg/utils"
)

type seedLocation struct {
	name        string
	address     string
	description string
	whyCurated  string
	priceLevel  int
	lat, lng    float64
	tags        []string
	published   bool
	rank        *int
}

var seedTags = []db_models.Tag{
	{Name: "Italian", Slug: "italian", Kind: db_models.TagKindCuisine},
	{Name: "Japanese", Slug: "japanese", Kind: db_models.TagKindCuisine},
	{Name: "Indonesian", Slug: "indonesian", Kind: db_models.TagKindCuisine},
	{Name: "Seafood", Slug: "seafood", Kind: db_models.TagKindCuisine},
	{Name: "Date night", Slug: "date-night", Kind: db_models.TagKindVibe},
	{Name: "Casual", Slug: "casual", Kind: db_models.TagKindVibe},
	{Name: "Terrace", Slug: "terrace", Kind: db_models.TagKindVibe},
}

var seedLocations = []seedLocation{
	{
		name:        "Trattoria Bella",
		address:     "Prinsengracht 112, 1015 EA Amsterdam",
		description: "Small family-run trattoria on the canal with handmade pasta.",
		whyCurated:  "The tagliatelle al ragu alone is worth the trip.",
		priceLevel:  3,
		lat:         52.3731, lng: 4.8845,
		tags:      []string{"italian", "date-night"},
		published: true,
		rank:      intp(1),
	},
	{
		name:        "Kaito Ramen",
		address:     "Van Woustraat 45B, 1074 AB Amsterdam",
		description: "Tonkotsu broth simmered for eighteen hours, six seats at the bar.",
		whyCurated:  "Closest thing to a Fukuoka ramen counter in the city.",
		priceLevel:  2,
		lat:         52.3524, lng: 4.9003,
		tags:      []string{"japanese", "casual"},
		published: true,
		rank:      intp(2),
	},
	{
		name:        "Warung Senang",
		address:     "Zeedijk 77, 1012 AS Amsterdam",
		description: "Indonesian rijsttafel done properly, recipes from three generations.",
		whyCurated:  "The rendang is cooked the slow way and it shows.",
		priceLevel:  2,
		lat:         52.3744, lng: 4.9004,
		tags:      []string{"indonesian", "casual"},
		published: true,
	},
	{
		name:        "De Zilte Zee",
		address:     "Westerstraat 200, 1015 MS Amsterdam",
		description: "Daily catch from IJmuiden, oysters shucked at the counter.",
		whyCurated:  "Best value seafood platter on this side of the IJ.",
		priceLevel:  4,
		lat:         52.3790, lng: 4.8810,
		tags:      []string{"seafood", "terrace", "date-night"},
		published: false,
	},
}

func intp(v int) *int { return &v }

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, reading from environment variables")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	ctx := context.Background()
	tagRepo := repositories.NewTagRepository(db)
	locationRepo := repositories.NewLocationRepository(db)

	tagIDs := make(map[string]uuid.UUID)

	existing, err := tagRepo.GetAll(ctx)
	if err != nil {
		log.Fatalf("Failed to list tags: %v", err)
	}
	for _, tag := range existing {
		tagIDs[tag.Slug] = tag.ID
	}

	for _, tag := range seedTags {
		if _, ok := tagIDs[tag.Slug]; ok {
			continue
		}
		t := tag
		if err := tagRepo.Create(ctx, &t); err != nil {
			log.Fatalf("Failed to create tag %q: %v", t.Slug, err)
		}
		tagIDs[t.Slug] = t.ID
		log.Printf("Created tag %s (%s)", t.Name, t.Kind)
	}

	for _, seed := range seedLocations {
		parts := utils.ParseAddress(seed.address)
		priceLevel := seed.priceLevel
		lat, lng := seed.lat, seed.lng

		location := db_models.Location{
			Name:                seed.name,
			Slug:                utils.Slugify(seed.name),
			Description:         seed.description,
			WhyCurated:          seed.whyCurated,
			Street:              parts.Street,
			HouseNumber:         parts.HouseNumber,
			HouseNumberAddition: parts.HouseNumberAddition,
			Postcode:            utils.NormalizePostcode(parts.Postcode),
			City:                parts.City,
			Address:             seed.address,
			PriceLevel:          &priceLevel,
			Lat:                 &lat,
			Lng:                 &lng,
			IsPublished:         seed.published,
			FeaturedRank:        seed.rank,
		}

		ids := make([]uuid.UUID, 0, len(seed.tags))
		for _, slug := range seed.tags {
			id, ok := tagIDs[slug]
			if !ok {
				log.Fatalf("Unknown tag slug %q for location %q", slug, seed.name)
			}
			ids = append(ids, id)
		}

		if err := locationRepo.Create(ctx, &location, ids); err != nil {
			log.Printf("Skipping location %q: %v", seed.name, err)
			continue
		}
		log.Printf("Created location %s (%s)", location.Name, location.Slug)
	}

	log.Println("Seeding complete")
}
