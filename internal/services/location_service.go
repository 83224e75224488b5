package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"resto/internal/models/db_models"
	"resto/internal/models/request_models"
	"resto/internal/models/response_models"
	"resto/internal/repositories"
	"resto/pkg/utils"
)

// ImageDeleter is the slice of the upload pipeline the location service
// needs for best-effort asset cleanup on record deletion.
type ImageDeleter interface {
	Delete(ctx context.Context, url string) error
}

type LocationServiceInterface interface {
	ListPublished(ctx context.Context, filter request_models.LocationFilter) ([]response_models.Location, error)
	ListAll(ctx context.Context) ([]response_models.Location, error)
	GetByID(ctx context.Context, id string) (response_models.Location, error)
	ListCities(ctx context.Context) ([]response_models.City, error)

	Create(ctx context.Context, req request_models.CreateLocationRequest) (response_models.Location, error)
	Update(ctx context.Context, id string, req request_models.UpdateLocationRequest) (response_models.Location, error)
	Delete(ctx context.Context, id string) error
}

type LocationService struct {
	locationRepo repositories.LocationRepository
	images       ImageDeleter
}

func NewLocationService(locationRepo repositories.LocationRepository, images ImageDeleter) LocationServiceInterface {
	return &LocationService{
		locationRepo: locationRepo,
		images:       images,
	}
}

// parseBBox reads "west,south,east,north". Anything malformed yields nil:
// a bad bbox drops the filter rather than failing the request.
func parseBBox(value string) *repositories.BoundingBox {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return nil
	}
	coords := make([]float64, 4)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		coords[i] = f
	}
	return &repositories.BoundingBox{
		West:  coords[0],
		South: coords[1],
		East:  coords[2],
		North: coords[3],
	}
}

// parsePrice behaves like parseBBox: non-numeric bounds are ignored.
func parsePrice(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &n
}

func (s *LocationService) ListPublished(ctx context.Context, filter request_models.LocationFilter) ([]response_models.Location, error) {
	query := repositories.LocationQuery{
		PublishedOnly: true,
		BBox:          parseBBox(filter.BBox),
		PriceMin:      parsePrice(filter.PriceMin),
		PriceMax:      parsePrice(filter.PriceMax),
	}

	locations, err := s.locationRepo.List(ctx, query)
	if err != nil {
		log.Printf("Error listing locations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	locations = filterByCity(locations, filter.City)
	locations = filterByTagSlugs(locations, filter.TagSlugs)

	return toLocationResponses(locations), nil
}

// filterByCity keeps rows whose stored city, run through the slug
// normalizer, equals the normalized requested city. The stored text is
// free-form ("Den Haag", "den haag"), so a raw SQL equality would
// under-match; both sides go through Slugify instead.
func filterByCity(locations []db_models.Location, city string) []db_models.Location {
	citySlug := utils.Slugify(city)
	if citySlug == "" {
		return locations
	}
	filtered := locations[:0]
	for _, location := range locations {
		if location.City != "" && utils.Slugify(location.City) == citySlug {
			filtered = append(filtered, location)
		}
	}
	return filtered
}

// filterByTagSlugs keeps rows whose tag-slug set intersects the requested
// comma-separated set. OR semantics: any one match is enough.
func filterByTagSlugs(locations []db_models.Location, tagSlugs string) []db_models.Location {
	requested := map[string]bool{}
	for _, slug := range strings.Split(tagSlugs, ",") {
		if slug = strings.TrimSpace(slug); slug != "" {
			requested[slug] = true
		}
	}
	if len(requested) == 0 {
		return locations
	}

	filtered := locations[:0]
	for _, location := range locations {
		for _, tag := range location.Tags {
			if requested[tag.Slug] {
				filtered = append(filtered, location)
				break
			}
		}
	}
	return filtered
}

func (s *LocationService) ListAll(ctx context.Context) ([]response_models.Location, error) {
	locations, err := s.locationRepo.List(ctx, repositories.LocationQuery{})
	if err != nil {
		log.Printf("Error listing admin locations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toLocationResponses(locations), nil
}

func (s *LocationService) GetByID(ctx context.Context, id string) (response_models.Location, error) {
	if _, err := uuid.Parse(id); err != nil {
		return response_models.Location{}, utils.ErrLocationNotFound
	}

	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return response_models.Location{}, utils.ErrDatabaseError
	}
	if location == nil {
		return response_models.Location{}, utils.ErrLocationNotFound
	}
	return toLocationResponse(*location), nil
}

func (s *LocationService) ListCities(ctx context.Context) ([]response_models.City, error) {
	counts, err := s.locationRepo.ListCities(ctx, 5)
	if err != nil {
		log.Printf("Error listing cities: %v", err)
		return nil, utils.ErrDatabaseError
	}

	cities := make([]response_models.City, 0, len(counts))
	for _, c := range counts {
		slug := utils.Slugify(c.City)
		cities = append(cities, response_models.City{ID: slug, Name: c.City, Slug: slug})
	}
	return cities, nil
}

func (s *LocationService) Create(ctx context.Context, req request_models.CreateLocationRequest) (response_models.Location, error) {
	postcode := utils.NormalizePostcode(req.Postcode)

	location := &db_models.Location{
		City:                req.City,
		Street:              req.Street,
		HouseNumber:         req.HouseNumber,
		HouseNumberAddition: req.HouseNumberAddition,
		Postcode:            postcode,
		Name:                req.Name,
		Slug:                req.Slug,
		Description:         req.Description,
		WhyCurated:          req.WhyCurated,
		PriceLevel:          req.PriceLevel,
		Lat:                 req.Lat,
		Lng:                 req.Lng,
		HeroImageURL:        req.HeroImageURL,
		GalleryURLs:         req.GalleryURLs,
		IsPublished:         req.IsPublished,
		FeaturedRank:        req.FeaturedRank,
	}

	if req.Address != nil {
		location.Address = *req.Address
	} else {
		location.Address = utils.FormatAddress(utils.AddressParts{
			Street:              req.Street,
			HouseNumber:         req.HouseNumber,
			HouseNumberAddition: req.HouseNumberAddition,
			Postcode:            postcode,
			City:                req.City,
		})
	}

	if err := s.locationRepo.Create(ctx, location, req.TagIDs); err != nil {
		log.Printf("Error creating location: %v", err)
		return response_models.Location{}, utils.ErrDatabaseError
	}

	return s.GetByID(ctx, location.ID.String())
}

func (s *LocationService) Update(ctx context.Context, id string, req request_models.UpdateLocationRequest) (response_models.Location, error) {
	if _, err := uuid.Parse(id); err != nil {
		return response_models.Location{}, utils.ErrLocationNotFound
	}

	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return response_models.Location{}, utils.ErrDatabaseError
	}
	if location == nil {
		return response_models.Location{}, utils.ErrLocationNotFound
	}

	if req.City != nil {
		location.City = *req.City
	}
	if req.Street != nil {
		location.Street = *req.Street
	}
	if req.HouseNumber != nil {
		location.HouseNumber = *req.HouseNumber
	}
	if req.HouseNumberAddition != nil {
		location.HouseNumberAddition = *req.HouseNumberAddition
	}
	if req.Postcode != nil {
		location.Postcode = utils.NormalizePostcode(*req.Postcode)
	}
	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Slug != nil {
		location.Slug = *req.Slug
	}
	if req.Description != nil {
		location.Description = *req.Description
	}
	if req.WhyCurated != nil {
		location.WhyCurated = *req.WhyCurated
	}
	if req.PriceLevel != nil {
		location.PriceLevel = req.PriceLevel
	}
	if req.Lat != nil {
		location.Lat = req.Lat
	}
	if req.Lng != nil {
		location.Lng = req.Lng
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.HeroImageURL != nil {
		location.HeroImageURL = *req.HeroImageURL
	}
	if req.GalleryURLs != nil {
		location.GalleryURLs = *req.GalleryURLs
	}
	if req.IsPublished != nil {
		location.IsPublished = *req.IsPublished
	}
	if req.FeaturedRank != nil {
		location.FeaturedRank = req.FeaturedRank
	}

	if err := s.locationRepo.Update(ctx, location, req.TagIDs); err != nil {
		log.Printf("Error updating location: %v", err)
		return response_models.Location{}, utils.ErrDatabaseError
	}

	return s.GetByID(ctx, id)
}

// Delete removes the row, its join rows and favorites, then best-effort
// deletes the images from storage. A failing image delete never fails the
// request; the asset may already be gone.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	locationID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrLocationNotFound
	}

	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return utils.ErrDatabaseError
	}

	if err := s.locationRepo.Delete(ctx, locationID); err != nil {
		log.Printf("Error deleting location: %v", err)
		return utils.ErrDatabaseError
	}

	if location != nil && s.images != nil {
		urls := append([]string{location.HeroImageURL}, location.GalleryURLs...)
		for _, url := range urls {
			if url == "" {
				continue
			}
			if err := s.images.Delete(ctx, url); err != nil {
				log.Printf("Error deleting image %s: %v", url, err)
			}
		}
	}
	return nil
}

func toLocationResponse(location db_models.Location) response_models.Location {
	tags := make([]response_models.Tag, 0, len(location.Tags))
	for _, tag := range location.Tags {
		tags = append(tags, response_models.Tag{
			ID:   tag.ID.String(),
			Kind: tag.Kind,
			Name: tag.Name,
			Slug: tag.Slug,
		})
	}

	return response_models.Location{
		ID:                  location.ID.String(),
		City:                location.City,
		Street:              location.Street,
		HouseNumber:         location.HouseNumber,
		HouseNumberAddition: location.HouseNumberAddition,
		Postcode:            location.Postcode,
		Name:                location.Name,
		Slug:                location.Slug,
		Description:         location.Description,
		WhyCurated:          location.WhyCurated,
		PriceLevel:          location.PriceLevel,
		Lat:                 location.Lat,
		Lng:                 location.Lng,
		Address:             location.Address,
		HeroImageURL:        location.HeroImageURL,
		GalleryURLs:         location.GalleryURLs,
		IsPublished:         location.IsPublished,
		FeaturedRank:        location.FeaturedRank,
		CreatedAt:           location.CreatedAt,
		Tags:                tags,
	}
}

func toLocationResponses(locations []db_models.Location) []response_models.Location {
	responses := make([]response_models.Location, 0, len(locations))
	for _, location := range locations {
		responses = append(responses, toLocationResponse(location))
	}
	return responses
}
