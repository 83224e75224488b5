package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"resto/internal/models/db_models"
	"resto/internal/models/request_models"
	"resto/internal/repositories"
	"resto/pkg/utils"
)

type fakeLocationRepo struct {
	locations []db_models.Location
	lastQuery repositories.LocationQuery
	deleted   []uuid.UUID
}

func (f *fakeLocationRepo) Create(ctx context.Context, location *db_models.Location, tagIDs []uuid.UUID) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	f.locations = append(f.locations, *location)
	return nil
}

func (f *fakeLocationRepo) Update(ctx context.Context, location *db_models.Location, tagIDs *[]uuid.UUID) error {
	for i := range f.locations {
		if f.locations[i].ID == location.ID {
			f.locations[i] = *location
			return nil
		}
	}
	return nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	for i := range f.locations {
		if f.locations[i].ID == id {
			f.locations = append(f.locations[:i], f.locations[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id string) (*db_models.Location, error) {
	for i := range f.locations {
		if f.locations[i].ID.String() == id {
			location := f.locations[i]
			return &location, nil
		}
	}
	return nil, nil
}

func (f *fakeLocationRepo) List(ctx context.Context, query repositories.LocationQuery) ([]db_models.Location, error) {
	f.lastQuery = query
	out := make([]db_models.Location, 0, len(f.locations))
	for _, location := range f.locations {
		if query.PublishedOnly && !location.IsPublished {
			continue
		}
		out = append(out, location)
	}
	return out, nil
}

func (f *fakeLocationRepo) ListCities(ctx context.Context, limit int) ([]repositories.CityCount, error) {
	return []repositories.CityCount{{City: "Amsterdam", Count: 2}, {City: "Den Haag", Count: 1}}, nil
}

type recordingImageDeleter struct {
	urls []string
	err  error
}

func (d *recordingImageDeleter) Delete(ctx context.Context, url string) error {
	d.urls = append(d.urls, url)
	return d.err
}

func published(name, city string, tagSlugs ...string) db_models.Location {
	tags := make([]db_models.Tag, 0, len(tagSlugs))
	for _, slug := range tagSlugs {
		tags = append(tags, db_models.Tag{
			BaseModel: db_models.BaseModel{ID: uuid.New()},
			Kind:      db_models.TagKindCuisine,
			Name:      slug,
			Slug:      slug,
		})
	}
	return db_models.Location{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Name:        name,
		Slug:        utils.Slugify(name),
		City:        city,
		IsPublished: true,
		Tags:        tags,
	}
}

func TestListPublishedCityFilterNormalizes(t *testing.T) {
	repo := &fakeLocationRepo{locations: []db_models.Location{
		published("Trattoria Bella", "Amsterdam"),
		published("Haagse Parel", "Den Haag"),
		published("Hofstad Sushi", "den haag"),
	}}
	svc := NewLocationService(repo, nil)

	got, err := svc.ListPublished(context.Background(), request_models.LocationFilter{City: "Den-Haag"})
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d locations, want 2", len(got))
	}
	for _, location := range got {
		if utils.Slugify(location.City) != "den-haag" {
			t.Errorf("unexpected city %q in result", location.City)
		}
	}
}

func TestListPublishedTagFilterAnyMatch(t *testing.T) {
	repo := &fakeLocationRepo{locations: []db_models.Location{
		published("A", "Amsterdam", "italian"),
		published("B", "Amsterdam", "japanese", "casual"),
		published("C", "Amsterdam", "seafood"),
	}}
	svc := NewLocationService(repo, nil)

	got, err := svc.ListPublished(context.Background(), request_models.LocationFilter{TagSlugs: "italian,casual"})
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d locations, want 2 (any requested tag matches)", len(got))
	}
}

func TestListPublishedMalformedFiltersIgnored(t *testing.T) {
	repo := &fakeLocationRepo{locations: []db_models.Location{
		published("A", "Amsterdam"),
	}}
	svc := NewLocationService(repo, nil)

	got, err := svc.ListPublished(context.Background(), request_models.LocationFilter{
		BBox:     "4.7,52.2,oops",
		PriceMin: "cheap",
		PriceMax: "4",
	})
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1", len(got))
	}
	if repo.lastQuery.BBox != nil {
		t.Error("malformed bbox should be dropped, not passed to the repository")
	}
	if repo.lastQuery.PriceMin != nil {
		t.Error("non-numeric price_min should be dropped")
	}
	if repo.lastQuery.PriceMax == nil || *repo.lastQuery.PriceMax != 4 {
		t.Error("valid price_max should be passed through")
	}
}

func TestParseBBox(t *testing.T) {
	box := parseBBox("4.7, 52.2, 5.1, 52.5")
	if box == nil {
		t.Fatal("expected bbox to parse")
	}
	if box.West != 4.7 || box.South != 52.2 || box.East != 5.1 || box.North != 52.5 {
		t.Errorf("unexpected bbox %+v", box)
	}

	for _, in := range []string{"", "1,2,3", "1,2,3,4,5", "a,b,c,d"} {
		if parseBBox(in) != nil {
			t.Errorf("parseBBox(%q) should be nil", in)
		}
	}
}

func TestGetByIDInvalidUUID(t *testing.T) {
	svc := NewLocationService(&fakeLocationRepo{}, nil)
	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	if !errors.Is(err, utils.ErrLocationNotFound) {
		t.Errorf("got %v, want ErrLocationNotFound", err)
	}
}

func TestGetByIDMissing(t *testing.T) {
	svc := NewLocationService(&fakeLocationRepo{}, nil)
	_, err := svc.GetByID(context.Background(), uuid.New().String())
	if !errors.Is(err, utils.ErrLocationNotFound) {
		t.Errorf("got %v, want ErrLocationNotFound", err)
	}
}

func TestCreateComposesAddress(t *testing.T) {
	repo := &fakeLocationRepo{}
	svc := NewLocationService(repo, nil)

	got, err := svc.Create(context.Background(), request_models.CreateLocationRequest{
		Name:        "Kaito Ramen",
		Slug:        "kaito-ramen",
		Street:      "Van Woustraat",
		HouseNumber: "45",
		Postcode:    "1074 ab",
		City:        "Amsterdam",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Address != "Van Woustraat 45, 1074AB Amsterdam" {
		t.Errorf("composed address = %q", got.Address)
	}
	if got.Postcode != "1074AB" {
		t.Errorf("postcode not normalized: %q", got.Postcode)
	}
}

func TestCreateKeepsExplicitAddress(t *testing.T) {
	repo := &fakeLocationRepo{}
	svc := NewLocationService(repo, nil)

	address := "Somewhere else entirely"
	got, err := svc.Create(context.Background(), request_models.CreateLocationRequest{
		Name:    "A",
		Slug:    "a",
		Address: &address,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Address != address {
		t.Errorf("got %q, want caller-provided address", got.Address)
	}
}

func TestUpdatePartial(t *testing.T) {
	location := published("Old Name", "Amsterdam")
	location.Description = "keep me"
	repo := &fakeLocationRepo{locations: []db_models.Location{location}}
	svc := NewLocationService(repo, nil)

	name := "New Name"
	got, err := svc.Update(context.Background(), location.ID.String(), request_models.UpdateLocationRequest{
		Name: &name,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "New Name" {
		t.Errorf("name not updated: %q", got.Name)
	}
	if got.Description != "keep me" {
		t.Errorf("description should be untouched, got %q", got.Description)
	}
}

func TestDeleteCleansUpImages(t *testing.T) {
	location := published("A", "Amsterdam")
	location.HeroImageURL = "https://cdn.example/hero.jpg"
	location.GalleryURLs = []string{"https://cdn.example/1.jpg", ""}

	repo := &fakeLocationRepo{locations: []db_models.Location{location}}
	images := &recordingImageDeleter{}
	svc := NewLocationService(repo, images)

	if err := svc.Delete(context.Background(), location.ID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected one repo delete, got %d", len(repo.deleted))
	}
	if len(images.urls) != 2 {
		t.Errorf("expected 2 image deletes (empty URL skipped), got %v", images.urls)
	}
}

func TestDeleteIgnoresImageErrors(t *testing.T) {
	location := published("A", "Amsterdam")
	location.HeroImageURL = "https://cdn.example/hero.jpg"

	repo := &fakeLocationRepo{locations: []db_models.Location{location}}
	images := &recordingImageDeleter{err: errors.New("storage down")}
	svc := NewLocationService(repo, images)

	if err := svc.Delete(context.Background(), location.ID.String()); err != nil {
		t.Errorf("Delete should succeed despite image cleanup failure, got %v", err)
	}
}

func TestDeleteAbsentLocationIdempotent(t *testing.T) {
	svc := NewLocationService(&fakeLocationRepo{}, nil)
	if err := svc.Delete(context.Background(), uuid.New().String()); err != nil {
		t.Errorf("deleting an absent location should be a no-op, got %v", err)
	}
}
