package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"resto/internal/models/db_models"
)

func TestFavoriteAddIdempotent(t *testing.T) {
	db := openTestDB(t)
	locations := NewLocationRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	location := db_models.Location{Name: "A", Slug: "a"}
	if err := locations.Create(ctx, &location, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := favorites.Add(ctx, "user-1", location.ID); err != nil {
			t.Fatalf("Add #%d: %v", i+1, err)
		}
	}

	var count int64
	if err := db.Model(&db_models.Favorite{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d favorite rows, want 1", count)
	}
}

func TestFavoriteRemoveIdempotent(t *testing.T) {
	db := openTestDB(t)
	favorites := NewFavoriteRepository(db)

	if err := favorites.Remove(context.Background(), "user-1", uuid.New()); err != nil {
		t.Errorf("removing an absent favorite should be a no-op, got %v", err)
	}
}

func TestFavoriteListByUser(t *testing.T) {
	db := openTestDB(t)
	locations := NewLocationRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	italian := mustCreateTag(t, db, "Italian", "italian", db_models.TagKindCuisine)

	first := db_models.Location{Name: "First", Slug: "first"}
	second := db_models.Location{Name: "Second", Slug: "second"}
	if err := locations.Create(ctx, &first, []uuid.UUID{italian.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := locations.Create(ctx, &second, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := favorites.Add(ctx, "user-1", first.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := favorites.Add(ctx, "user-1", second.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := favorites.Add(ctx, "user-2", first.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := favorites.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d favorites, want 2", len(got))
	}
	for _, favorite := range got {
		if favorite.Location.ID == uuid.Nil {
			t.Error("expected the location to be preloaded")
		}
		if favorite.Location.ID == first.ID && len(favorite.Location.Tags) != 1 {
			t.Error("expected location tags to be preloaded")
		}
	}
}

func TestFavoriteRemove(t *testing.T) {
	db := openTestDB(t)
	locations := NewLocationRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	location := db_models.Location{Name: "A", Slug: "a"}
	if err := locations.Create(ctx, &location, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := favorites.Add(ctx, "user-1", location.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := favorites.Remove(ctx, "user-1", location.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	got, err := favorites.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("favorite should be gone, got %d", len(got))
	}
}
