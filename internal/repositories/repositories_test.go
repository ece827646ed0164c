package repositories

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(shared.MemoryDSN)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func sampleBeers() []models.Beer {
	return []models.Beer{
		{ID: 1, Name: "Hoppy IPA", Brewery: "Craft Brewery", Style: "IPA", Rating: 4, Notes: "Very hoppy and delicious", DateAdded: "2025-07-11"},
		{ID: 2, Name: "Dark Stout", Brewery: "Night Brewery", DateAdded: "2025-07-12"},
		{ID: 3, Name: "Hoppy IPA", Brewery: "Other Brewery", Rating: 2, DateAdded: "2025-07-13"},
	}
}

func TestKVStores(t *testing.T) {
	ctx := context.Background()

	stores := map[string]func(t *testing.T) KVStore{
		"SQLiteStore": func(t *testing.T) KVStore {
			db := setupTestDB(t)
			t.Cleanup(func() { db.Close() })
			return NewSQLiteStore(db)
		},
		"MemoryStore": func(t *testing.T) KVStore {
			return NewMemoryStore()
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("Get missing key", func(t *testing.T) {
				store := newStore(t)
				_, found, err := store.Get(ctx, "missing")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if found {
					t.Error("expected missing key to be reported as not found")
				}
			})

			t.Run("Set replaces value", func(t *testing.T) {
				store := newStore(t)
				if err := store.Set(ctx, "k", "first"); err != nil {
					t.Fatalf("failed to set: %v", err)
				}
				if err := store.Set(ctx, "k", "second"); err != nil {
					t.Fatalf("failed to overwrite: %v", err)
				}

				value, found, err := store.Get(ctx, "k")
				if err != nil || !found {
					t.Fatalf("expected stored value, got found=%v err=%v", found, err)
				}
				if value != "second" {
					t.Errorf("expected second, got %s", value)
				}
			})

			t.Run("Delete", func(t *testing.T) {
				store := newStore(t)
				if err := store.Set(ctx, "k", "v"); err != nil {
					t.Fatalf("failed to set: %v", err)
				}
				if err := store.Delete(ctx, "k"); err != nil {
					t.Fatalf("failed to delete: %v", err)
				}
				if _, found, _ := store.Get(ctx, "k"); found {
					t.Error("expected key to be gone after delete")
				}
				if err := store.Delete(ctx, "k"); err != nil {
					t.Errorf("deleting a missing key should not fail: %v", err)
				}
			})
		})
	}
}

func TestBeerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("LoadBeers missing key", func(t *testing.T) {
		repo := NewBeerRepository(NewMemoryStore(), "")

		beers, err := repo.LoadBeers(ctx)
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if beers == nil || len(beers) != 0 {
			t.Errorf("expected empty non-nil collection, got %#v", beers)
		}
		if repo.Key() != DefaultStorageKey {
			t.Errorf("expected default key, got %s", repo.Key())
		}
	})

	t.Run("LoadBeers null document", func(t *testing.T) {
		store := NewMemoryStore()
		store.Set(ctx, DefaultStorageKey, "null")

		beers, err := NewBeerRepository(store, "").LoadBeers(ctx)
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if len(beers) != 0 {
			t.Errorf("expected empty collection, got %d beers", len(beers))
		}
	})

	t.Run("Round trip", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewBeerRepository(NewSQLiteStore(db), "round-trip")
		want := sampleBeers()

		if err := repo.SaveBeers(ctx, want); err != nil {
			t.Fatalf("failed to save: %v", err)
		}

		got, err := repo.LoadBeers(ctx)
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}

		if !reflect.DeepEqual(got, want) {
			t.Errorf("round trip changed the collection:\n got  %+v\n want %+v", got, want)
		}
	})

	t.Run("SaveBeers replaces prior value", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewBeerRepository(store, "")

		if err := repo.SaveBeers(ctx, sampleBeers()); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
		if err := repo.SaveBeers(ctx, nil); err != nil {
			t.Fatalf("failed to save empty collection: %v", err)
		}

		raw, _, _ := store.Get(ctx, DefaultStorageKey)
		if raw != "[]" {
			t.Errorf("expected empty JSON array, got %s", raw)
		}
	})

	t.Run("Stored format", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewBeerRepository(store, "")

		beer := models.Beer{ID: 2, Name: "New Beer", Brewery: "New Brewery", Style: "IPA", Rating: 4, Notes: "Great beer!", DateAdded: "2025-07-11"}
		if err := repo.SaveBeers(ctx, []models.Beer{beer}); err != nil {
			t.Fatalf("failed to save: %v", err)
		}

		raw, _, _ := store.Get(ctx, DefaultStorageKey)
		want := `[{"id":2,"name":"New Beer","brewery":"New Brewery","style":"IPA","rating":4,"notes":"Great beer!","dateAdded":"2025-07-11"}]`
		if raw != want {
			t.Errorf("unexpected stored document:\n got  %s\n want %s", raw, want)
		}
	})

	t.Run("LastID", func(t *testing.T) {
		repo := NewBeerRepository(NewMemoryStore(), "")

		id, err := repo.LastID(ctx)
		if err != nil || id != 0 {
			t.Fatalf("expected 0 with no counter, got %d (%v)", id, err)
		}

		if err := repo.SaveLastID(ctx, 7); err != nil {
			t.Fatalf("failed to save last id: %v", err)
		}

		id, err = repo.LastID(ctx)
		if err != nil || id != 7 {
			t.Errorf("expected 7, got %d (%v)", id, err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewBeerRepository(store, "")
		repo.SaveBeers(ctx, sampleBeers())
		repo.SaveLastID(ctx, 3)

		if err := repo.Clear(ctx); err != nil {
			t.Fatalf("failed to clear: %v", err)
		}

		beers, _ := repo.LoadBeers(ctx)
		id, _ := repo.LastID(ctx)
		if len(beers) != 0 || id != 0 {
			t.Errorf("expected cleared repository, got %d beers and last id %d", len(beers), id)
		}
	})
}
