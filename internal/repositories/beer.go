package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/shared"
)

// DefaultStorageKey is the key the collection is stored under unless configured otherwise.
const DefaultStorageKey = "junies-beer-tracker"

// BeerRepository loads and saves the full collection through a [KVStore].
//
// The collection is a JSON array of [models.Beer] under key; the last issued id lives under key + ".last-id".
type BeerRepository struct {
	store KVStore
	key   string
}

// NewBeerRepository creates a new [BeerRepository]. An empty key selects [DefaultStorageKey].
func NewBeerRepository(store KVStore, key string) *BeerRepository {
	if key == "" {
		key = DefaultStorageKey
	}
	return &BeerRepository{store: store, key: key}
}

// Key returns the storage key of the collection.
func (r *BeerRepository) Key() string { return r.key }

func (r *BeerRepository) lastIDKey() string { return r.key + ".last-id" }

// LoadBeers returns the stored collection in stored order.
//
// A missing key (or a stored JSON null) yields an empty collection. Malformed JSON is reported as
// [shared.ErrCorruptStore] and is not repaired.
func (r *BeerRepository) LoadBeers(ctx context.Context) ([]models.Beer, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Beer{}, nil
	}

	var beers []models.Beer
	if err := json.Unmarshal([]byte(raw), &beers); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCorruptStore, err)
	}
	if beers == nil {
		beers = []models.Beer{}
	}
	return beers, nil
}

// SaveBeers serializes the full collection and replaces the stored value.
func (r *BeerRepository) SaveBeers(ctx context.Context, beers []models.Beer) error {
	if beers == nil {
		beers = []models.Beer{}
	}

	data, err := json.Marshal(beers)
	if err != nil {
		return fmt.Errorf("failed to encode beers: %w", err)
	}

	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("failed to save beers: %w", err)
	}
	return nil
}

// LastID returns the last id issued, or 0 when none was recorded.
func (r *BeerRepository) LastID(ctx context.Context) (int, error) {
	raw, found, err := r.store.Get(ctx, r.lastIDKey())
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: last id %q", shared.ErrCorruptStore, raw)
	}
	return id, nil
}

// SaveLastID records id as the last issued id.
func (r *BeerRepository) SaveLastID(ctx context.Context, id int) error {
	if err := r.store.Set(ctx, r.lastIDKey(), strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to save last id: %w", err)
	}
	return nil
}

// Clear removes the collection and its id counter.
func (r *BeerRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return err
	}
	return r.store.Delete(ctx, r.lastIDKey())
}
