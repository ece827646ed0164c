// Package tracker owns the beer collection for the duration of a session.
//
// A [Tracker] is the single source of truth: surfaces read copies of the collection and request changes
// through [Tracker.Add] and [Tracker.Delete]. Every change writes the full collection back through the
// [Repository] before the call returns.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/shared"
)

// Repository is the persistence boundary used by the [Tracker].
type Repository interface {
	LoadBeers(ctx context.Context) ([]models.Beer, error)
	SaveBeers(ctx context.Context, beers []models.Beer) error
	LastID(ctx context.Context) (int, error)
	SaveLastID(ctx context.Context, id int) error
	Clear(ctx context.Context) error
}

// Options configures a [Tracker]. Zero values select the system clock and a stderr logger.
type Options struct {
	Clock  shared.Clock
	Logger *log.Logger
}

// Tracker holds the in-memory collection and persists it on every change.
type Tracker struct {
	mu     sync.Mutex
	repo   Repository
	clock  shared.Clock
	logger *log.Logger
	beers  []models.Beer
	lastID int
}

// New loads the stored collection and returns a ready [Tracker].
//
// Read failures are logged and the session starts with an empty collection. A stored document that is not
// valid JSON is returned as [shared.ErrCorruptStore] and no tracker is built, so the value is never overwritten.
func New(ctx context.Context, repo Repository, opts Options) (*Tracker, error) {
	if opts.Clock == nil {
		opts.Clock = shared.SystemClock
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	t := &Tracker{
		repo:   repo,
		clock:  opts.Clock,
		logger: opts.Logger,
		beers:  []models.Beer{},
	}

	beers, err := repo.LoadBeers(ctx)
	switch {
	case errors.Is(err, shared.ErrCorruptStore):
		t.logger.Error("stored collection is corrupt, refusing to load", "error", err)
		return nil, err
	case err != nil:
		t.logger.Warn("failed to load beers, starting empty", "error", err)
	default:
		t.beers = beers
	}

	lastID, err := repo.LastID(ctx)
	if err != nil {
		t.logger.Warn("failed to load last id", "error", err)
	}
	t.lastID = lastID

	t.logger.Debug("collection loaded", "count", len(t.beers), "last_id", t.lastID)
	return t, nil
}

// Add validates in, stamps the next id and today's date and appends the new beer.
//
// Inputs missing a name or brewery are rejected with [shared.ErrInvalidInput] and leave the collection unchanged.
// A failed write is returned but the beer stays in the session.
func (t *Tracker) Add(ctx context.Context, in models.BeerInput) (models.Beer, error) {
	if err := in.Validate(); err != nil {
		return models.Beer{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	in = in.Trim()

	t.mu.Lock()
	defer t.mu.Unlock()

	beer := models.Beer{
		ID:        t.nextID(),
		Name:      in.Name,
		Brewery:   in.Brewery,
		Style:     in.Style,
		Rating:    models.NormalizeRating(in.Rating),
		Notes:     in.Notes,
		DateAdded: t.clock().UTC().Format(models.DateLayout),
	}

	t.beers = append(t.beers, beer)
	t.lastID = beer.ID
	t.logger.Info("beer added", "id", beer.ID, "name", beer.Name)

	if err := t.persist(ctx); err != nil {
		return beer, err
	}
	if err := t.repo.SaveLastID(ctx, t.lastID); err != nil {
		return beer, err
	}

	return beer, nil
}

// Delete removes the beer with the given id. It reports whether a beer was removed.
//
// Unknown ids leave the collection unchanged; the collection is written either way.
func (t *Tracker) Delete(ctx context.Context, id int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := make([]models.Beer, 0, len(t.beers))
	for _, b := range t.beers {
		if b.ID != id {
			kept = append(kept, b)
		}
	}

	removed := len(kept) != len(t.beers)
	t.beers = kept

	if removed {
		t.logger.Info("beer deleted", "id", id)
	} else {
		t.logger.Debug("delete ignored, no such beer", "id", id)
	}

	return removed, t.persist(ctx)
}

// Clear removes every beer and resets the id counter, in memory and in storage.
func (t *Tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.beers)
	t.beers = []models.Beer{}
	t.lastID = 0

	if err := t.repo.Clear(ctx); err != nil {
		t.logger.Error("failed to clear stored collection", "error", err)
		return err
	}
	t.logger.Info("collection cleared", "count", n)
	return nil
}

// Beers returns a copy of the collection in insertion order.
func (t *Tracker) Beers() []models.Beer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Beer(nil), t.beers...)
}

// Get returns the beer with the given id.
func (t *Tracker) Get(id int) (models.Beer, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, b := range t.beers {
		if b.ID == id {
			return b, true
		}
	}
	return models.Beer{}, false
}

// Filter returns the beers whose name, brewery or style contain query, case-insensitively.
//
// An empty query returns the whole collection.
func (t *Tracker) Filter(query string) []models.Beer {
	query = strings.ToLower(strings.TrimSpace(query))
	beers := t.Beers()
	if query == "" {
		return beers
	}

	matched := beers[:0]
	for _, b := range beers {
		if strings.Contains(strings.ToLower(b.Name), query) ||
			strings.Contains(strings.ToLower(b.Brewery), query) ||
			strings.Contains(strings.ToLower(b.Style), query) {
			matched = append(matched, b)
		}
	}
	return matched
}

// Count returns the collection size.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.beers)
}

// Heading renders the collection heading with the live count.
func (t *Tracker) Heading() string {
	return CollectionHeading(t.Count())
}

// CollectionHeading renders "Your Beer Collection (n)".
func CollectionHeading(n int) string {
	return fmt.Sprintf("Your Beer Collection (%d)", n)
}

// nextID is one past the larger of the last issued id and the highest id in the collection.
func (t *Tracker) nextID() int {
	next := t.lastID
	for _, b := range t.beers {
		if b.ID > next {
			next = b.ID
		}
	}
	return next + 1
}

func (t *Tracker) persist(ctx context.Context) error {
	if err := t.repo.SaveBeers(ctx, t.beers); err != nil {
		t.logger.Error("failed to persist beers", "error", err)
		return err
	}
	return nil
}
