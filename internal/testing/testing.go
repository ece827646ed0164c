// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/desertthunder/beers/internal/shared"
)

// ErrInjected is returned by the failing doubles in this package.
var ErrInjected = errors.New("injected failure")

// FixedDate is the instant used by tests that stamp creation dates (2025-07-11).
var FixedDate = time.Date(2025, time.July, 11, 0, 0, 0, 0, time.UTC)

// FixedClock returns a [shared.Clock] pinned to [FixedDate].
func FixedClock() shared.Clock {
	return shared.FixedClock(FixedDate)
}

// FlakyStore is an in-memory key-value store whose reads and writes can be made to fail.
//
// Writes counts successful and failed Set calls, so tests can assert one write per mutation.
type FlakyStore struct {
	Values    map[string]string
	FailGet   bool
	FailSet   bool
	Writes    int
	LastWrite string
}

// NewFlakyStore creates a [FlakyStore] seeded with values.
func NewFlakyStore(values map[string]string) *FlakyStore {
	if values == nil {
		values = make(map[string]string)
	}
	return &FlakyStore{Values: values}
}

func (s *FlakyStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.FailGet {
		return "", false, ErrInjected
	}
	v, ok := s.Values[key]
	return v, ok, nil
}

func (s *FlakyStore) Set(_ context.Context, key, value string) error {
	s.Writes++
	if s.FailSet {
		return ErrInjected
	}
	s.Values[key] = value
	s.LastWrite = key
	return nil
}

func (s *FlakyStore) Delete(_ context.Context, key string) error {
	if s.FailSet {
		return ErrInjected
	}
	delete(s.Values, key)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter forwards the first Allowed writes to W and fails every write after that.
type LimitedWriter struct {
	Allowed int
	W       io.Writer
	writes  int
}

func (l *LimitedWriter) Write(p []byte) (int, error) {
	l.writes++
	if l.writes > l.Allowed {
		return 0, errors.New("write limit reached")
	}
	return l.W.Write(p)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
