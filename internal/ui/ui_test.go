package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/repositories"
	"github.com/desertthunder/beers/internal/shared"
	"github.com/desertthunder/beers/internal/tracker"
	tu "github.com/desertthunder/beers/internal/testing"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// exec runs cmd and returns the resulting [Msg], failing when cmd does not produce one.
func exec(t *testing.T, cmd tea.Cmd) Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg, ok := cmd().(Msg)
	if !ok {
		t.Fatalf("expected Msg, got %T", cmd())
	}
	return msg
}

func newTestModel(t *testing.T, store *tu.FlakyStore, confirm bool) *Model {
	t.Helper()
	logger := shared.NewLogger(io.Discard)
	repo := repositories.NewBeerRepository(store, repositories.DefaultStorageKey)
	tr, err := tracker.New(context.Background(), repo, tracker.Options{Clock: tu.FixedClock(), Logger: logger})
	if err != nil {
		t.Fatalf("failed to load tracker: %v", err)
	}
	return NewModel(context.Background(), tr, Options{
		Dates:         shared.NewDateFormatter("en-US"),
		ConfirmDelete: confirm,
		Logger:        logger,
	})
}

// collect runs cmd and returns what it produced, expanding batches.
// Commands that wait (cursor blinks, ticks) are abandoned after a short timeout.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(20 * time.Millisecond):
		return nil
	}
}

// drive feeds msg to m and keeps feeding the produced [Msg] values until none remain.
func drive(m *Model, msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		_, cmd := m.Update(next)
		for _, out := range collect(cmd) {
			if app, ok := out.(Msg); ok {
				queue = append(queue, app)
			}
		}
	}
}

func quits(cmd tea.Cmd) bool {
	for _, msg := range collect(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func typeInto(m *Model, s string) {
	for _, r := range s {
		drive(m, runes(string(r)))
	}
}

func TestModel(t *testing.T) {
	t.Run("initial view", func(t *testing.T) {
		m := newTestModel(t, tu.NewFlakyStore(nil), true)
		view := m.View()

		for _, want := range []string{Banner, Subheading, AddHeading, "Your Beer Collection (0)", EmptyMessage} {
			if !strings.Contains(view, want) {
				t.Errorf("expected view to contain %q", want)
			}
		}
		if m.Pane() != FormPane {
			t.Errorf("expected form pane focused, got %v", m.Pane())
		}
	})

	t.Run("adds a beer through the form", func(t *testing.T) {
		store := tu.NewFlakyStore(nil)
		m := newTestModel(t, store, true)

		typeInto(m, "Test IPA")
		drive(m, keyOf(tea.KeyTab))
		typeInto(m, "Test Brewery")
		drive(m, keyOf(tea.KeyEnter))

		if m.tracker.Count() != 1 {
			t.Fatalf("expected 1 beer, got %d", m.tracker.Count())
		}
		beer := m.tracker.Beers()[0]
		if beer.Name != "Test IPA" || beer.Brewery != "Test Brewery" {
			t.Errorf("unexpected beer %+v", beer)
		}
		if store.Values[repositories.DefaultStorageKey] == "" {
			t.Error("expected collection to be persisted")
		}

		view := m.View()
		if !strings.Contains(view, "Your Beer Collection (1)") {
			t.Error("expected heading to count the new beer")
		}
		if !strings.Contains(view, "Added Test IPA") {
			t.Errorf("expected status line, got %q", m.Status())
		}
		if m.form.Values().Name != "" {
			t.Error("expected form to be cleared after submit")
		}
	})

	t.Run("invalid submit adds nothing", func(t *testing.T) {
		m := newTestModel(t, tu.NewFlakyStore(nil), true)
		typeInto(m, "Only Name")
		drive(m, keyOf(tea.KeyEnter))

		if m.tracker.Count() != 0 {
			t.Errorf("expected no beers, got %d", m.tracker.Count())
		}
		if !strings.Contains(m.View(), "Brewery is required") {
			t.Error("expected brewery required message")
		}
	})

	t.Run("delete with confirmation", func(t *testing.T) {
		store := tu.NewFlakyStore(map[string]string{
			repositories.DefaultStorageKey: `[{"id":123,"name":"Test Beer","brewery":"Test Brewery","rating":0,"dateAdded":"2025-07-11"}]`,
		})
		m := newTestModel(t, store, true)

		drive(m, keyOf(tea.KeyEsc))
		if m.Pane() != ListPane {
			t.Fatalf("expected list pane, got %v", m.Pane())
		}

		drive(m, runes("d"))
		if !m.dialog.Active() {
			t.Fatal("expected confirmation dialog")
		}
		if m.dialog.Prompt() != "Delete Beer Test Beer?" {
			t.Errorf("unexpected prompt %q", m.dialog.Prompt())
		}

		drive(m, runes("n"))
		if m.tracker.Count() != 1 {
			t.Fatal("expected cancel to keep the beer")
		}

		drive(m, runes("d"))
		drive(m, runes("y"))
		if m.tracker.Count() != 0 {
			t.Errorf("expected beer deleted, got %d", m.tracker.Count())
		}
		if store.Values[repositories.DefaultStorageKey] != "[]" {
			t.Errorf("expected empty stored collection, got %q", store.Values[repositories.DefaultStorageKey])
		}
		if !strings.Contains(m.View(), EmptyMessage) {
			t.Error("expected empty message after deleting the last beer")
		}
	})

	t.Run("delete without confirmation", func(t *testing.T) {
		store := tu.NewFlakyStore(map[string]string{
			repositories.DefaultStorageKey: `[{"id":1,"name":"A","brewery":"B","rating":3,"dateAdded":"2025-07-11"}]`,
		})
		m := newTestModel(t, store, false)
		drive(m, keyOf(tea.KeyEsc))
		drive(m, runes("d"))

		if m.tracker.Count() != 0 {
			t.Errorf("expected beer deleted, got %d", m.tracker.Count())
		}
	})

	t.Run("write failure keeps beer in memory and shows error", func(t *testing.T) {
		store := tu.NewFlakyStore(nil)
		store.FailSet = true
		m := newTestModel(t, store, true)

		drive(m, beerSubmittedMsg(models.BeerInput{Name: "A", Brewery: "B"}))

		if m.tracker.Count() != 1 {
			t.Errorf("expected in-memory beer, got %d", m.tracker.Count())
		}
		if !errors.Is(m.Err(), tu.ErrInjected) {
			t.Errorf("expected injected error, got %v", m.Err())
		}
		if !strings.Contains(m.View(), "Error:") {
			t.Error("expected error line in view")
		}
	})

	t.Run("pane switching", func(t *testing.T) {
		m := newTestModel(t, tu.NewFlakyStore(nil), true)
		drive(m, keyOf(tea.KeyEsc))
		if m.Pane() != ListPane {
			t.Fatalf("expected list pane, got %v", m.Pane())
		}
		drive(m, runes("a"))
		if m.Pane() != FormPane {
			t.Errorf("expected form pane, got %v", m.Pane())
		}
	})

	t.Run("quit keys", func(t *testing.T) {
		m := newTestModel(t, tu.NewFlakyStore(nil), true)

		if _, cmd := m.Update(runes("q")); quits(cmd) {
			t.Error("q in the form should type, not quit")
		}
		if _, cmd := m.Update(keyOf(tea.KeyCtrlC)); !quits(cmd) {
			t.Error("expected ctrl+c to quit")
		}

		m.Update(keyOf(tea.KeyEsc))
		if _, cmd := m.Update(runes("q")); !quits(cmd) {
			t.Error("expected q in the list to quit")
		}
	})

	t.Run("window resize", func(t *testing.T) {
		m := newTestModel(t, tu.NewFlakyStore(nil), true)
		m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		if m.width != 100 || m.height != 40 {
			t.Errorf("expected size 100x40, got %dx%d", m.width, m.height)
		}
	})
}

func TestModelHelp(t *testing.T) {
	m := newTestModel(t, tu.NewFlakyStore(nil), true)
	drive(m, keyOf(tea.KeyEsc))

	drive(m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("expected full help after ?")
	}
	if !strings.Contains(m.View(), "clear rating") {
		t.Error("expected full key listing in view")
	}

	drive(m, runes("?"))
	if m.help.ShowAll {
		t.Error("expected ? to toggle full help off")
	}
}
