package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/beers/internal/models"
)

func typeForm(f BeerForm, s string) BeerForm {
	for _, r := range s {
		f, _ = f.Update(runes(string(r)))
	}
	return f
}

func fillForm(f BeerForm, fields ...string) BeerForm {
	for i, v := range fields {
		if i > 0 {
			f, _ = f.Update(keyOf(tea.KeyTab))
		}
		f = typeForm(f, v)
	}
	return f
}

func TestBeerForm(t *testing.T) {
	t.Run("starts empty on the name field", func(t *testing.T) {
		f := NewBeerForm()
		if f.focus != fieldName {
			t.Errorf("expected name focus, got %v", f.focus)
		}
		if f.Values() != (models.BeerInput{}) {
			t.Errorf("expected empty values, got %+v", f.Values())
		}
	})

	t.Run("valid submit emits trimmed input and resets", func(t *testing.T) {
		f := fillForm(NewBeerForm(), "  Test IPA ", "Test Brewery", "IPA")
		f, _ = f.Update(ratingChangedMsg(4))

		f, cmd := f.Submit()
		msg := exec(t, cmd)
		if msg.Kind() != MsgBeerSubmitted {
			t.Fatalf("expected MsgBeerSubmitted, got %v", msg.Kind())
		}

		want := models.BeerInput{Name: "Test IPA", Brewery: "Test Brewery", Style: "IPA", Rating: 4}
		if got := msg.data.(models.BeerInput); got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
		if f.Values() != (models.BeerInput{}) || f.Rating() != 0 {
			t.Errorf("expected reset form, got %+v", f.Values())
		}
		if f.focus != fieldName {
			t.Errorf("expected focus back on name, got %v", f.focus)
		}
	})

	t.Run("invalid submit keeps input", func(t *testing.T) {
		tests := []struct {
			name    string
			fields  []string
			missing string
		}{
			{"missing brewery", []string{"Test IPA"}, "Brewery is required"},
			{"missing name", []string{"", "Test Brewery"}, "Beer Name is required"},
			{"whitespace only", []string{"   ", "   "}, "Beer Name is required"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := fillForm(NewBeerForm(), tt.fields...)
				before := f.Values()

				f, cmd := f.Submit()
				if cmd != nil {
					t.Error("expected no submission")
				}
				if !f.Invalid() {
					t.Error("expected form to be marked invalid")
				}
				if f.Values() != before {
					t.Errorf("expected input kept, got %+v", f.Values())
				}
				if !strings.Contains(f.View(), tt.missing) {
					t.Errorf("expected %q in view", tt.missing)
				}
			})
		}
	})

	t.Run("enter submits from text fields", func(t *testing.T) {
		f := fillForm(NewBeerForm(), "A", "B")
		_, cmd := f.Update(keyOf(tea.KeyEnter))
		if exec(t, cmd).Kind() != MsgBeerSubmitted {
			t.Error("expected enter to submit")
		}
	})

	t.Run("ctrl+s submits from notes", func(t *testing.T) {
		f := fillForm(NewBeerForm(), "A", "B", "", "")
		f, _ = f.Update(keyOf(tea.KeyTab))
		if f.focus != fieldNotes {
			t.Fatalf("expected notes focus, got %v", f.focus)
		}
		f = typeForm(f, "Crisp")

		_, cmd := f.Update(keyOf(tea.KeyCtrlS))
		msg := exec(t, cmd)
		if got := msg.data.(models.BeerInput); got.Notes != "Crisp" {
			t.Errorf("expected notes Crisp, got %q", got.Notes)
		}
	})

	t.Run("tab order wraps", func(t *testing.T) {
		f := NewBeerForm()
		for range int(fieldCount) {
			f, _ = f.Update(keyOf(tea.KeyTab))
		}
		if f.focus != fieldName {
			t.Errorf("expected wraparound to name, got %v", f.focus)
		}

		f, _ = f.Update(keyOf(tea.KeyShiftTab))
		if f.focus != fieldSubmit {
			t.Errorf("expected shift+tab to reach submit, got %v", f.focus)
		}
	})

	t.Run("rating field emits changes", func(t *testing.T) {
		f := NewBeerForm()
		f, _ = f.setFocus(fieldRating)

		_, cmd := f.Update(runes("3"))
		msg := exec(t, cmd)
		if msg.Kind() != MsgRatingChanged || msg.data.(int) != 3 {
			t.Errorf("expected rating 3, got %+v", msg)
		}

		f, _ = f.Update(msg)
		if f.Rating() != 3 {
			t.Errorf("expected committed rating 3, got %d", f.Rating())
		}
		if !strings.Contains(f.View(), "(3/5)") {
			t.Error("expected rating text in view")
		}
	})
}
