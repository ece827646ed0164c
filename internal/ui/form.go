package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/beers/internal/models"
)

// formField indexes the focusable parts of the [BeerForm] in tab order.
type formField int

const (
	fieldName formField = iota
	fieldBrewery
	fieldStyle
	fieldRating
	fieldNotes
	fieldSubmit
	fieldCount
)

// BeerForm collects a new beer. It owns the committed rating shown by its [StarRating].
//
// A valid submit emits exactly one [MsgBeerSubmitted] and clears the form; an invalid submit emits nothing
// and keeps the input.
type BeerForm struct {
	name    textinput.Model
	brewery textinput.Model
	style   textinput.Model
	notes   textarea.Model
	stars   StarRating
	rating  int
	focus   formField
	invalid bool
	keys    keyMap
}

// NewBeerForm creates an empty form focused on the name field.
func NewBeerForm() BeerForm {
	f := BeerForm{
		name:    newInput("🍺 ", "Enter beer name"),
		brewery: newInput("🏠 ", "Enter brewery name"),
		style:   newInput("💄 ", "e.g., IPA, Stout, Lager"),
		notes:   textarea.New(),
		stars:   NewStarRating(),
		keys:    newKeyMap(),
	}
	f.notes.Placeholder = "Your thoughts about this beer..."
	f.notes.ShowLineNumbers = false
	f.notes.SetHeight(3)
	f.notes.Blur()

	f, _ = f.setFocus(fieldName)
	return f
}

func newInput(prompt, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	return ti
}

// Values returns the current field values.
func (f BeerForm) Values() models.BeerInput {
	return models.BeerInput{
		Name:    f.name.Value(),
		Brewery: f.brewery.Value(),
		Style:   f.style.Value(),
		Rating:  f.rating,
		Notes:   f.notes.Value(),
	}
}

// Rating returns the committed rating.
func (f BeerForm) Rating() int { return f.rating }

// Invalid reports whether the last submit attempt was rejected.
func (f BeerForm) Invalid() bool { return f.invalid }

// SetWidth resizes the inputs.
func (f BeerForm) SetWidth(w int) BeerForm {
	w = max(w-4, 20)
	f.name.Width = w
	f.brewery.Width = w
	f.style.Width = w
	f.notes.SetWidth(w)
	return f
}

// Submit emits the values when name and brewery are present, then resets the form.
func (f BeerForm) Submit() (BeerForm, tea.Cmd) {
	in := f.Values()
	if err := in.Validate(); err != nil {
		f.invalid = true
		return f, nil
	}

	return f.Reset(), send(beerSubmittedMsg(in.Trim()))
}

// Reset clears every field and the committed rating and returns focus to the name field.
func (f BeerForm) Reset() BeerForm {
	f.name.Reset()
	f.brewery.Reset()
	f.style.Reset()
	f.notes.Reset()
	f.rating = 0
	f.invalid = false
	f, _ = f.setFocus(fieldName)
	return f
}

// Focus gives keyboard focus back to the current field.
func (f BeerForm) Focus() (BeerForm, tea.Cmd) {
	return f.setFocus(f.focus)
}

// Blur removes keyboard focus from every field.
func (f BeerForm) Blur() BeerForm {
	f.name.Blur()
	f.brewery.Blur()
	f.style.Blur()
	f.notes.Blur()
	f.stars = f.stars.Blur()
	return f
}

// setFocus moves focus to field; leaving the rating field ends its preview.
func (f BeerForm) setFocus(field formField) (BeerForm, tea.Cmd) {
	f = f.Blur()
	f.focus = (field + fieldCount) % fieldCount

	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		cmd = f.name.Focus()
	case fieldBrewery:
		cmd = f.brewery.Focus()
	case fieldStyle:
		cmd = f.style.Focus()
	case fieldRating:
		f.stars = f.stars.Focus(f.rating)
	case fieldNotes:
		cmd = f.notes.Focus()
	}
	return f, cmd
}

// Update routes keys to the focused field and applies rating changes.
func (f BeerForm) Update(msg tea.Msg) (BeerForm, tea.Cmd) {
	switch msg := msg.(type) {
	case Msg:
		if msg.kind == MsgRatingChanged {
			f.rating = msg.data.(int)
		}
		return f, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.next):
			return f.setFocus(f.focus + 1)
		case key.Matches(msg, f.keys.prev):
			return f.setFocus(f.focus - 1)
		case key.Matches(msg, f.keys.submit):
			return f.Submit()
		case msg.Type == tea.KeyEnter && f.focus != fieldNotes && f.focus != fieldRating:
			return f.Submit()
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldBrewery:
		f.brewery, cmd = f.brewery.Update(msg)
	case fieldStyle:
		f.style, cmd = f.style.Update(msg)
	case fieldRating:
		f.stars, cmd = f.stars.Update(msg, f.rating)
	case fieldNotes:
		f.notes, cmd = f.notes.Update(msg)
	}
	return f, cmd
}

// View renders the labelled fields and the submit button.
func (f BeerForm) View() string {
	var b strings.Builder

	f.writeField(&b, "Beer Name", true, f.name.Value(), f.name.View())
	f.writeField(&b, "Brewery", true, f.brewery.Value(), f.brewery.View())
	f.writeField(&b, "Style", false, "", f.style.View())
	f.writeField(&b, "Rating (1-5)", false, "", f.stars.View(f.rating))
	f.writeField(&b, "Notes", false, "", f.notes.View())

	button := "[ Add Beer ]"
	if f.focus == fieldSubmit {
		button = styles.focused.Render(button)
	}
	b.WriteString(button)

	return b.String()
}

func (f BeerForm) writeField(b *strings.Builder, label string, required bool, value, view string) {
	title := label
	if required {
		title += " *"
	}
	b.WriteString(styles.heading.Render(title))
	if required && f.invalid && strings.TrimSpace(value) == "" {
		b.WriteString(" " + styles.err.Render(fmt.Sprintf("%s is required", label)))
	}
	b.WriteString("\n" + view + "\n\n")
}
