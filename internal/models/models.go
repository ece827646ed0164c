// package models defines the data model for the beer tracker
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxRating is the highest (and number of) star positions.
const MaxRating = 5

// DateLayout is the layout of [Beer.DateAdded] as stored.
const DateLayout = "2006-01-02"

// Copy shared by the terminal and web interfaces.
const (
	Title        = "🍺 Junie's Beer Tracker"
	Subheading   = "Keep track of your favorite beers!"
	EmptyMessage = "No beers added yet. Add your first beer above!"
)

var (
	ErrMissingName    = errors.New("beer name is required")
	ErrMissingBrewery = errors.New("brewery is required")
)

var ratingDescriptions = [MaxRating]string{"terrible", "bad", "normal", "good", "wonderful"}

// Beer is a single record in the collection.
//
// JSON field names match the stored format, so collections written by earlier versions load unchanged.
// A rating stored as a numeric string ("4") is accepted; an empty or non-numeric string reads as unrated.
type Beer struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Brewery   string `json:"brewery"`
	Style     string `json:"style"`
	Rating    int    `json:"rating"`
	Notes     string `json:"notes"`
	DateAdded string `json:"dateAdded"`
}

// UnmarshalJSON decodes a stored beer, accepting the rating as a number or a string.
func (b *Beer) UnmarshalJSON(data []byte) error {
	type plain Beer
	aux := struct {
		*plain
		Rating json.RawMessage `json:"rating"`
	}{plain: (*plain)(b)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	rating, err := decodeRating(aux.Rating)
	if err != nil {
		return fmt.Errorf("beer %d: %w", b.ID, err)
	}
	b.Rating = rating
	return nil
}

func decodeRating(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, nil
		}
		return n, nil
	}

	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("invalid rating %s: %w", raw, err)
	}
	return n, nil
}

// HasRating reports whether the beer carries a displayable rating.
func (b Beer) HasRating() bool { return IsValidRating(b.Rating) }

// DeleteLabel is the accessible label of the delete control for this beer.
func (b Beer) DeleteLabel() string { return fmt.Sprintf("Delete Beer %s", b.Name) }

// BeerInput holds the values emitted by a form submission. Id and date are assigned by the owner.
type BeerInput struct {
	Name    string
	Brewery string
	Style   string
	Rating  int
	Notes   string
}

// Trim returns a copy with surrounding whitespace removed from every text field.
func (in BeerInput) Trim() BeerInput {
	return BeerInput{
		Name:    strings.TrimSpace(in.Name),
		Brewery: strings.TrimSpace(in.Brewery),
		Style:   strings.TrimSpace(in.Style),
		Rating:  in.Rating,
		Notes:   strings.TrimSpace(in.Notes),
	}
}

// Validate checks the required fields after trimming.
func (in BeerInput) Validate() error {
	t := in.Trim()
	if t.Name == "" {
		return ErrMissingName
	}
	if t.Brewery == "" {
		return ErrMissingBrewery
	}
	return nil
}

// IsValidRating reports whether r is within 1..[MaxRating].
func IsValidRating(r int) bool {
	return r >= 1 && r <= MaxRating
}

// NormalizeRating maps anything outside the valid range to 0 (unrated).
func NormalizeRating(r int) int {
	if !IsValidRating(r) {
		return 0
	}
	return r
}

// RatingText renders the "(r/5)" status text, or "" when unrated.
func RatingText(r int) string {
	if !IsValidRating(r) {
		return ""
	}
	return fmt.Sprintf("(%d/%d)", r, MaxRating)
}

// RatingDescription returns the word shown while previewing star position r.
func RatingDescription(r int) string {
	if !IsValidRating(r) {
		return ""
	}
	return ratingDescriptions[r-1]
}

// StarLabel is the label of star position p, e.g. "Rate 1 star" or "Rate 3 stars".
func StarLabel(p int) string {
	if p == 1 {
		return "Rate 1 star"
	}
	return fmt.Sprintf("Rate %d stars", p)
}
