package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/beers/internal/models"
)

const (
	starFilled = "★"
	starEmpty  = "☆"
)

// StarRating is the 1..5 star control.
//
// The committed rating belongs to the owner and is passed in on every call; the control only keeps the
// hovered position used for the preview. Picking a position emits [MsgRatingChanged].
type StarRating struct {
	hover   int
	focused bool
	keys    keyMap
}

// NewStarRating creates an unfocused control with no preview.
func NewStarRating() StarRating {
	return StarRating{keys: newKeyMap()}
}

// Focus gives the control keyboard focus, starting the preview at the committed rating (or the first star).
func (r StarRating) Focus(committed int) StarRating {
	r.focused = true
	r.hover = max(models.NormalizeRating(committed), 1)
	return r
}

// Blur removes focus and the preview.
func (r StarRating) Blur() StarRating {
	r.focused = false
	return r.Leave()
}

// Focused reports whether the control has keyboard focus.
func (r StarRating) Focused() bool { return r.focused }

// Hover previews position p. Positions outside 1..[models.MaxRating] are clamped.
func (r StarRating) Hover(p int) StarRating {
	r.hover = min(max(p, 1), models.MaxRating)
	return r
}

// Leave ends the preview so rendering reverts to the committed rating.
func (r StarRating) Leave() StarRating {
	r.hover = 0
	return r
}

// Hovered returns the previewed position, 0 when there is none.
func (r StarRating) Hovered() int { return r.hover }

// Click commits position p. Clicking the committed position resets the rating to 0.
func (r StarRating) Click(p, committed int) tea.Cmd {
	if !models.IsValidRating(p) {
		return nil
	}
	if p == models.NormalizeRating(committed) {
		return send(ratingChangedMsg(0))
	}
	return send(ratingChangedMsg(p))
}

// Filled returns how many positions render filled: the preview while hovering, else the committed rating.
func (r StarRating) Filled(committed int) int {
	if r.hover > 0 {
		return r.hover
	}
	return models.NormalizeRating(committed)
}

// Update handles keys while focused.
func (r StarRating) Update(msg tea.Msg, committed int) (StarRating, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !r.focused {
		return r, nil
	}

	switch {
	case key.Matches(keyMsg, r.keys.left):
		return r.Hover(r.hover - 1), nil
	case key.Matches(keyMsg, r.keys.right):
		return r.Hover(r.hover + 1), nil
	case key.Matches(keyMsg, r.keys.pick):
		return r, r.Click(r.hover, committed)
	case key.Matches(keyMsg, r.keys.clear):
		if models.NormalizeRating(committed) == 0 {
			return r, nil
		}
		return r, send(ratingChangedMsg(0))
	}

	if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '0'+models.MaxRating {
		p := int(s[0] - '0')
		return r.Hover(p), r.Click(p, committed)
	}

	return r, nil
}

// View renders the stars, the "(r/5)" status when rated and the description of the hovered position.
func (r StarRating) View(committed int) string {
	filled := r.Filled(committed)

	var b strings.Builder
	for p := 1; p <= models.MaxRating; p++ {
		glyph := starEmpty
		if p <= filled {
			glyph = starFilled
		}
		switch {
		case r.focused && p == r.hover:
			b.WriteString(styles.focused.Render(glyph))
		case p <= filled:
			b.WriteString(styles.star.Render(glyph))
		default:
			b.WriteString(styles.dim.Render(glyph))
		}
		if p < models.MaxRating {
			b.WriteString(" ")
		}
	}

	if text := models.RatingText(committed); text != "" {
		b.WriteString(" " + text)
	}

	if r.hover > 0 {
		b.WriteString("  " + styles.help.Render(models.StarLabel(r.hover)+" · "+models.RatingDescription(r.hover)))
	}

	return b.String()
}
