package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmDialog(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want MsgKind
	}{
		{"y confirms", runes("y"), MsgDeleteBeer},
		{"enter confirms", keyOf(tea.KeyEnter), MsgDeleteBeer},
		{"n cancels", runes("n"), MsgConfirmCancelled},
		{"esc cancels", keyOf(tea.KeyEsc), MsgConfirmCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewConfirmDialog().Ask("Delete Beer Test?", deleteBeerMsg(7))
			if !d.Active() {
				t.Fatal("expected dialog to be active")
			}

			d, cmd := d.Update(tt.key)
			if d.Active() {
				t.Error("expected dialog to close after an answer")
			}
			msg := exec(t, cmd)
			if msg.Kind() != tt.want {
				t.Errorf("expected kind %v, got %v", tt.want, msg.Kind())
			}
			if tt.want == MsgDeleteBeer && msg.data.(int) != 7 {
				t.Errorf("expected id 7, got %v", msg.data)
			}
		})
	}

	t.Run("answers once", func(t *testing.T) {
		d := NewConfirmDialog().Ask("Delete?", deleteBeerMsg(1))
		d, _ = d.Update(runes("y"))
		if _, cmd := d.Update(runes("y")); cmd != nil {
			t.Error("expected closed dialog to ignore keys")
		}
	})

	t.Run("other keys keep it open", func(t *testing.T) {
		d := NewConfirmDialog().Ask("Delete?", deleteBeerMsg(1))
		d, cmd := d.Update(runes("x"))
		if cmd != nil || !d.Active() {
			t.Error("expected dialog to stay open")
		}
	})

	t.Run("View", func(t *testing.T) {
		if NewConfirmDialog().View() != "" {
			t.Error("expected closed dialog to render nothing")
		}
		view := NewConfirmDialog().Ask("Delete Beer Test?", deleteBeerMsg(1)).View()
		if !strings.Contains(view, "Delete Beer Test?") {
			t.Errorf("expected prompt in %q", view)
		}
	})
}
