package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog answers confirmation requests with yes or no.
//
// A request carries the message to emit when confirmed. Each request is answered at most once;
// the dialog closes after the first answer.
type ConfirmDialog struct {
	prompt    string
	onConfirm Msg
	active    bool
	keys      keyMap
}

// NewConfirmDialog creates a closed dialog.
func NewConfirmDialog() ConfirmDialog {
	return ConfirmDialog{keys: newKeyMap()}
}

// Ask opens the dialog with prompt; onConfirm is emitted if the user answers yes.
func (d ConfirmDialog) Ask(prompt string, onConfirm Msg) ConfirmDialog {
	d.prompt = prompt
	d.onConfirm = onConfirm
	d.active = true
	return d
}

// Active reports whether a request is awaiting an answer.
func (d ConfirmDialog) Active() bool { return d.active }

// Prompt returns the pending question.
func (d ConfirmDialog) Prompt() string { return d.prompt }

// Update answers the pending request on y/enter (confirmed) or n/esc (cancelled).
func (d ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.active {
		return d, nil
	}

	switch {
	case key.Matches(keyMsg, d.keys.yes):
		d.active = false
		return d, send(d.onConfirm)
	case key.Matches(keyMsg, d.keys.no):
		d.active = false
		return d, send(confirmCancelledMsg())
	}
	return d, nil
}

// View renders the question with its yes/no hint.
func (d ConfirmDialog) View() string {
	if !d.active {
		return ""
	}
	return fmt.Sprintf("%s\n\n%s", styles.warn.Render(d.prompt), styles.help.Render("y: yes • n: no"))
}
