package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/beers/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
//
// Child components never touch the collection; they emit a Msg and the [Model] acts on it.
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgRatingChanged MsgKind = iota
	MsgBeerSubmitted
	MsgConfirmRequested
	MsgConfirmCancelled
	MsgDeleteBeer
)

// Kind reports which member of the union m is.
func (m Msg) Kind() MsgKind { return m.kind }

// confirmRequest is the payload of [MsgConfirmRequested]
type confirmRequest struct {
	prompt    string
	onConfirm Msg
}

// ratingChangedMsg is the constructor for [MsgRatingChanged]
func ratingChangedMsg(rating int) Msg {
	return Msg{kind: MsgRatingChanged, data: rating}
}

// beerSubmittedMsg is the constructor for [MsgBeerSubmitted]
func beerSubmittedMsg(input models.BeerInput) Msg {
	return Msg{kind: MsgBeerSubmitted, data: input}
}

// confirmRequestedMsg is the constructor for [MsgConfirmRequested]
func confirmRequestedMsg(prompt string, onConfirm Msg) Msg {
	return Msg{kind: MsgConfirmRequested, data: confirmRequest{prompt: prompt, onConfirm: onConfirm}}
}

// confirmCancelledMsg is the constructor for [MsgConfirmCancelled]
func confirmCancelledMsg() Msg {
	return Msg{kind: MsgConfirmCancelled}
}

// deleteBeerMsg is the constructor for [MsgDeleteBeer]
func deleteBeerMsg(id int) Msg {
	return Msg{kind: MsgDeleteBeer, data: id}
}

// send wraps msg in a [tea.Cmd].
func send(msg Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
