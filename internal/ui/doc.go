// Package ui implements the interactive terminal interface using bubbletea's Elm architecture.
//
// The screen is split into two panes:
//  1. [BeerForm] : "Add New Beer" inputs plus a [StarRating] widget
//  2. [BeerList] : "Your Beer Collection (N)" as filterable cards
//
// Child components never touch the tracker. They emit Msg values (submitted input, delete requests,
// rating changes) which the root [Model] applies to the [tracker.Tracker] before refreshing the list.
// Deletes may route through a [ConfirmDialog] first, which re-emits the delete only on "y".
//
// Keyboard navigation uses tab/shift+tab between fields, esc/a between panes, and q or ctrl+c to quit,
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
