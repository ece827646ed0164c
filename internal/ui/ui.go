package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/shared"
	"github.com/desertthunder/beers/internal/tracker"
)

const (
	Banner     = models.Title
	Subheading = models.Subheading
	AddHeading = "Add New Beer"
)

// Pane identifies which half of the screen has focus.
type Pane int

const (
	FormPane Pane = iota
	ListPane
)

// Options configures the [Model].
type Options struct {
	Dates         *shared.DateFormatter
	ConfirmDelete bool
	Logger        *log.Logger
}

// Model is the TUI shell: it owns the child components and applies their messages to the [tracker.Tracker].
type Model struct {
	ctx     context.Context
	tracker *tracker.Tracker
	form    BeerForm
	list    BeerList
	dialog  ConfirmDialog
	pane    Pane
	width   int
	height  int
	status  string
	err     error
	logger  *log.Logger
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model showing the tracker's collection.
func NewModel(ctx context.Context, t *tracker.Tracker, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	m := &Model{
		ctx:     ctx,
		tracker: t,
		form:    NewBeerForm(),
		list:    NewBeerList(opts.Dates, opts.ConfirmDelete),
		dialog:  NewConfirmDialog(),
		pane:    FormPane,
		logger:  opts.Logger,
		help:    help.New(),
		keys:    newKeyMap(),
	}
	m.list, _ = m.list.SetBeers(t.Beers())
	return m
}

// Init starts the cursor blink of the focused input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Pane returns the focused pane.
func (m *Model) Pane() Pane { return m.pane }

// Status returns the last status line.
func (m *Model) Status() string { return m.status }

// Err returns the last persistence error, if any.
func (m *Model) Err() error { return m.err }

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form = m.form.SetWidth(msg.Width)
		m.list = m.list.SetSize(msg.Width-4, max(msg.Height/2, cardHeight+2))
		m.help.Width = msg.Width
		return m, nil

	case Msg:
		return m.handleMsg(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.exit) {
			return m, tea.Quit
		}
		if m.dialog.Active() {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		}
		switch m.pane {
		case FormPane:
			return m.handleFormKeys(msg)
		case ListPane:
			return m.handleListKeys(msg)
		}
	}

	var formCmd, listCmd tea.Cmd
	m.form, formCmd = m.form.Update(msg)
	m.list, listCmd = m.list.Update(msg)
	return m, tea.Batch(formCmd, listCmd)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgRatingChanged:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case MsgBeerSubmitted:
		beer, err := m.tracker.Add(m.ctx, msg.data.(models.BeerInput))
		m.setResult(fmt.Sprintf("Added %s", beer.Name), err)
		return m, m.refresh()

	case MsgConfirmRequested:
		req := msg.data.(confirmRequest)
		m.dialog = m.dialog.Ask(req.prompt, req.onConfirm)
		return m, nil

	case MsgConfirmCancelled:
		m.status = "Delete cancelled"
		return m, nil

	case MsgDeleteBeer:
		id := msg.data.(int)
		beer, ok := m.tracker.Get(id)
		_, err := m.tracker.Delete(m.ctx, id)
		status := fmt.Sprintf("Deleted %s", beer.Name)
		if !ok {
			status = fmt.Sprintf("Beer %d not found", id)
		}
		m.setResult(status, err)
		return m, m.refresh()
	}
	return m, nil
}

func (m *Model) setResult(status string, err error) {
	m.err = err
	if err != nil {
		m.logger.Error("failed to save collection", "error", err)
		m.status = ""
		return
	}
	m.status = status
}

func (m *Model) refresh() tea.Cmd {
	var cmd tea.Cmd
	m.list, cmd = m.list.SetBeers(m.tracker.Beers())
	return cmd
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.back) {
		return m.focusPane(ListPane)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.list.Filtering() {
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.add), key.Matches(msg, m.keys.next):
			return m.focusPane(FormPane)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) focusPane(p Pane) (tea.Model, tea.Cmd) {
	m.pane = p
	if p == ListPane {
		m.form = m.form.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Focus()
	return m, cmd
}

// View renders the banner, both panes, the status line and contextual help.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render(Banner) + "\n")
	b.WriteString(styles.help.Render(Subheading) + "\n\n")

	b.WriteString(m.renderPane(AddHeading, m.form.View(), m.pane == FormPane))

	collection := m.list.View()
	if m.dialog.Active() {
		collection = m.dialog.View()
	}
	b.WriteString(m.renderPane(m.tracker.Heading(), collection, m.pane == ListPane))

	if m.err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	} else if m.status != "" {
		b.WriteString(styles.ok.Render(m.status) + "\n")
	}

	if m.help.ShowAll {
		b.WriteString(m.help.View(m.keys))
	} else {
		b.WriteString(m.help.ShortHelpView(m.helpKeys()))
	}
	return b.String()
}

func (m *Model) renderPane(heading, body string, focused bool) string {
	title := styles.heading.Render(heading)
	if focused {
		title = styles.focused.Render(heading)
	}
	return styles.pane.Render(title+"\n\n"+body) + "\n"
}

func (m *Model) helpKeys() []key.Binding {
	switch {
	case m.dialog.Active():
		return []key.Binding{m.keys.yes, m.keys.no}
	case m.pane == FormPane:
		return []key.Binding{m.keys.next, m.keys.submit, m.keys.left, m.keys.right, m.keys.back, m.keys.exit}
	default:
		return []key.Binding{m.keys.add, m.keys.del, m.keys.filter, m.keys.help, m.keys.quit}
	}
}
