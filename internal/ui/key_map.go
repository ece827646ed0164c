package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	next   key.Binding
	prev   key.Binding
	submit key.Binding
	left   key.Binding
	right  key.Binding
	pick   key.Binding
	clear  key.Binding
	add    key.Binding
	back   key.Binding
	del    key.Binding
	filter key.Binding
	yes    key.Binding
	no     key.Binding
	quit   key.Binding
	exit   key.Binding
	help   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add beer")),
		left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "fewer stars")),
		right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more stars")),
		pick:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "rate")),
		clear:  key.NewBinding(key.WithKeys("0", "backspace"), key.WithHelp("0", "clear rating")),
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add beer")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "collection")),
		del:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		yes:    key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "yes")),
		no:     key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		exit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.prev, k.submit},
		{k.left, k.right, k.pick, k.clear},
		{k.add, k.back, k.del, k.filter},
		{k.yes, k.no, k.help, k.quit},
	}
}
