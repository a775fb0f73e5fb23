package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap documents the bindings handled by the input modes. Dispatch happens in
// the mode handlers; these bindings drive the help bubble and the help popup.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Page     key.Binding
	Category key.Binding
	Search   key.Binding
	Expand   key.Binding
	Vote     key.Binding
	Pager    key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Page:     key.NewBinding(key.WithKeys("pgup", "pgdown", "g", "G"), key.WithHelp("pgup/pgdn g/G", "page, top, bottom")),
		Category: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab/shift+tab", "category")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Expand:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "show answer (esc folds)")),
		Vote:     key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "helpful / not helpful")),
		Pager:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open answer in pager")),
		Clear:    key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c/esc", "clear search")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Category, k.Expand, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.Category},
		{k.Search, k.Clear, k.Expand, k.Pager},
		{k.Vote, k.Help, k.Quit},
	}
}
