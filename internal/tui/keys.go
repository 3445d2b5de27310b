package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab        key.Binding
	ShiftTab   key.Binding
	Quit       key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Help       key.Binding
	Run        key.Binding
	Refresh    key.Binding
	NextOffice key.Binding
	PrevOffice key.Binding
	NextWeek   key.Binding
	PrevWeek   key.Binding
	IncSlots   key.Binding
	DecSlots   key.Binding
	EditTotal  key.Binding
	ResetCaps  key.Binding
	Policy     key.Binding
	Filter     key.Binding
	FilterDay  key.Binding
	Delete     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Run, k.Refresh, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.NextOffice, k.PrevOffice, k.NextWeek, k.PrevWeek, k.Refresh},
		{k.Left, k.Right, k.IncSlots, k.DecSlots, k.EditTotal, k.ResetCaps},
		{k.Run, k.Policy, k.Filter, k.FilterDay, k.Delete},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Run: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "run optimizer"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh overview"),
		),
		NextOffice: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "next office"),
		),
		PrevOffice: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "prev office"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next week"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev week"),
		),
		IncSlots: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more slots"),
		),
		DecSlots: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer slots"),
		),
		EditTotal: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "set weekly total"),
		),
		ResetCaps: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset to office defaults"),
		),
		Policy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit policy"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter text"),
		),
		FilterDay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "filter by day"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete assignment"),
		),
	}
}
