// Package keymap declares the keyboard bindings for the board.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the board responds to. Help text comes
// straight from the bindings so the footer never drifts from reality.
type KeyMap struct {
	NextControl key.Binding
	PrevControl key.Binding
	Increase    key.Binding
	Decrease    key.Binding
	CoarseUp    key.Binding
	CoarseDown  key.Binding
	Toggle      key.Binding
	NextProject key.Binding
	PrevProject key.Binding
	CopyLink    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// Default returns the standard binding set.
func Default() KeyMap {
	return KeyMap{
		NextControl: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		PrevControl: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Increase: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/k", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/j", "decrease"),
		),
		CoarseUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑", "increase by 10"),
		),
		CoarseDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓", "decrease by 10"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		NextProject: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "next project"),
		),
		PrevProject: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "previous project"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy project link"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the collapsed footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextControl, k.Increase, k.Decrease, k.NextProject, k.Help, k.Quit}
}

// FullHelp lists every binding for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextControl, k.PrevControl, k.Toggle},
		{k.Increase, k.Decrease, k.CoarseUp, k.CoarseDown},
		{k.NextProject, k.PrevProject, k.CopyLink},
		{k.Help, k.Quit},
	}
}
