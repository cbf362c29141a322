// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in the form.
	Up key.Binding

	// Down navigates down in the form.
	Down key.Binding

	// PrevCategory jumps to the previous category.
	PrevCategory key.Binding

	// NextCategory jumps to the next category.
	NextCategory key.Binding

	// Yes marks the current question Yes.
	Yes key.Binding

	// No marks the current question No.
	No key.Binding

	// NotApplicable marks the current question N/A.
	NotApplicable key.Binding

	// Edit starts editing the current field or remark.
	Edit key.Binding

	// Confirm commits the text being edited.
	Confirm key.Binding

	// Summary toggles the tally view.
	Summary key.Binding

	// Submit sends the checklist to the record store.
	Submit key.Binding

	// Reset clears the whole form.
	Reset key.Binding

	// SignIn starts the browser sign-in flow.
	SignIn key.Binding

	// SignOut ends the session.
	SignOut key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next category"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		NotApplicable: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "n/a"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "edit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Summary: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "summary"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		SignIn: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "sign in"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sign out"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Summary, k.Help, k.Quit}
}

// FormHelp returns keybindings for the form view.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.NotApplicable, k.Edit, k.Submit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevCategory, k.NextCategory},
		{k.Yes, k.No, k.NotApplicable, k.Edit},
		{k.Submit, k.Reset, k.SignIn, k.SignOut},
		{k.Summary, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
