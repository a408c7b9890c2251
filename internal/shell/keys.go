package shell

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// keyMap holds the screen's key bindings. Everything not bound here goes to
// the text field.
type keyMap struct {
	Submit key.Binding
	Clear  key.Binding
	Push   key.Binding
	Quit   key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Push:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "push")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),

		ScrollUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "scroll")),
		ScrollDown: key.NewBinding(key.WithKeys("down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Push, k.ScrollUp, k.Quit}
}

// scrolling returns the bindings handed to the list viewport. Letter keys
// stay with the text field, so the viewport defaults are not used.
func (k keyMap) scrolling() viewport.KeyMap {
	return viewport.KeyMap{
		Up:       k.ScrollUp,
		Down:     k.ScrollDown,
		PageUp:   k.PageUp,
		PageDown: k.PageDown,
	}
}

func (k keyMap) scrollKeys() []key.Binding {
	return []key.Binding{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown}
}
