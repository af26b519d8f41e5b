package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// binding ties a key binding to the action it produces.
type binding struct {
	key    key.Binding
	action core.Action
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings   []binding
	Screenshot key.Binding
}

// NewKeyMapper creates a mapper with the default PacMaze bindings:
// arrows or WASD steer, space or r restarts, p or esc pauses.
func NewKeyMapper() *KeyMapper {
	bind := func(a core.Action, help string, keys ...string) binding {
		return binding{
			key:    key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
			action: a,
		}
	}

	return &KeyMapper{
		bindings: []binding{
			bind(core.ActionQuit, "quit", "q", "ctrl+c"),
			bind(core.ActionUp, "up", "up", "w"),
			bind(core.ActionDown, "down", "down", "s"),
			bind(core.ActionLeft, "left", "left", "a"),
			bind(core.ActionRight, "right", "right", "d"),
			bind(core.ActionRestart, "restart", " ", "r"),
			bind(core.ActionPause, "pause", "p", "esc"),
			bind(core.ActionBack, "back", "b"),
			bind(core.ActionConfirm, "confirm", "enter"),
		},
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey returns the action bound to msg, or ActionNone, and whether it
// asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, b.key) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action bound to msg in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
