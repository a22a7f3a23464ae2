package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wakaman/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with arrow, WASD and vim bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Action{
			"up":    core.ActionUp,
			"w":     core.ActionUp,
			"k":     core.ActionUp,
			"down":  core.ActionDown,
			"s":     core.ActionDown,
			"j":     core.ActionDown,
			"left":  core.ActionLeft,
			"a":     core.ActionLeft,
			"h":     core.ActionLeft,
			"right": core.ActionRight,
			"d":     core.ActionRight,
			"l":     core.ActionRight,
			"enter": core.ActionConfirm,
			"b":     core.ActionBack,
			"esc":   core.ActionBack,
			"p":     core.ActionPause,
			" ":     core.ActionPause,
			"r":     core.ActionRestart,
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	default:
		return km.bindings[key], false
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
