package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crystal-quest/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "up", "w", "k":
		return core.ActionJump, false
	case "enter":
		return core.ActionStart, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
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

// KeyHold turns discrete key presses into held state. Terminals report
// presses and auto-repeats but never releases, so a key counts as held for a
// fixed number of ticks after it was last seen.
type KeyHold struct {
	ticks int
	left  map[core.Action]int
}

// NewKeyHold creates a tracker that holds each key for ticks frames.
func NewKeyHold(ticks int) KeyHold {
	if ticks < 1 {
		ticks = 1
	}
	return KeyHold{ticks: ticks, left: make(map[core.Action]int)}
}

// Press marks an action held for the full hold window. Pressing one
// direction releases the other at once.
func (h KeyHold) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.left, core.ActionRight)
	case core.ActionRight:
		delete(h.left, core.ActionLeft)
	}
	h.left[a] = h.ticks
}

// Frame returns the actions held this tick.
func (h KeyHold) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, n := range h.left {
		if n > 0 {
			f.Set(a)
		}
	}
	return f
}

// Advance ages every held key by one tick.
func (h KeyHold) Advance() {
	for a, n := range h.left {
		if n <= 1 {
			delete(h.left, a)
			continue
		}
		h.left[a] = n - 1
	}
}

// Release drops every held key.
func (h KeyHold) Release() {
	for a := range h.left {
		delete(h.left, a)
	}
}
