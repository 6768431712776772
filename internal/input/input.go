// Package input maps glfw key events to viewer actions with per-frame edge
// detection.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical viewer action, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionToggleWireframe
	ActionQuit
	ActionCount // sentinel for array sizing
)

var actionNames = [ActionCount]string{
	"move-forward", "move-back", "move-left", "move-right",
	"move-up", "move-down", "toggle-wireframe", "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Manager tracks held actions and the ones pressed or released since the
// last PostUpdate. Event handlers may run on any goroutine.
type Manager struct {
	mu sync.RWMutex

	// one key can map to several actions
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager returns a Manager with the default viewer bindings.
func NewManager() *Manager {
	m := &Manager{keyToActions: make(map[glfw.Key][]Action)}

	m.BindKey(glfw.KeyUp, ActionMoveForward)
	m.BindKey(glfw.KeyDown, ActionMoveBack)
	m.BindKey(glfw.KeyLeft, ActionMoveLeft)
	m.BindKey(glfw.KeyRight, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionMoveUp)
	m.BindKey(glfw.KeyLeftControl, ActionMoveDown)
	m.BindKey(glfw.KeyF, ActionToggleWireframe)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	return m
}

// BindKey binds a physical key to a logical action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key.
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// HandleKeyEvent updates state for one key event. Repeats count as held.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, ok := m.keyToActions[key]
	if !ok {
		return
	}
	pressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if pressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		if !pressed && m.currentState[act] {
			m.justReleased[act] = true
		}
		m.currentState[act] = pressed
	}
}

// Attach installs the Manager as the window's key callback.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears the edge flags; call once at the end of each frame.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.justPressed = [ActionCount]bool{}
	m.justReleased = [ActionCount]bool{}
}

// IsActive reports whether the action is currently held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed reports whether the action went down during this frame.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased reports whether the action went up during this frame.
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}
