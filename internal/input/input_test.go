package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestJustPressedIsEdgeTriggered(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !m.JustPressed(ActionMoveForward) || !m.IsActive(ActionMoveForward) {
		t.Fatal("expected forward to be just pressed and active")
	}

	m.PostUpdate()
	m.HandleKeyEvent(glfw.KeyUp, glfw.Repeat)
	if m.JustPressed(ActionMoveForward) {
		t.Error("key repeat must not retrigger JustPressed")
	}
	if !m.IsActive(ActionMoveForward) {
		t.Error("held key should stay active")
	}

	m.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	if !m.JustReleased(ActionMoveForward) || m.IsActive(ActionMoveForward) {
		t.Error("expected forward to be just released and inactive")
	}
	m.PostUpdate()
	if m.JustReleased(ActionMoveForward) {
		t.Error("PostUpdate should clear release edges")
	}
}

func TestDefaultBindings(t *testing.T) {
	m := NewManager()
	cases := map[glfw.Key]Action{
		glfw.KeyUp:          ActionMoveForward,
		glfw.KeyDown:        ActionMoveBack,
		glfw.KeyLeft:        ActionMoveLeft,
		glfw.KeyRight:       ActionMoveRight,
		glfw.KeySpace:       ActionMoveUp,
		glfw.KeyLeftControl: ActionMoveDown,
		glfw.KeyF:           ActionToggleWireframe,
		glfw.KeyEscape:      ActionQuit,
	}
	for key, want := range cases {
		m.HandleKeyEvent(key, glfw.Press)
		if !m.JustPressed(want) {
			t.Errorf("key %d should trigger %s", key, want)
		}
		m.HandleKeyEvent(key, glfw.Release)
		m.PostUpdate()
	}
}

func TestBindAndUnbind(t *testing.T) {
	m := NewManager()
	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !m.IsActive(ActionMoveForward) {
		t.Fatal("extra binding should drive the action")
	}
	m.HandleKeyEvent(glfw.KeyW, glfw.Release)

	m.UnbindKey(glfw.KeyW)
	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if m.IsActive(ActionMoveForward) {
		t.Error("unbound key should be ignored")
	}

	m.BindKey(glfw.KeyQ, ActionCount)
	m.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	if m.IsActive(ActionCount) {
		t.Error("out of range actions are never active")
	}
}
