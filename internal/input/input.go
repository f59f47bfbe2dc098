package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Action represents a logical viewer command, not a physical key
type Action int

const (
	ActionNextScene Action = iota
	ActionPrevScene
	ActionDepthUp
	ActionDepthDown
	ActionToggleCurve
	ActionSelectMode
	ActionInsertMode
	ActionDeleteMode
	ActionResetPoints
	ActionResetCamera
	ActionToggleWireframe
	ActionToggleControlPolygon
	ActionToggleHUD
	ActionToggleProfiling
	ActionQuit
	ActionMouseLeft
	ActionMouseRight
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and buttons to actions and tracks the
// pointer between frames
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	cursor     mgl32.Vec2 // window pixels
	lastCursor mgl32.Vec2
	haveCursor bool
	scroll     float32
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyTab, ActionNextScene)
	im.BindKey(glfw.KeyN, ActionNextScene)
	im.BindKey(glfw.KeyP, ActionPrevScene)
	im.BindKey(glfw.KeyUp, ActionDepthUp)
	im.BindKey(glfw.KeyEqual, ActionDepthUp)
	im.BindKey(glfw.KeyDown, ActionDepthDown)
	im.BindKey(glfw.KeyMinus, ActionDepthDown)
	im.BindKey(glfw.KeySpace, ActionToggleCurve)
	im.BindKey(glfw.Key1, ActionSelectMode)
	im.BindKey(glfw.Key2, ActionInsertMode)
	im.BindKey(glfw.Key3, ActionDeleteMode)
	im.BindKey(glfw.KeyR, ActionResetPoints)
	im.BindKey(glfw.KeyC, ActionResetCamera)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyL, ActionToggleControlPolygon)
	im.BindKey(glfw.KeyH, ActionToggleHUD)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)
	im.BindMouseButton(glfw.MouseButtonRight, ActionMouseRight)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, ok := im.keyToActions[key]
	if !ok {
		return
	}
	im.apply(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, ok := im.mouseButtonToActions[button]
	if !ok {
		return
	}
	im.apply(actions, action == glfw.Press)
}

// apply records the new held state and its edges. Callers hold mu.
func (im *InputManager) apply(actions []Action, pressed bool) {
	for _, act := range actions {
		if pressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !pressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = pressed
	}
}

// HandleCursorPos records the pointer position in window pixels
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.cursor = mgl32.Vec2{float32(x), float32(y)}
	if !im.haveCursor {
		im.lastCursor = im.cursor
		im.haveCursor = true
	}
}

// HandleScroll accumulates wheel offsets until PostUpdate
func (im *InputManager) HandleScroll(_, yoff float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.scroll += float32(yoff)
}

// SetCallbacks installs the GLFW key, button, cursor and scroll callbacks
// This should be called once during initialization
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		im.HandleCursorPos(x, y)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(xoff, yoff)
	})
}

// PostUpdate must be called at the end of each frame to reset edges,
// the cursor delta and the scroll accumulator
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
	im.lastCursor = im.cursor
	im.scroll = 0
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

// Cursor returns the pointer position and its movement since the last
// PostUpdate, in window pixels
func (im *InputManager) Cursor() (pos, delta mgl32.Vec2) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.cursor, im.cursor.Sub(im.lastCursor)
}

// Scroll returns the wheel offset accumulated this frame
func (im *InputManager) Scroll() float32 {
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.scroll
}
