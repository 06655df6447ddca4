package input

import (
	"strings"
	"sync"
)

// Key is a key identifier as delivered by the host event source. Values
// follow the browser KeyboardEvent.key names.
type Key string

const (
	KeyUp     Key = "ArrowUp"
	KeyDown   Key = "ArrowDown"
	KeyLeft   Key = "ArrowLeft"
	KeyRight  Key = "ArrowRight"
	KeySwitch Key = "e"
	KeyReset  Key = "r"
	KeyPass   Key = "a"
	KeyShoot  Key = " "
)

var knownKeys = map[Key]struct{}{
	KeyUp: {}, KeyDown: {}, KeyLeft: {}, KeyRight: {},
	KeySwitch: {}, KeyReset: {}, KeyPass: {}, KeyShoot: {},
}

// ParseKey maps a raw key identifier to a Key. Letters are case-insensitive
// and "Space"/"Spacebar" alias the space bar.
func ParseKey(raw string) (Key, bool) {
	switch raw {
	case "Space", "Spacebar", "space":
		return KeyShoot, true
	}
	k := Key(raw)
	if len(raw) == 1 {
		k = Key(strings.ToLower(raw))
	}
	if _, ok := knownKeys[k]; !ok {
		return "", false
	}
	return k, true
}

// Frame is the input snapshot consulted once per tick.
type Frame struct {
	Held    map[Key]bool
	Pressed map[Key]bool
}

func (f Frame) IsHeld(k Key) bool {
	return f.Held[k]
}

// Triggered reports whether k went down at least once since the previous frame.
func (f Frame) Triggered(k Key) bool {
	return f.Pressed[k]
}

// Axis returns the per-axis direction of the held arrow keys, each in {-1, 0, 1}.
func (f Frame) Axis() (dx, dy float64) {
	if f.Held[KeyLeft] {
		dx--
	}
	if f.Held[KeyRight] {
		dx++
	}
	if f.Held[KeyUp] {
		dy--
	}
	if f.Held[KeyDown] {
		dy++
	}
	return dx, dy
}

// Keyboard tracks held keys and latches key presses between snapshots.
// Down and Up may be called from any goroutine.
type Keyboard struct {
	mu      sync.Mutex
	held    map[Key]bool
	pressed map[Key]bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		held:    make(map[Key]bool),
		pressed: make(map[Key]bool),
	}
}

func (kb *Keyboard) Down(k Key) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.held[k] = true
	kb.pressed[k] = true
}

func (kb *Keyboard) Up(k Key) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	delete(kb.held, k)
}

// Snapshot copies the current state and clears the press latches.
func (kb *Keyboard) Snapshot() Frame {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	f := Frame{
		Held:    make(map[Key]bool, len(kb.held)),
		Pressed: kb.pressed,
	}
	for k, v := range kb.held {
		f.Held[k] = v
	}
	kb.pressed = make(map[Key]bool)
	return f
}

// Reset releases every key.
func (kb *Keyboard) Reset() {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.held = make(map[Key]bool)
	kb.pressed = make(map[Key]bool)
}
