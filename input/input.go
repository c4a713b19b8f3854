// Package input describes the per-frame input state handed to the simulation.
// It has no platform dependency; the platform package fills a Snapshot from raylib.
package input

import (
	"fmt"
	"math"
	"strings"
)

// Key identifies a keyboard key. Values match raylib key codes so the platform
// layer can pass them straight through.
type Key int32

const (
	KeyUnknown Key = 0
	KeySpace   Key = 32
	KeyA       Key = 65
	KeyZ       Key = 90
	KeyRight   Key = 262
	KeyLeft    Key = 263
	KeyDown    Key = 264
	KeyUp      Key = 265
)

var namedKeys = map[string]Key{
	"space": KeySpace,
	"up":    KeyUp,
	"down":  KeyDown,
	"left":  KeyLeft,
	"right": KeyRight,
}

// ParseKey converts a config key name ("w", "up", "space") to a Key.
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := namedKeys[n]; ok {
		return k, nil
	}
	if len(n) == 1 && n[0] >= 'a' && n[0] <= 'z' {
		return KeyA + Key(n[0]-'a'), nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// String returns the config name of the key.
func (k Key) String() string {
	for name, v := range namedKeys {
		if v == k {
			return name
		}
	}
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + (k - KeyA)))
	}
	return fmt.Sprintf("key(%d)", int32(k))
}

// Snapshot is the input state for a single frame.
type Snapshot struct {
	// Pointer position in scene coordinates.
	MouseX, MouseY float32

	// LeftPressed is true only on the frame the left button went down.
	LeftPressed bool
	// LeftDown is true on every frame the left button is held.
	LeftDown bool

	// Keys holds the keys currently held.
	Keys map[Key]bool
}

// KeyDown reports whether k is held this frame.
func (s Snapshot) KeyDown(k Key) bool {
	return s.Keys[k]
}

// Hold marks keys as held and returns the snapshot for chaining.
func (s Snapshot) Hold(keys ...Key) Snapshot {
	held := make(map[Key]bool, len(s.Keys)+len(keys))
	for k, v := range s.Keys {
		held[k] = v
	}
	for _, k := range keys {
		held[k] = true
	}
	s.Keys = held
	return s
}

// RoundedMouse returns the pointer snapped to whole pixels.
func (s Snapshot) RoundedMouse() (x, y float32) {
	return float32(math.Round(float64(s.MouseX))), float32(math.Round(float64(s.MouseY)))
}

// Click returns a snapshot with the pointer at (x, y) and the left button
// pressed on this frame.
func Click(x, y float32) Snapshot {
	return Snapshot{MouseX: x, MouseY: y, LeftPressed: true, LeftDown: true}
}
