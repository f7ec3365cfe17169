package keypad

// MaxGamepads is the number of gamepads that contribute to the state.
const MaxGamepads = 3

// DefaultThreshold is how far a gamepad button must travel before it
// counts as pressed.
const DefaultThreshold = 0.2

// Gamepad is a host controller handle. Values are in [0, 1]. Handles are
// compared with == so implementations must be comparable.
type Gamepad interface {
	ButtonCount() int
	ButtonValue(i int) float64
}

// GamepadButtons is the standard gamepad layout index read for each
// logical button. It is not remappable.
var GamepadButtons = [NumButtons]int{
	A:      0,
	B:      1,
	SELECT: 8,
	START:  9,
	RIGHT:  15,
	LEFT:   14,
	UP:     12,
	DOWN:   13,
	R:      5,
	L:      4,
}

// gamepadMask builds the state of g from scratch. A nil gamepad is 0.
func gamepadMask(g Gamepad, threshold float64) Mask {
	if g == nil {
		return 0
	}

	var m Mask
	n := g.ButtonCount()
	for b, idx := range GamepadButtons {
		if idx < n && g.ButtonValue(idx) > threshold {
			m |= Button(b).bit()
		}
	}
	return m & MaskBits
}
