package keypad

import (
	"fmt"
	"strings"
)

// Button is one of the ten logical GBA buttons. Its value is the bit
// position in a Mask.
type Button int

const (
	A Button = iota
	B
	SELECT
	START
	RIGHT
	LEFT
	UP
	DOWN
	R
	L
)

// NumButtons is the number of logical buttons.
const NumButtons = 10

var buttonNames = [NumButtons]string{"A", "B", "SELECT", "START", "RIGHT", "LEFT", "UP", "DOWN", "R", "L"}

// Valid reports whether b is one of the ten logical buttons.
func (b Button) Valid() bool {
	return b >= A && b <= L
}

func (b Button) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

func (b Button) bit() Mask {
	return 1 << uint(b)
}

// ParseButton returns the Button named by s. Matching ignores case.
func ParseButton(s string) (Button, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range buttonNames {
		if n == s {
			return Button(i), true
		}
	}
	return 0, false
}

// Buttons returns all logical buttons in bit order.
func Buttons() []Button {
	bs := make([]Button, NumButtons)
	for i := range bs {
		bs[i] = Button(i)
	}
	return bs
}

// Mask is the 10-bit button state handed to the emulation core. Bit n is
// set while Button(n) is held.
type Mask uint16

// MaskBits covers every logical button.
const MaskBits Mask = 0x3ff

// Has reports whether b is held in m.
func (m Mask) Has(b Button) bool {
	return b.Valid() && m&b.bit() != 0
}

func (m Mask) String() string {
	var held []string
	for i, n := range buttonNames {
		if m&(1<<uint(i)) != 0 {
			held = append(held, n)
		}
	}
	return fmt.Sprintf("%010b [%s]", uint16(m&MaskBits), strings.Join(held, " "))
}
