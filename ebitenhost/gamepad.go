package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Pad reads an ebiten gamepad as a keypad.Gamepad. When the driver knows
// the standard layout the buttons are the 17 standard buttons with analog
// values; otherwise they are the raw buttons reading 0 or 1.
type Pad struct {
	ID ebiten.GamepadID
}

func (p Pad) ButtonCount() int {
	if ebiten.IsStandardGamepadLayoutAvailable(p.ID) {
		return int(ebiten.StandardGamepadButtonMax) + 1
	}
	return ebiten.GamepadButtonCount(p.ID)
}

func (p Pad) ButtonValue(i int) float64 {
	if ebiten.IsStandardGamepadLayoutAvailable(p.ID) {
		return ebiten.StandardGamepadButtonValue(p.ID, ebiten.StandardGamepadButton(i))
	}
	if ebiten.IsGamepadButtonPressed(p.ID, ebiten.GamepadButton(i)) {
		return 1
	}
	return 0
}
