package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyCodes maps ebiten keys to browser keyCodes, the raw codes the keypad
// bindings are written in.
var keyCodes = map[ebiten.Key]int{
	ebiten.KeyBackspace:    8,
	ebiten.KeyTab:          9,
	ebiten.KeyEnter:        13,
	ebiten.KeyNumpadEnter:  13,
	ebiten.KeyShiftLeft:    16,
	ebiten.KeyShiftRight:   16,
	ebiten.KeyControlLeft:  17,
	ebiten.KeyControlRight: 17,
	ebiten.KeyAltLeft:      18,
	ebiten.KeyAltRight:     18,
	ebiten.KeyPause:        19,
	ebiten.KeyCapsLock:     20,
	ebiten.KeyEscape:       27,
	ebiten.KeySpace:        32,
	ebiten.KeyPageUp:       33,
	ebiten.KeyPageDown:     34,
	ebiten.KeyEnd:          35,
	ebiten.KeyHome:         36,
	ebiten.KeyArrowLeft:    37,
	ebiten.KeyArrowUp:      38,
	ebiten.KeyArrowRight:   39,
	ebiten.KeyArrowDown:    40,
	ebiten.KeyInsert:       45,
	ebiten.KeyDelete:       46,

	ebiten.KeyDigit0: 48,
	ebiten.KeyDigit1: 49,
	ebiten.KeyDigit2: 50,
	ebiten.KeyDigit3: 51,
	ebiten.KeyDigit4: 52,
	ebiten.KeyDigit5: 53,
	ebiten.KeyDigit6: 54,
	ebiten.KeyDigit7: 55,
	ebiten.KeyDigit8: 56,
	ebiten.KeyDigit9: 57,

	ebiten.KeyA: 65,
	ebiten.KeyB: 66,
	ebiten.KeyC: 67,
	ebiten.KeyD: 68,
	ebiten.KeyE: 69,
	ebiten.KeyF: 70,
	ebiten.KeyG: 71,
	ebiten.KeyH: 72,
	ebiten.KeyI: 73,
	ebiten.KeyJ: 74,
	ebiten.KeyK: 75,
	ebiten.KeyL: 76,
	ebiten.KeyM: 77,
	ebiten.KeyN: 78,
	ebiten.KeyO: 79,
	ebiten.KeyP: 80,
	ebiten.KeyQ: 81,
	ebiten.KeyR: 82,
	ebiten.KeyS: 83,
	ebiten.KeyT: 84,
	ebiten.KeyU: 85,
	ebiten.KeyV: 86,
	ebiten.KeyW: 87,
	ebiten.KeyX: 88,
	ebiten.KeyY: 89,
	ebiten.KeyZ: 90,

	ebiten.KeyNumpad0:        96,
	ebiten.KeyNumpad1:        97,
	ebiten.KeyNumpad2:        98,
	ebiten.KeyNumpad3:        99,
	ebiten.KeyNumpad4:        100,
	ebiten.KeyNumpad5:        101,
	ebiten.KeyNumpad6:        102,
	ebiten.KeyNumpad7:        103,
	ebiten.KeyNumpad8:        104,
	ebiten.KeyNumpad9:        105,
	ebiten.KeyNumpadMultiply: 106,
	ebiten.KeyNumpadAdd:      107,
	ebiten.KeyNumpadSubtract: 109,
	ebiten.KeyNumpadDecimal:  110,
	ebiten.KeyNumpadDivide:   111,

	ebiten.KeyF1:  112,
	ebiten.KeyF2:  113,
	ebiten.KeyF3:  114,
	ebiten.KeyF4:  115,
	ebiten.KeyF5:  116,
	ebiten.KeyF6:  117,
	ebiten.KeyF7:  118,
	ebiten.KeyF8:  119,
	ebiten.KeyF9:  120,
	ebiten.KeyF10: 121,
	ebiten.KeyF11: 122,
	ebiten.KeyF12: 123,

	ebiten.KeyNumLock:      144,
	ebiten.KeyScrollLock:   145,
	ebiten.KeySemicolon:    186,
	ebiten.KeyEqual:        187,
	ebiten.KeyComma:        188,
	ebiten.KeyMinus:        189,
	ebiten.KeyPeriod:       190,
	ebiten.KeySlash:        191,
	ebiten.KeyBackquote:    192,
	ebiten.KeyBracketLeft:  219,
	ebiten.KeyBackslash:    220,
	ebiten.KeyBracketRight: 221,
	ebiten.KeyQuote:        222,
}

// KeyCode returns the browser keyCode for k.
func KeyCode(k ebiten.Key) (int, bool) {
	c, ok := keyCodes[k]
	return c, ok
}

// KeyName returns a printable name for a keyCode, falling back to the
// number itself.
func KeyName(code int) string {
	for k, c := range keyCodes {
		if c == code && !shadowed(k) {
			return k.String()
		}
	}
	return fmt.Sprintf("#%d", code)
}

// shadowed reports keys that share a code with a more common key.
func shadowed(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyNumpadEnter, ebiten.KeyShiftRight, ebiten.KeyControlRight, ebiten.KeyAltRight:
		return true
	}
	return false
}
