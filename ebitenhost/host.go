// Package ebitenhost feeds ebiten keyboard and gamepad input into a
// keypad.Keypad once per frame.
package ebitenhost

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bdwalton/gbakeypad/keypad"
)

// remapKeys start a remap of the button at the same index.
var remapKeys = [keypad.NumButtons]ebiten.Key{
	ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5,
	ebiten.KeyF6, ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10,
}

// Host polls ebiten each frame and dispatches into a Keypad.
type Host struct {
	// Hotkeys are reserved for the UI and never reach the keypad.
	Hotkeys map[ebiten.Key]func()

	// Consumed counts key events the keypad asked the host to swallow.
	Consumed int

	pad *keypad.Keypad

	keys []ebiten.Key
	ids  []ebiten.GamepadID
	pads []keypad.Gamepad
}

// New returns a Host driving k with F1-F10 bound to remapping A-L and
// Escape cancelling a pending remap.
func New(k *keypad.Keypad) *Host {
	h := &Host{
		Hotkeys: make(map[ebiten.Key]func()),
		pad:     k,
	}

	for i, key := range remapKeys {
		b := keypad.Button(i)
		h.Hotkeys[key] = func() { h.BeginRemap(b) }
	}
	h.Hotkeys[ebiten.KeyEscape] = func() {
		if b, ok := k.Remapping(); ok {
			log.Printf("remap of %s cancelled", b)
			k.CancelRemap()
		}
	}

	return h
}

// BeginRemap asks the keypad to bind the next key to b.
func (h *Host) BeginRemap(b keypad.Button) {
	log.Printf("press a key for %s", b)
	h.pad.BeginRemap(b)
}

// Update dispatches this frame's input. Call it from ebiten.Game.Update.
func (h *Host) Update() {
	if !ebiten.IsFocused() {
		// keys released while unfocused are never reported
		h.pad.Reset()
		return
	}

	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, key := range h.keys {
		h.key(key, false)
	}
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, key := range h.keys {
		h.key(key, true)
	}

	h.gamepadEdges()

	h.ids = ebiten.AppendGamepadIDs(h.ids[:0])
	h.pads = h.pads[:0]
	for _, id := range h.ids {
		h.pads = append(h.pads, Pad{ID: id})
	}
	h.pad.PollGamepads(h.pads)
}

func (h *Host) key(key ebiten.Key, pressed bool) {
	if fn, ok := h.Hotkeys[key]; ok {
		if pressed {
			fn()
		}
		return
	}

	code, ok := KeyCode(key)
	if !ok {
		return
	}

	b, remapping := h.pad.Remapping()
	if h.pad.HandleKey(code, pressed) {
		h.Consumed++
	}
	if remapping {
		log.Printf("%s bound to %s", b, KeyName(code))
	}
}

func (h *Host) gamepadEdges() {
	h.ids = inpututil.AppendJustConnectedGamepadIDs(h.ids[:0])
	for _, id := range h.ids {
		log.Printf("gamepad %d connected: %s", id, ebiten.GamepadName(id))
		h.pad.GamepadConnected(Pad{ID: id})
	}

	for _, g := range h.pad.Gamepads() {
		p, ok := g.(Pad)
		if ok && inpututil.IsGamepadJustDisconnected(p.ID) {
			log.Printf("gamepad %d disconnected", p.ID)
			h.pad.GamepadDisconnected(p)
		}
	}
}
