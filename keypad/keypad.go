package keypad

// Options configure a Keypad. Zero fields take the defaults.
type Options struct {
	Keys      *[NumButtons]int
	Threshold float64
	EatInput  bool
}

// Keypad turns host key and gamepad events into the button Mask the
// emulator reads each frame. It is not safe for concurrent use; the host
// drives it from its event loop.
type Keypad struct {
	// EatInput asks the host to swallow every key event, bound or not.
	EatInput bool

	bindings  *Bindings
	threshold float64

	keyboard Mask
	pads     [MaxGamepads]Mask
	gamepads []Gamepad

	remap     Button
	remapping bool
}

// New returns a Keypad with nothing held.
func New(opts Options) *Keypad {
	keys := DefaultKeys
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	return &Keypad{
		EatInput:  opts.EatInput,
		bindings:  NewBindings(keys),
		threshold: threshold,
	}
}

// Bindings returns the live key table.
func (k *Keypad) Bindings() *Bindings {
	return k.bindings
}

// Threshold returns the gamepad activation threshold.
func (k *Keypad) Threshold() float64 {
	return k.threshold
}

// HandleKey processes one key event. The return value asks the host to
// suppress its own handling of the event.
//
// While a remap is pending the event, press or release, binds code to the
// pending button and changes nothing else.
func (k *Keypad) HandleKey(code int, pressed bool) bool {
	if k.remapping {
		k.bindings.Bind(k.remap, code)
		k.remapping = false
		return true
	}

	b, ok := k.bindings.Button(code)
	if !ok {
		return k.EatInput
	}

	if pressed {
		k.keyboard |= b.bit()
	} else {
		k.keyboard &^= b.bit()
	}

	return k.EatInput
}

// PollGamepads replaces the tracked gamepads with the non-nil entries of
// pads and recomputes the state of the first MaxGamepads of them. The
// snapshot is authoritative: an empty one clears every gamepad.
func (k *Keypad) PollGamepads(pads []Gamepad) {
	k.gamepads = k.gamepads[:0]
	for _, g := range pads {
		if g != nil {
			k.gamepads = append(k.gamepads, g)
		}
	}

	for i := range k.pads {
		var g Gamepad
		if i < len(k.gamepads) {
			g = k.gamepads[i]
		}
		k.pads[i] = gamepadMask(g, k.threshold)
	}
}

// State is the combined keyboard and gamepad Mask.
func (k *Keypad) State() Mask {
	m := k.keyboard
	for _, p := range k.pads {
		m |= p
	}
	return m & MaskBits
}

// BeginRemap binds the next key event to b, replacing any remap already
// pending. Invalid buttons are ignored.
func (k *Keypad) BeginRemap(b Button) {
	if !b.Valid() {
		return
	}
	k.remap = b
	k.remapping = true
}

// BeginRemapByName is BeginRemap for a button name such as "START".
// Unknown names are ignored.
func (k *Keypad) BeginRemapByName(name string) {
	if b, ok := ParseButton(name); ok {
		k.BeginRemap(b)
	}
}

// Remapping returns the button waiting for a key, if any.
func (k *Keypad) Remapping() (Button, bool) {
	return k.remap, k.remapping
}

// CancelRemap drops a pending remap without binding anything.
func (k *Keypad) CancelRemap() {
	k.remapping = false
}

// GamepadConnected tracks g until the next poll says otherwise.
func (k *Keypad) GamepadConnected(g Gamepad) {
	if g == nil {
		return
	}
	k.gamepads = append(k.gamepads, g)
}

// GamepadDisconnected stops tracking every handle equal to g.
func (k *Keypad) GamepadDisconnected(g Gamepad) {
	kept := k.gamepads[:0]
	for _, o := range k.gamepads {
		if o != g {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(k.gamepads); i++ {
		k.gamepads[i] = nil
	}
	k.gamepads = kept
}

// Gamepads returns the tracked handles.
func (k *Keypad) Gamepads() []Gamepad {
	return append([]Gamepad(nil), k.gamepads...)
}

// Reset releases everything held on the keyboard and gamepads. Bindings
// and any pending remap are kept.
func (k *Keypad) Reset() {
	k.keyboard = 0
	for i := range k.pads {
		k.pads[i] = 0
	}
}
