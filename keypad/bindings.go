package keypad

// DefaultKeys are the browser keyCodes each button is bound to unless
// configured otherwise.
var DefaultKeys = [NumButtons]int{
	A:      83, // S
	B:      65, // A
	SELECT: 8,  // Backspace
	START:  13, // Enter
	RIGHT:  39,
	LEFT:   37,
	UP:     38,
	DOWN:   40,
	R:      87, // W
	L:      81, // Q
}

// Bindings maps buttons to raw key codes in both directions. Two buttons
// may end up on the same code; the one bound last wins the reverse lookup.
type Bindings struct {
	keys    [NumButtons]int
	buttons map[int]Button
}

// NewBindings returns a table holding keys.
func NewBindings(keys [NumButtons]int) *Bindings {
	bs := &Bindings{buttons: make(map[int]Button, NumButtons)}
	for i, k := range keys {
		bs.keys[i] = k
		bs.buttons[k] = Button(i)
	}
	return bs
}

// Key returns the raw code bound to b.
func (bs *Bindings) Key(b Button) (int, bool) {
	if !b.Valid() {
		return 0, false
	}
	return bs.keys[b], true
}

// Button returns the button bound to code.
func (bs *Bindings) Button(code int) (Button, bool) {
	b, ok := bs.buttons[code]
	return b, ok
}

// Keys returns a copy of the forward table.
func (bs *Bindings) Keys() [NumButtons]int {
	return bs.keys
}

// Bind points b at code. Invalid buttons are ignored.
func (bs *Bindings) Bind(b Button, code int) {
	if !b.Valid() {
		return
	}

	old := bs.keys[b]
	bs.keys[b] = code
	bs.buttons[code] = b

	if old == code {
		return
	}
	if owner, ok := bs.buttons[old]; ok && owner == b {
		delete(bs.buttons, old)
		// hand the code back to any button that still has it
		for i, k := range bs.keys {
			if k == old {
				bs.buttons[old] = Button(i)
			}
		}
	}
}
