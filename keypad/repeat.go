package keypad

const (
	repeatInitialFrames  = 20 // frames held before the first repeat
	repeatIntervalFrames = 4  // frames between later repeats
)

// Repeater derives per-frame edges from successive States: the frame a
// button goes down, and auto-repeat pulses while it stays down. Menus use
// it to step a cursor while a direction is held.
type Repeater struct {
	held     [NumButtons]uint8
	prev     Mask
	cur      Mask
	started  Mask
	repeated Mask
}

// Update advances one frame with the state m.
func (r *Repeater) Update(m Mask) {
	r.prev = r.cur
	r.cur = m & MaskBits

	for i := range r.held {
		bit := Button(i).bit()
		if r.cur&bit == 0 {
			r.held[i] = 0
			r.started &^= bit
			r.repeated &^= bit
			continue
		}

		r.held[i]++
		limit := uint8(repeatInitialFrames)
		if r.started&bit != 0 {
			limit = repeatIntervalFrames
		}

		if r.held[i] > limit {
			r.repeated |= bit
			r.held[i] = 0
			r.started |= bit
		} else {
			r.repeated &^= bit
		}
	}
}

// Held reports whether b is down this frame.
func (r *Repeater) Held(b Button) bool {
	return r.cur.Has(b)
}

// JustPressed reports whether b went down this frame.
func (r *Repeater) JustPressed(b Button) bool {
	return r.cur.Has(b) && !r.prev.Has(b)
}

// Repeated reports whether b produced an auto-repeat pulse this frame.
func (r *Repeater) Repeated(b Button) bool {
	return r.repeated.Has(b)
}

// JustPressedOrRepeated is true on the first frame of a press and on every
// repeat pulse after it.
func (r *Repeater) JustPressedOrRepeated(b Button) bool {
	return r.JustPressed(b) || r.Repeated(b)
}
