package keypad

// Keypad I/O register addresses.
const (
	KEYINPUT uint32 = 0x04000130
	KEYCNT   uint32 = 0x04000132
)

// KEYCNT bits above the button selection.
const (
	keycntIRQEnable uint16 = 1 << 14
	keycntIRQAnd    uint16 = 1 << 15
)

// Register is the CPU's view of the keypad: KEYINPUT reports the held
// buttons active-low and KEYCNT selects which buttons raise the keypad
// interrupt.
type Register struct {
	pad *Keypad
	cnt uint16
}

// NewRegister returns the registers backed by k.
func NewRegister(k *Keypad) *Register {
	return &Register{pad: k}
}

// Read16 returns the register at addr. Unknown addresses read 0.
func (r *Register) Read16(addr uint32) uint16 {
	switch addr {
	case KEYINPUT:
		return uint16(^r.pad.State() & MaskBits)
	case KEYCNT:
		return r.cnt
	}
	return 0
}

// Write16 stores val into KEYCNT. KEYINPUT is read only.
func (r *Register) Write16(addr uint32, val uint16) {
	if addr == KEYCNT {
		r.cnt = val & (uint16(MaskBits) | keycntIRQEnable | keycntIRQAnd)
	}
}

// IRQ reports whether the keypad interrupt condition in KEYCNT is met by
// the current state.
func (r *Register) IRQ() bool {
	if r.cnt&keycntIRQEnable == 0 {
		return false
	}

	sel := Mask(r.cnt) & MaskBits
	if sel == 0 {
		return false
	}

	held := r.pad.State() & sel
	if r.cnt&keycntIRQAnd != 0 {
		return held == sel
	}
	return held != 0
}
