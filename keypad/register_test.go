package keypad

import (
	"testing"
)

func TestKeyInput(t *testing.T) {
	k := New(Options{})
	r := NewRegister(k)

	if got := r.Read16(KEYINPUT); got != 0x3ff {
		t.Errorf("idle KEYINPUT = %04x, wanted 03ff", got)
	}

	k.HandleKey(83, true) // A
	k.HandleKey(40, true) // DOWN
	if got, want := r.Read16(KEYINPUT), uint16(0x37e); got != want {
		t.Errorf("KEYINPUT = %010b, wanted %010b", got, want)
	}

	r.Write16(KEYINPUT, 0)
	if got := r.Read16(KEYINPUT); got == 0 {
		t.Errorf("KEYINPUT was writable")
	}
	if got := r.Read16(0x04000134); got != 0 {
		t.Errorf("unknown register = %04x, wanted 0", got)
	}
}

func TestKeyCntIRQ(t *testing.T) {
	cases := []struct {
		cnt  uint16
		held []int
		want bool
	}{
		{0x0003, []int{83, 65}, false}, // IRQ disabled
		{0x4003, nil, false},           // nothing held
		{0x4003, []int{83}, true},      // OR, A held
		{0xc003, []int{83}, false},     // AND, only A held
		{0xc003, []int{83, 65}, true},  // AND, A and B held
		{0xc000, []int{83, 65}, false}, // no buttons selected
		{0x400c, []int{83, 65}, false}, // OR, selection not held
		{0x700c, []int{13}, true},      // unused bits ignored
	}

	for i, tc := range cases {
		k := New(Options{})
		r := NewRegister(k)
		r.Write16(KEYCNT, tc.cnt)
		for _, code := range tc.held {
			k.HandleKey(code, true)
		}
		if got := r.IRQ(); got != tc.want {
			t.Errorf("%d: IRQ() = %t, wanted %t", i, got, tc.want)
		}
	}
}

func TestKeyCntReadBack(t *testing.T) {
	r := NewRegister(New(Options{}))
	r.Write16(KEYCNT, 0xffff)
	if got, want := r.Read16(KEYCNT), uint16(0xc3ff); got != want {
		t.Errorf("KEYCNT = %04x, wanted %04x", got, want)
	}
}
