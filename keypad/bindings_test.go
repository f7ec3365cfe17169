package keypad

import (
	"testing"
)

func TestBindingsLookup(t *testing.T) {
	bs := NewBindings(DefaultKeys)

	for b, code := range DefaultKeys {
		if got, ok := bs.Button(code); !ok || got != Button(b) {
			t.Errorf("Button(%d) = %s, %t, wanted %s", code, got, ok, Button(b))
		}
		if got, ok := bs.Key(Button(b)); !ok || got != code {
			t.Errorf("Key(%s) = %d, %t, wanted %d", Button(b), got, ok, code)
		}
	}

	if _, ok := bs.Button(0); ok {
		t.Errorf("code 0 unexpectedly bound")
	}
	if _, ok := bs.Key(Button(12)); ok {
		t.Errorf("Key(12) unexpectedly valid")
	}
}

func TestBindingsAlias(t *testing.T) {
	bs := NewBindings(DefaultKeys)

	// B takes A's key; last write wins
	bs.Bind(B, 83)
	if got, _ := bs.Button(83); got != B {
		t.Errorf("83 -> %s, wanted B", got)
	}
	if _, ok := bs.Button(65); ok {
		t.Errorf("B's old code 65 still bound")
	}

	// moving B away hands 83 back to A
	bs.Bind(B, 90)
	if got, _ := bs.Button(83); got != A {
		t.Errorf("83 -> %s, wanted A", got)
	}
	if got, _ := bs.Button(90); got != B {
		t.Errorf("90 -> %s, wanted B", got)
	}
}

func TestBindingsRebindSame(t *testing.T) {
	bs := NewBindings(DefaultKeys)
	bs.Bind(START, 13)
	if got, ok := bs.Button(13); !ok || got != START {
		t.Errorf("13 -> %s, %t, wanted START", got, ok)
	}
	bs.Bind(Button(-3), 13)
	if got, _ := bs.Button(13); got != START {
		t.Errorf("invalid bind changed 13 to %s", got)
	}
}

func TestParseButton(t *testing.T) {
	cases := []struct {
		name   string
		want   Button
		wantOK bool
	}{
		{"A", A, true},
		{"select", SELECT, true},
		{" Start ", START, true},
		{"L", L, true},
		{"TURBO", 0, false},
		{"", 0, false},
	}

	for i, tc := range cases {
		got, ok := ParseButton(tc.name)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("%d: ParseButton(%q) = %s, %t, wanted %s, %t", i, tc.name, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMaskString(t *testing.T) {
	m := Mask(1<<A | 1<<START | 1<<L)
	if got, want := m.String(), "1000001001 [A START L]"; got != want {
		t.Errorf("Got %q, wanted %q", got, want)
	}
	if got, want := Button(11).String(), "Button(11)"; got != want {
		t.Errorf("Got %q, wanted %q", got, want)
	}
}
