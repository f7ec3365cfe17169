package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bdwalton/gbakeypad/keypad"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Threshold != keypad.DefaultThreshold {
		t.Errorf("threshold = %v, wanted %v", c.Threshold, keypad.DefaultThreshold)
	}
	if c.EatInput {
		t.Errorf("eat_input on by default")
	}

	opts := c.Options()
	if *opts.Keys != keypad.DefaultKeys {
		t.Errorf("default keys = %v, wanted %v", *opts.Keys, keypad.DefaultKeys)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if len(c.Keyboard) != keypad.NumButtons {
		t.Errorf("got %d bindings, wanted %d", len(c.Keyboard), keypad.NumButtons)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	data := []byte("keyboard:\n  a: 90\n  START: 32\neat_input: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	k := keypad.New(c.Options())
	if !k.EatInput {
		t.Errorf("eat_input not applied")
	}
	if k.Threshold() != keypad.DefaultThreshold {
		t.Errorf("threshold = %v, wanted default", k.Threshold())
	}

	cases := []struct {
		b    keypad.Button
		want int
	}{
		{keypad.A, 90},
		{keypad.START, 32},
		{keypad.B, 65},
		{keypad.L, 81},
	}
	for i, tc := range cases {
		if got, _ := k.Bindings().Key(tc.b); got != tc.want {
			t.Errorf("%d: %s bound to %d, wanted %d", i, tc.b, got, tc.want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		data string
		want error
	}{
		{"keyboard:\n  TURBO: 1\n", ErrUnknownButton},
		{"keyboard:\n  A: -4\n", ErrBadKeyCode},
		{"gamepad_threshold: 1.5\n", ErrBadThreshold},
		{"gamepad_threshold: -0.1\n", ErrBadThreshold},
	}

	dir := t.TempDir()
	for i, tc := range cases {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, tc.want) {
			t.Errorf("%d: Got %v, wanted %v", i, err, tc.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got %v, wanted ErrNotExist", err)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("keyboard: [1, 2")); err == nil {
		t.Errorf("malformed yaml parsed without error")
	}
}
