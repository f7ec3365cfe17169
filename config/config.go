// Package config loads keypad settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bdwalton/gbakeypad/keypad"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the on-disk form of keypad.Options.
type Config struct {
	Keyboard  map[string]int `yaml:"keyboard"`
	Threshold float64        `yaml:"gamepad_threshold"`
	EatInput  bool           `yaml:"eat_input"`
}

// Default returns the built in configuration.
func Default() *Config {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic("config: bad default.yaml: " + err.Error())
	}
	return c
}

// Load reads the file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	c, err := parseOver(Default(), data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a complete configuration.
func Parse(data []byte) (*Config, error) {
	return parseOver(&Config{}, data)
}

func parseOver(c *Config, data []byte) (*Config, error) {
	var f Config
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	if c.Keyboard == nil {
		c.Keyboard = make(map[string]int, keypad.NumButtons)
	}
	for name, code := range f.Keyboard {
		b, ok := keypad.ParseButton(name)
		if !ok {
			return nil, fmt.Errorf("keyboard %q: %w", name, ErrUnknownButton)
		}
		c.Keyboard[b.String()] = code
	}
	if f.Threshold != 0 {
		c.Threshold = f.Threshold
	}
	// the flag can only be switched on from a file
	c.EatInput = c.EatInput || f.EatInput

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var (
	ErrUnknownButton = errors.New("unknown button")
	ErrBadKeyCode    = errors.New("bad key code")
	ErrBadThreshold  = errors.New("threshold must be in [0, 1)")
)

// Validate checks button names, key codes and the threshold.
func (c *Config) Validate() error {
	for name, code := range c.Keyboard {
		if _, ok := keypad.ParseButton(name); !ok {
			return fmt.Errorf("keyboard %q: %w", name, ErrUnknownButton)
		}
		if code < 0 {
			return fmt.Errorf("keyboard %s = %d: %w", name, code, ErrBadKeyCode)
		}
	}
	if c.Threshold < 0 || c.Threshold >= 1 {
		return fmt.Errorf("gamepad_threshold %v: %w", c.Threshold, ErrBadThreshold)
	}
	return nil
}

// Options converts c for keypad.New. Buttons missing from the keyboard
// table keep their default key.
func (c *Config) Options() keypad.Options {
	keys := keypad.DefaultKeys
	for name, code := range c.Keyboard {
		if b, ok := keypad.ParseButton(name); ok {
			keys[b] = code
		}
	}
	return keypad.Options{
		Keys:      &keys,
		Threshold: c.Threshold,
		EatInput:  c.EatInput,
	}
}
