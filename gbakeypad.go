package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/bdwalton/gbakeypad/config"
	"github.com/bdwalton/gbakeypad/ebitenhost"
	"github.com/bdwalton/gbakeypad/keypad"
)

const (
	screenWidth  = 240
	screenHeight = 160
)

var (
	configFile = flag.String("config", "", "Path to a YAML keypad config. Defaults are built in.")
	eatInput   = flag.Bool("eat_input", false, "Swallow every key event, bound or not.")
	scale      = flag.Int("scale", 3, "Window scale factor.")
)

type viewer struct {
	pad    *keypad.Keypad
	reg    *keypad.Register
	host   *ebitenhost.Host
	rep    keypad.Repeater
	cursor keypad.Button
}

func newViewer(k *keypad.Keypad) *viewer {
	v := &viewer{
		pad:  k,
		reg:  keypad.NewRegister(k),
		host: ebitenhost.New(k),
	}
	v.host.Hotkeys[ebiten.KeyTab] = func() { v.host.BeginRemap(v.cursor) }
	// raise the keypad interrupt when START and SELECT are both held
	v.reg.Write16(keypad.KEYCNT, 0xc000|1<<keypad.START|1<<keypad.SELECT)
	return v
}

func (v *viewer) Update() error {
	v.host.Update()
	v.rep.Update(v.pad.State())

	switch {
	case v.rep.JustPressedOrRepeated(keypad.DOWN):
		v.cursor = (v.cursor + 1) % keypad.NumButtons
	case v.rep.JustPressedOrRepeated(keypad.UP):
		v.cursor = (v.cursor + keypad.NumButtons - 1) % keypad.NumButtons
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "state   %s\n", v.pad.State())
	fmt.Fprintf(&sb, "KEYINPUT %04x  irq %t\n\n", v.reg.Read16(keypad.KEYINPUT), v.reg.IRQ())

	pending, remapping := v.pad.Remapping()
	for _, b := range keypad.Buttons() {
		mark := " "
		if b == v.cursor {
			mark = ">"
		}
		key := "?"
		if code, ok := v.pad.Bindings().Key(b); ok {
			key = ebitenhost.KeyName(code)
		}
		if remapping && b == pending {
			key = "..."
		}
		fmt.Fprintf(&sb, "%s F%-2d %-6s %s\n", mark, int(b)+1, b, key)
	}
	fmt.Fprintf(&sb, "\npads %d  eaten %d", len(v.pad.Gamepads()), v.host.Consumed)

	ebitenutil.DebugPrint(screen, sb.String())
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Couldn't load config: %v", err)
	}
	if *eatInput {
		cfg.EatInput = true
	}

	k := keypad.New(cfg.Options())

	s := *scale
	ebiten.SetWindowSize(screenWidth*s, screenHeight*s)
	ebiten.SetWindowTitle("gbakeypad")

	if err := ebiten.RunGame(newViewer(k)); err != nil {
		log.Fatalf("Keypad viewer stopped: %v", err)
	}
}
