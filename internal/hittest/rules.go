// Package hittest maps screen positions and key presses to commands through
// ordered rule tables. Lookup is first-match-wins in declaration order.
package hittest

import (
	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
)

// MouseRule maps a click of Button inside Box to Command.
type MouseRule struct {
	Command command.Type
	Box     core.Box
	Button  core.MouseButton
}

// KeyRule maps a key press with at least Mods held to Command.
type KeyRule struct {
	Command command.Type
	Key     core.Keycode
	Mods    core.Modifier
}

// MouseTable is an ordered list of mouse rules.
type MouseTable []MouseRule

// KeyTable is an ordered list of keyboard rules.
type KeyTable []KeyRule

func mouse(cmd command.Type, x1, x2, y1, y2 int, b core.MouseButton) MouseRule {
	return MouseRule{Command: cmd, Box: core.NewBox(x1, x2, y1, y2), Button: b}
}

func left(cmd command.Type, x1, x2, y1, y2 int) MouseRule {
	return mouse(cmd, x1, x2, y1, y2, core.ButtonLeft)
}

func right(cmd command.Type, x1, x2, y1, y2 int) MouseRule {
	return mouse(cmd, x1, x2, y1, y2, core.ButtonRight)
}

// ResolveMouse returns the command of the first rule whose box contains p
// and whose button equals b, or command.None.
func ResolveMouse(t MouseTable, p core.Point, b core.MouseButton) command.Type {
	for _, r := range t {
		if r.Button == b && r.Box.Contains(p) {
			return r.Command
		}
	}
	return command.None
}

// ResolveKey returns the command of the first rule for key whose modifier
// mask is fully held, or command.None. A rule with an empty mask matches
// whatever modifiers are held.
func ResolveKey(t KeyTable, key core.Keycode, mods core.Modifier) command.Type {
	for _, r := range t {
		if r.Key == key && mods&r.Mods == r.Mods {
			return r.Command
		}
	}
	return command.None
}

// Set is the pair of tables active in one UI context. A click resolves
// against the secondary mouse table only when the primary yields nothing;
// a key press is looked up in both keyboard tables. Nil tables match nothing.
type Set struct {
	PrimaryMouse   MouseTable
	SecondaryMouse MouseTable
	PrimaryKeys    KeyTable
	SecondaryKeys  KeyTable
}

// Mouse resolves a click against primary then secondary mouse tables.
func (s Set) Mouse(p core.Point, b core.MouseButton) command.Type {
	if cmd := ResolveMouse(s.PrimaryMouse, p, b); cmd != command.None {
		return cmd
	}
	return ResolveMouse(s.SecondaryMouse, p, b)
}

// Keys resolves a key press against each keyboard table and returns the
// matches in table order, primary first. A press can match both tables.
func (s Set) Keys(key core.Keycode, mods core.Modifier) []command.Type {
	var out []command.Type
	for _, t := range [...]KeyTable{s.PrimaryKeys, s.SecondaryKeys} {
		if cmd := ResolveKey(t, key, mods); cmd != command.None {
			out = append(out, cmd)
		}
	}
	return out
}
