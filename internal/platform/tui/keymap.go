package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crawlcore/internal/core"
)

// PlayKeyMap holds the keys the terminal keeps for itself. Every other key
// goes to the engine.
type PlayKeyMap struct {
	Quit key.Binding
	Back key.Binding
	Help key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Back, k.Quit}}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "back to menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "toggle help"),
		),
	}
}

var namedKeys = map[tea.KeyType]core.Keycode{
	tea.KeyEnter: core.KeyReturn,
	tea.KeyEsc:   core.KeyEscape,
	tea.KeySpace: core.KeySpace,
	tea.KeyF1:    core.KeyF1,
	tea.KeyF2:    core.KeyF2,
	tea.KeyF3:    core.KeyF3,
	tea.KeyF4:    core.KeyF4,
	tea.KeyUp:    core.KeyUp,
	tea.KeyDown:  core.KeyArrowDown,
	tea.KeyLeft:  core.KeyLeft,
	tea.KeyRight: core.KeyRight,
}

var modifiedArrows = map[tea.KeyType]struct {
	key  core.Keycode
	mods core.Modifier
}{
	tea.KeyShiftUp:    {core.KeyUp, core.ModShift},
	tea.KeyShiftDown:  {core.KeyArrowDown, core.ModShift},
	tea.KeyShiftLeft:  {core.KeyLeft, core.ModShift},
	tea.KeyShiftRight: {core.KeyRight, core.ModShift},
	tea.KeyCtrlUp:     {core.KeyUp, core.ModCtrl},
	tea.KeyCtrlDown:   {core.KeyArrowDown, core.ModCtrl},
	tea.KeyCtrlLeft:   {core.KeyLeft, core.ModCtrl},
	tea.KeyCtrlRight:  {core.KeyRight, core.ModCtrl},
}

// TranslateKey turns a terminal key press into a raw key-down event. It
// reports false for keys the engine has no code for, such as pastes.
func TranslateKey(msg tea.KeyMsg) (core.RawEvent, bool) {
	if msg.Paste {
		return core.RawEvent{}, false
	}
	mods := core.ModNone
	if msg.Alt {
		mods |= core.ModAlt
	}

	if k, ok := namedKeys[msg.Type]; ok {
		return core.KeyDown(k, mods), true
	}
	if a, ok := modifiedArrows[msg.Type]; ok {
		return core.KeyDown(a.key, mods|a.mods), true
	}
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return core.RawEvent{}, false
		}
		r := msg.Runes[0]
		if r == ' ' {
			return core.KeyDown(core.KeySpace, mods), true
		}
		if r <= ' ' || r >= 127 {
			return core.RawEvent{}, false
		}
		if unicode.IsUpper(r) {
			mods |= core.ModShift
		}
		return core.KeyDown(core.KeyRune(r), mods), true
	}
	// Tab and enter share codes with ctrl+i and ctrl+m and are handled above
	// or ignored.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ && msg.Type != tea.KeyTab {
		r := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return core.KeyDown(core.KeyRune(r), mods|core.ModCtrl), true
	}
	return core.RawEvent{}, false
}

// TranslateMouse turns a terminal mouse event into raw events on the
// virtual screen: a move for every press or motion, followed by a button
// press for left and right clicks.
func TranslateMouse(msg tea.MouseMsg, cfg core.RuntimeConfig) []core.RawEvent {
	p := cfg.ToVirtual(msg.X, msg.Y)
	if p == core.NoPoint {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		return []core.RawEvent{core.MouseMove(p.X, p.Y)}
	case tea.MouseActionPress:
		var b core.MouseButton
		switch msg.Button {
		case tea.MouseButtonLeft:
			b = core.ButtonLeft
		case tea.MouseButtonRight:
			b = core.ButtonRight
		default:
			return nil
		}
		return []core.RawEvent{core.MouseMove(p.X, p.Y), core.ButtonDown(b, p.X, p.Y)}
	}
	return nil
}
