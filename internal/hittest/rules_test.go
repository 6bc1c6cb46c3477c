package hittest

import (
	"slices"
	"testing"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"pgregory.net/rapid"
)

func TestResolveMouse(t *testing.T) {
	tests := []struct {
		name   string
		table  MouseTable
		p      core.Point
		button core.MouseButton
		want   command.Type
	}{
		{"turn left button", SecondaryMouseMovement, core.Pt(234, 125), core.ButtonLeft, command.TurnLeft},
		{"turn left far corner", SecondaryMouseMovement, core.Pt(261, 145), core.ButtonLeft, command.TurnLeft},
		{"gap between buttons", SecondaryMouseMovement, core.Pt(262, 130), core.ButtonLeft, command.None},
		{"dungeon view", SecondaryMouseMovement, core.Pt(50, 50), core.ButtonLeft, command.ClickInDungeonView},
		{"right click view", SecondaryMouseMovement, core.Pt(50, 50), core.ButtonRight, command.ToggleInventoryLeader},
		{"wrong button", PrimaryMouseEntrance, core.Pt(250, 50), core.ButtonRight, command.None},
		{"entrance", PrimaryMouseEntrance, core.Pt(250, 50), core.ButtonLeft, command.EntranceEnterDungeon},
		{"status box shadows inventory", PrimaryMouseInterface, core.Pt(10, 10), core.ButtonLeft, command.ClickInChampion0StatusBox},
		{"inventory toggle left", PrimaryMouseInterface, core.Pt(50, 10), core.ButtonLeft, command.ToggleInventoryChampion0},
		{"inventory toggle right", PrimaryMouseInterface, core.Pt(10, 10), core.ButtonRight, command.ToggleInventoryChampion0},
		{"freeze corner", PrimaryMouseInterface, core.Pt(1, 199), core.ButtonLeft, command.FreezeGame},
		{"close inventory shadows slots", SecondaryMouseChampionInventory, core.Pt(10, 90), core.ButtonRight, command.CloseInventory},
		{"ready hand slot", SecondaryMouseChampionInventory, core.Pt(10, 90), core.ButtonLeft, command.ClickOnSlotBoxInventoryReadyHand},
		{"panel", SecondaryMouseChampionInventory, core.Pt(150, 100), core.ButtonLeft, command.ClickInPanel},
		{"chest slot 8", MousePanelChest, core.Pt(211, 153), core.ButtonLeft, command.ClickOnSlotBoxChest8},
		{"cancel", MousePanelResurrectReincarnateCancel, core.Pt(150, 145), core.ButtonLeft, command.ClickInPanelCancel},
		{"empty table", nil, core.Pt(0, 0), core.ButtonLeft, command.None},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveMouse(tc.table, tc.p, tc.button); got != tc.want {
				t.Errorf("ResolveMouse(%v, %v) = %v, expected %v", tc.p, tc.button, got, tc.want)
			}
		})
	}
}

func TestResolveKey(t *testing.T) {
	tests := []struct {
		name string
		key  core.Keycode
		mods core.Modifier
		want command.Type
	}{
		{"plain w", core.KeyRune('w'), core.ModNone, command.MoveForward},
		{"shift w", core.KeyRune('w'), core.ModShift, command.MoveForward},
		{"ctrl w matches mask-0 rule", core.KeyRune('w'), core.ModCtrl, command.MoveForward},
		{"keypad", core.KeyKP4, core.ModNone, command.TurnLeft},
		{"unbound", core.KeyRune('z'), core.ModNone, command.None},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveKey(SecondaryKeysMovement, tc.key, tc.mods); got != tc.want {
				t.Errorf("ResolveKey(%v, %v) = %v, expected %v", tc.key, tc.mods, got, tc.want)
			}
		})
	}
}

func TestSetPrimaryFirst(t *testing.T) {
	set, err := SetFor(ContextInterface, 0)
	if err != nil {
		t.Fatalf("SetFor() error: %v", err)
	}

	// Ctrl-S hits the primary save rule and, through the empty mask, the
	// secondary move-back rule.
	got := set.Keys(core.KeyRune('s'), core.ModCtrl)
	if want := []command.Type{command.SaveGame, command.MoveBackward}; !slices.Equal(got, want) {
		t.Errorf("Keys(ctrl+s) = %v, expected %v", got, want)
	}
	got = set.Keys(core.KeyRune('s'), core.ModNone)
	if want := []command.Type{command.MoveBackward}; !slices.Equal(got, want) {
		t.Errorf("Keys(s) = %v, expected %v", got, want)
	}
	if got := set.Mouse(core.Pt(240, 130), core.ButtonLeft); got != command.TurnLeft {
		t.Errorf("Mouse(240,130) = %v, expected turn-left", got)
	}
}

func TestSetFor(t *testing.T) {
	if _, err := SetFor(ContextViewportDialog, 0); err == nil {
		t.Error("dialog with 0 choices should fail")
	}
	set, err := SetFor(ContextScreenDialog, 4)
	if err != nil {
		t.Fatalf("SetFor() error: %v", err)
	}
	if got := set.Mouse(core.Pt(200, 140), core.ButtonLeft); got != command.ClickOnDialogChoice4 {
		t.Errorf("Mouse() = %v, expected dialog-choice-4", got)
	}
	frozen, _ := SetFor(ContextFrozenGame, 0)
	if got := frozen.Keys(core.KeyRune('w'), core.ModNone); len(got) != 0 {
		t.Errorf("frozen game should ignore movement keys, got %v", got)
	}
	inv, _ := SetFor(ContextChampionInventory, 0)
	if got := inv.WithKeys(KeyTable{{command.TurnLeft, core.KeyRune('w'), core.ModNone}}).Keys(core.KeyRune('w'), core.ModNone); len(got) != 0 {
		t.Errorf("inventory should not gain movement keys, got %v", got)
	}
}

func TestSlotIndex(t *testing.T) {
	if n, ok := SlotIndex(command.ClickOnSlotBoxInventoryBackpackLast); !ok || n != 29 {
		t.Errorf("SlotIndex(last) = %d, %v", n, ok)
	}
	if _, ok := SlotIndex(command.ClickOnSlotBoxChest1); ok {
		t.Error("chest slots are not inventory slots")
	}
}

func TestViewBoxes(t *testing.T) {
	vb := DefaultViewBoxes()
	if !vb.Hit(ViewCellFrontLeft, core.Pt(50, 150)) {
		t.Error("front-left view box should match its pile box")
	}
	vb.Clear(ViewCellFrontLeft)
	if vb.Hit(ViewCellFrontLeft, core.Pt(50, 150)) {
		t.Error("cleared box should match nothing")
	}
}

// The first rule that matches always wins, whatever follows it.
func TestFirstMatchWinsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(t, "rules")
		table := make(MouseTable, n)
		for i := range table {
			x1 := rapid.IntRange(0, 319).Draw(t, "x1")
			y1 := rapid.IntRange(0, 199).Draw(t, "y1")
			table[i] = MouseRule{
				Command: command.Type(i + 1),
				Box:     core.NewBox(x1, rapid.IntRange(x1, 319).Draw(t, "x2"), y1, rapid.IntRange(y1, 199).Draw(t, "y2")),
				Button:  core.MouseButton(rapid.IntRange(1, 2).Draw(t, "button")),
			}
		}
		p := core.Pt(rapid.IntRange(0, 319).Draw(t, "px"), rapid.IntRange(0, 199).Draw(t, "py"))
		b := core.MouseButton(rapid.IntRange(1, 2).Draw(t, "b"))

		want := command.None
		for _, r := range table {
			if r.Button == b && p.X >= r.Box.X1 && p.X <= r.Box.X2 && p.Y >= r.Box.Y1 && p.Y <= r.Box.Y2 {
				want = r.Command
				break
			}
		}
		if got := ResolveMouse(table, p, b); got != want {
			t.Fatalf("ResolveMouse(%v, %v) = %v, expected %v", p, b, got, want)
		}
	})
}
