// Package command defines the symbolic commands produced by hit-testing raw
// input and the FIFO queue they wait in until the dispatcher consumes them.
package command

import (
	"fmt"

	"github.com/vovakirdan/crawlcore/internal/core"
)

// Type is a symbolic command. Values match the classic engine's numbering so
// journals stay comparable across versions.
type Type int

const (
	None Type = 0

	TurnLeft     Type = 1
	TurnRight    Type = 2
	MoveForward  Type = 3
	MoveRight    Type = 4
	MoveBackward Type = 5
	MoveLeft     Type = 6

	ToggleInventoryChampion0 Type = 7
	ToggleInventoryChampion1 Type = 8
	ToggleInventoryChampion2 Type = 9
	ToggleInventoryChampion3 Type = 10
	CloseInventory           Type = 11

	ClickInChampion0StatusBox Type = 12
	ClickInChampion1StatusBox Type = 13
	ClickInChampion2StatusBox Type = 14
	ClickInChampion3StatusBox Type = 15

	SetLeaderChampion0 Type = 16
	SetLeaderChampion1 Type = 17
	SetLeaderChampion2 Type = 18
	SetLeaderChampion3 Type = 19

	ClickOnSlotBoxChampion0StatusBoxReadyHand  Type = 20
	ClickOnSlotBoxChampion0StatusBoxActionHand Type = 21
	ClickOnSlotBoxChampion1StatusBoxReadyHand  Type = 22
	ClickOnSlotBoxChampion1StatusBoxActionHand Type = 23
	ClickOnSlotBoxChampion2StatusBoxReadyHand  Type = 24
	ClickOnSlotBoxChampion2StatusBoxActionHand Type = 25
	ClickOnSlotBoxChampion3StatusBoxReadyHand  Type = 26
	ClickOnSlotBoxChampion3StatusBoxActionHand Type = 27

	ClickOnSlotBoxInventoryReadyHand    Type = 28
	ClickOnSlotBoxInventoryActionHand   Type = 29
	ClickOnSlotBoxInventoryHead         Type = 30
	ClickOnSlotBoxInventoryTorso        Type = 31
	ClickOnSlotBoxInventoryLegs         Type = 32
	ClickOnSlotBoxInventoryFeet         Type = 33
	ClickOnSlotBoxInventoryPouch2       Type = 34
	ClickOnSlotBoxInventoryNeck         Type = 38
	ClickOnSlotBoxInventoryPouch1       Type = 39
	ClickOnSlotBoxInventoryBackpackLast Type = 57
	ClickOnSlotBoxChest1                Type = 58
	ClickOnSlotBoxChest8                Type = 65

	ClickOnMouth Type = 70
	ClickOnEye   Type = 71

	ClickInDungeonView               Type = 80
	ClickInPanel                     Type = 81
	ToggleInventoryLeader            Type = 83
	ClickInSpellArea                 Type = 100
	ClickInSpellAreaSymbol1          Type = 101
	ClickInSpellAreaSymbol6          Type = 106
	ClickInSpellAreaRecantSymbol     Type = 107
	ClickInSpellAreaCastSpell        Type = 108
	ClickInActionArea                Type = 111
	ClickInActionAreaPass            Type = 112
	ClickInActionAreaAction0         Type = 113
	ClickInActionAreaAction1         Type = 114
	ClickInActionAreaAction2         Type = 115
	ClickInActionAreaChampion0Action Type = 116
	ClickInActionAreaChampion1Action Type = 117
	ClickInActionAreaChampion2Action Type = 118
	ClickInActionAreaChampion3Action Type = 119

	ClickOnChampionIconTopLeft    Type = 125
	ClickOnChampionIconTopRight   Type = 126
	ClickOnChampionIconLowerRight Type = 127
	ClickOnChampionIconLowerLeft  Type = 128

	SaveGame     Type = 140
	Sleep        Type = 145
	WakeUp       Type = 146
	FreezeGame   Type = 147
	UnfreezeGame Type = 148

	ClickInPanelResurrect   Type = 160
	ClickInPanelReincarnate Type = 161
	ClickInPanelCancel      Type = 162

	EntranceEnterDungeon Type = 200
	EntranceResume       Type = 201
	EntranceDrawCredits  Type = 202

	ClickOnDialogChoice1 Type = 210
	ClickOnDialogChoice2 Type = 211
	ClickOnDialogChoice3 Type = 212
	ClickOnDialogChoice4 Type = 213

	RestartGame Type = 215
)

var typeNames = map[Type]string{
	None:                      "none",
	TurnLeft:                  "turn-left",
	TurnRight:                 "turn-right",
	MoveForward:               "move-forward",
	MoveRight:                 "move-right",
	MoveBackward:              "move-backward",
	MoveLeft:                  "move-left",
	ToggleInventoryChampion0:  "toggle-inventory-0",
	ToggleInventoryChampion1:  "toggle-inventory-1",
	ToggleInventoryChampion2:  "toggle-inventory-2",
	ToggleInventoryChampion3:  "toggle-inventory-3",
	CloseInventory:            "close-inventory",
	ClickInChampion0StatusBox: "status-box-0",
	ClickInChampion1StatusBox: "status-box-1",
	ClickInChampion2StatusBox: "status-box-2",
	ClickInChampion3StatusBox: "status-box-3",
	SetLeaderChampion0:        "set-leader-0",
	SetLeaderChampion1:        "set-leader-1",
	SetLeaderChampion2:        "set-leader-2",
	SetLeaderChampion3:        "set-leader-3",
	ClickOnMouth:              "mouth",
	ClickOnEye:                "eye",
	ClickInDungeonView:        "click-dungeon-view",
	ClickInPanel:              "click-panel",
	ToggleInventoryLeader:     "toggle-inventory-leader",
	ClickInSpellArea:          "spell-area",
	ClickInSpellAreaCastSpell: "cast-spell",
	ClickInActionArea:         "action-area",
	ClickInActionAreaPass:     "action-pass",
	SaveGame:                  "save",
	Sleep:                     "sleep",
	WakeUp:                    "wake-up",
	FreezeGame:                "freeze",
	UnfreezeGame:              "unfreeze",
	ClickInPanelResurrect:     "resurrect",
	ClickInPanelReincarnate:   "reincarnate",
	ClickInPanelCancel:        "cancel",
	EntranceEnterDungeon:      "enter-dungeon",
	EntranceResume:            "resume",
	EntranceDrawCredits:       "credits",
	RestartGame:               "restart",
}

// String returns the command's name, or its number for commands without one.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	switch {
	case t >= ClickOnSlotBoxChampion0StatusBoxReadyHand && t <= ClickOnSlotBoxChampion3StatusBoxActionHand:
		return fmt.Sprintf("status-hand-%d", int(t-ClickOnSlotBoxChampion0StatusBoxReadyHand))
	case t >= ClickOnSlotBoxInventoryReadyHand && t <= ClickOnSlotBoxChest8:
		return fmt.Sprintf("slot-%d", int(t-ClickOnSlotBoxInventoryReadyHand))
	case t >= ClickOnDialogChoice1 && t <= ClickOnDialogChoice4:
		return fmt.Sprintf("dialog-choice-%d", int(t-ClickOnDialogChoice1)+1)
	}
	return fmt.Sprintf("cmd(%d)", int(t))
}

// ParseType is the inverse of String for named commands.
func ParseType(s string) (Type, bool) {
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	return None, false
}

// IsMovement reports whether t turns or moves the party.
func (t Type) IsMovement() bool {
	return t >= TurnLeft && t <= MoveLeft
}

// Command is one queued user intent. Pos is the click position, or
// core.NoPoint for keyboard commands.
type Command struct {
	Pos  core.Point `json:"pos"`
	Type Type       `json:"type"`
}

func (c Command) String() string {
	if c.Pos == core.NoPoint {
		return c.Type.String()
	}
	return fmt.Sprintf("%s@(%d,%d)", c.Type, c.Pos.X, c.Pos.Y)
}
