package hittest

import (
	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
)

// Keyboard tables.
var (
	PrimaryKeysInterface = KeyTable{
		{command.ToggleInventoryChampion0, core.KeyF1, core.ModNone},
		{command.ToggleInventoryChampion1, core.KeyF2, core.ModNone},
		{command.ToggleInventoryChampion2, core.KeyF3, core.ModNone},
		{command.ToggleInventoryChampion3, core.KeyF4, core.ModNone},
		{command.SaveGame, core.KeyRune('s'), core.ModCtrl},
		{command.FreezeGame, core.KeyEscape, core.ModNone},
	}

	SecondaryKeysMovement = KeyTable{
		{command.TurnLeft, core.KeyKP4, core.ModNone},
		{command.MoveForward, core.KeyKP5, core.ModNone},
		{command.TurnRight, core.KeyKP6, core.ModNone},
		{command.MoveLeft, core.KeyKP1, core.ModNone},
		{command.MoveBackward, core.KeyKP2, core.ModNone},
		{command.MoveRight, core.KeyKP3, core.ModNone},
		{command.MoveForward, core.KeyRune('w'), core.ModNone},
		{command.MoveForward, core.KeyRune('w'), core.ModShift},
		{command.MoveLeft, core.KeyRune('a'), core.ModNone},
		{command.MoveLeft, core.KeyRune('a'), core.ModShift},
		{command.MoveRight, core.KeyRune('d'), core.ModNone},
		{command.MoveRight, core.KeyRune('d'), core.ModShift},
		{command.MoveBackward, core.KeyRune('s'), core.ModNone},
		{command.MoveBackward, core.KeyRune('s'), core.ModShift},
		{command.TurnLeft, core.KeyRune('q'), core.ModNone},
		{command.TurnLeft, core.KeyRune('q'), core.ModShift},
		{command.TurnRight, core.KeyRune('e'), core.ModNone},
		{command.TurnRight, core.KeyRune('e'), core.ModShift},
	}

	PrimaryKeysPartySleeping = KeyTable{
		{command.WakeUp, core.KeyReturn, core.ModNone},
		{command.FreezeGame, core.KeyEscape, core.ModNone},
	}

	PrimaryKeysFrozenGame = KeyTable{
		{command.UnfreezeGame, core.KeyEscape, core.ModNone},
	}
)

// Mouse tables for the main screens.
var (
	PrimaryMouseEntrance = MouseTable{
		left(command.EntranceEnterDungeon, 244, 298, 45, 58),
		left(command.EntranceResume, 244, 298, 76, 93),
		left(command.EntranceDrawCredits, 248, 293, 187, 199),
	}

	PrimaryMouseRestartGame = MouseTable{
		left(command.RestartGame, 103, 217, 145, 159),
	}

	PrimaryMouseInterface = MouseTable{
		left(command.ClickInChampion0StatusBox, 0, 42, 0, 28),
		left(command.ClickInChampion1StatusBox, 69, 111, 0, 28),
		left(command.ClickInChampion2StatusBox, 138, 180, 0, 28),
		left(command.ClickInChampion3StatusBox, 207, 249, 0, 28),
		left(command.ClickOnChampionIconTopLeft, 274, 299, 0, 13),
		left(command.ClickOnChampionIconTopRight, 301, 319, 0, 13),
		left(command.ClickOnChampionIconLowerRight, 301, 319, 15, 28),
		left(command.ClickOnChampionIconLowerLeft, 274, 299, 15, 28),
		left(command.ToggleInventoryChampion0, 43, 66, 0, 28),
		left(command.ToggleInventoryChampion1, 112, 135, 0, 28),
		left(command.ToggleInventoryChampion2, 181, 204, 0, 28),
		left(command.ToggleInventoryChampion3, 250, 273, 0, 28),
		right(command.ToggleInventoryChampion0, 0, 66, 0, 28),
		right(command.ToggleInventoryChampion1, 69, 135, 0, 28),
		right(command.ToggleInventoryChampion2, 138, 204, 0, 28),
		right(command.ToggleInventoryChampion3, 207, 273, 0, 28),
		left(command.ClickInSpellArea, 233, 319, 42, 73),
		left(command.ClickInActionArea, 233, 319, 77, 121),
		left(command.FreezeGame, 0, 1, 198, 199),
	}

	SecondaryMouseMovement = MouseTable{
		left(command.TurnLeft, 234, 261, 125, 145),
		left(command.MoveForward, 263, 289, 125, 145),
		left(command.TurnRight, 291, 318, 125, 145),
		left(command.MoveLeft, 234, 261, 147, 167),
		left(command.MoveBackward, 263, 289, 147, 167),
		left(command.MoveRight, 291, 318, 147, 167),
		left(command.ClickInDungeonView, 0, 223, 33, 168),
		right(command.ToggleInventoryLeader, 0, 319, 33, 199),
	}

	SecondaryMouseChampionInventory = MouseTable{
		right(command.CloseInventory, 0, 319, 0, 199),
		left(command.SaveGame, 174, 182, 36, 44),
		left(command.Sleep, 188, 204, 36, 44),
		left(command.CloseInventory, 210, 218, 36, 44),
		left(slot(0), 6, 21, 86, 101),
		left(slot(1), 62, 77, 86, 101),
		left(slot(2), 34, 49, 59, 74),
		left(slot(3), 34, 49, 79, 94),
		left(slot(4), 34, 49, 99, 114),
		left(slot(5), 34, 49, 119, 134),
		left(slot(6), 6, 21, 123, 138),
		left(command.ClickOnMouth, 56, 71, 46, 61),
		left(command.ClickOnEye, 12, 27, 46, 61),
		left(slot(7), 79, 94, 106, 121),
		left(slot(8), 62, 77, 123, 138),
		left(slot(9), 79, 94, 123, 138),
		left(slot(10), 6, 21, 66, 81),
		left(slot(11), 6, 21, 106, 121),
		left(slot(12), 62, 77, 106, 121),
		left(slot(13), 66, 81, 66, 81),
		left(slot(14), 83, 98, 49, 64),
		left(slot(15), 100, 115, 49, 64),
		left(slot(16), 117, 132, 49, 64),
		left(slot(17), 134, 149, 49, 64),
		left(slot(18), 151, 166, 49, 64),
		left(slot(19), 168, 183, 49, 64),
		left(slot(20), 185, 200, 49, 64),
		left(slot(21), 202, 217, 49, 64),
		left(slot(22), 83, 98, 66, 81),
		left(slot(23), 100, 115, 66, 81),
		left(slot(24), 117, 132, 66, 81),
		left(slot(25), 134, 149, 66, 81),
		left(slot(26), 151, 166, 66, 81),
		left(slot(27), 168, 183, 66, 81),
		left(slot(28), 185, 200, 66, 81),
		left(slot(29), 202, 217, 66, 81),
		left(command.ClickInPanel, 96, 223, 83, 167),
	}

	PrimaryMousePartySleeping = MouseTable{
		left(command.WakeUp, 0, 223, 33, 168),
		right(command.WakeUp, 0, 223, 33, 168),
	}

	PrimaryMouseFrozenGame = MouseTable{
		left(command.UnfreezeGame, 0, 319, 0, 199),
		right(command.UnfreezeGame, 0, 319, 0, 199),
	}
)

// Auxiliary tables resolved by the dispatcher after a coarse command.
var (
	MouseActionAreaNames = MouseTable{
		left(command.ClickInActionAreaPass, 285, 318, 77, 83),
		left(command.ClickInActionAreaAction0, 234, 318, 86, 96),
		left(command.ClickInActionAreaAction1, 234, 318, 98, 108),
		left(command.ClickInActionAreaAction2, 234, 318, 110, 120),
	}

	MouseActionAreaIcons = MouseTable{
		left(command.ClickInActionAreaChampion0Action, 233, 252, 86, 120),
		left(command.ClickInActionAreaChampion1Action, 255, 274, 86, 120),
		left(command.ClickInActionAreaChampion2Action, 277, 296, 86, 120),
		left(command.ClickInActionAreaChampion3Action, 299, 318, 86, 120),
	}

	MouseSpellArea = MouseTable{
		left(command.ClickInSpellAreaSymbol1, 235, 247, 51, 61),
		left(command.ClickInSpellAreaSymbol1+1, 249, 261, 51, 61),
		left(command.ClickInSpellAreaSymbol1+2, 263, 275, 51, 61),
		left(command.ClickInSpellAreaSymbol1+3, 277, 289, 51, 61),
		left(command.ClickInSpellAreaSymbol1+4, 291, 303, 51, 61),
		left(command.ClickInSpellAreaSymbol6, 305, 317, 51, 61),
		left(command.ClickInSpellAreaCastSpell, 234, 303, 63, 73),
		left(command.ClickInSpellAreaRecantSymbol, 305, 318, 63, 73),
	}

	MouseChampionNamesHands = MouseTable{
		left(command.SetLeaderChampion0, 0, 42, 0, 6),
		left(command.SetLeaderChampion1, 69, 111, 0, 6),
		left(command.SetLeaderChampion2, 138, 180, 0, 6),
		left(command.SetLeaderChampion3, 207, 249, 0, 6),
		left(command.ClickOnSlotBoxChampion0StatusBoxReadyHand, 4, 19, 10, 25),
		left(command.ClickOnSlotBoxChampion0StatusBoxActionHand, 24, 39, 10, 25),
		left(command.ClickOnSlotBoxChampion1StatusBoxReadyHand, 73, 88, 10, 25),
		left(command.ClickOnSlotBoxChampion1StatusBoxActionHand, 93, 108, 10, 25),
		left(command.ClickOnSlotBoxChampion2StatusBoxReadyHand, 142, 157, 10, 25),
		left(command.ClickOnSlotBoxChampion2StatusBoxActionHand, 162, 177, 10, 25),
		left(command.ClickOnSlotBoxChampion3StatusBoxReadyHand, 211, 226, 10, 25),
		left(command.ClickOnSlotBoxChampion3StatusBoxActionHand, 231, 246, 10, 25),
	}

	MousePanelChest = MouseTable{
		left(command.ClickOnSlotBoxChest1, 117, 132, 92, 107),
		left(command.ClickOnSlotBoxChest1+1, 106, 121, 109, 124),
		left(command.ClickOnSlotBoxChest1+2, 111, 126, 126, 141),
		left(command.ClickOnSlotBoxChest1+3, 128, 143, 131, 146),
		left(command.ClickOnSlotBoxChest1+4, 145, 160, 134, 149),
		left(command.ClickOnSlotBoxChest1+5, 162, 177, 136, 151),
		left(command.ClickOnSlotBoxChest1+6, 179, 194, 137, 152),
		left(command.ClickOnSlotBoxChest8, 196, 211, 138, 153),
	}

	MousePanelResurrectReincarnateCancel = MouseTable{
		left(command.ClickInPanelResurrect, 108, 158, 90, 138),
		left(command.ClickInPanelReincarnate, 161, 211, 90, 138),
		left(command.ClickInPanelCancel, 108, 211, 141, 153),
	}
)

// Dialog choice tables, indexed by choice count minus one.
var (
	PrimaryMouseViewportDialog = [4]MouseTable{
		{
			left(command.ClickOnDialogChoice1, 16, 207, 138, 152),
		},
		{
			left(command.ClickOnDialogChoice1, 16, 207, 101, 115),
			left(command.ClickOnDialogChoice2, 16, 207, 138, 152),
		},
		{
			left(command.ClickOnDialogChoice1, 16, 207, 101, 115),
			left(command.ClickOnDialogChoice2, 16, 101, 138, 152),
			left(command.ClickOnDialogChoice3, 123, 207, 138, 152),
		},
		{
			left(command.ClickOnDialogChoice1, 16, 101, 101, 115),
			left(command.ClickOnDialogChoice2, 123, 207, 101, 115),
			left(command.ClickOnDialogChoice3, 16, 101, 138, 152),
			left(command.ClickOnDialogChoice4, 123, 207, 138, 152),
		},
	}

	PrimaryMouseScreenDialog = [4]MouseTable{
		{
			left(command.ClickOnDialogChoice1, 63, 254, 138, 152),
		},
		{
			left(command.ClickOnDialogChoice1, 63, 254, 101, 115),
			left(command.ClickOnDialogChoice2, 63, 254, 138, 152),
		},
		{
			left(command.ClickOnDialogChoice1, 63, 254, 101, 115),
			left(command.ClickOnDialogChoice2, 63, 148, 138, 152),
			left(command.ClickOnDialogChoice3, 170, 254, 138, 152),
		},
		{
			left(command.ClickOnDialogChoice1, 63, 148, 101, 115),
			left(command.ClickOnDialogChoice2, 170, 254, 101, 115),
			left(command.ClickOnDialogChoice3, 63, 148, 138, 152),
			left(command.ClickOnDialogChoice4, 170, 254, 138, 152),
		},
	}
)

// slot returns the command for inventory slot box n (0..29).
func slot(n int) command.Type {
	return command.ClickOnSlotBoxInventoryReadyHand + command.Type(n)
}

// SlotIndex returns the inventory slot addressed by a slot-box command.
func SlotIndex(cmd command.Type) (int, bool) {
	if cmd < command.ClickOnSlotBoxInventoryReadyHand || cmd > command.ClickOnSlotBoxInventoryBackpackLast {
		return 0, false
	}
	return int(cmd - command.ClickOnSlotBoxInventoryReadyHand), true
}

// Object pile boxes in screen coordinates, by view cell: front left, front
// right, back right, back left.
var BoxObjectPiles = [4]core.Box{
	core.NewBox(24, 111, 148, 168),
	core.NewBox(112, 199, 148, 168),
	core.NewBox(112, 183, 122, 147),
	core.NewBox(40, 111, 122, 147),
}
