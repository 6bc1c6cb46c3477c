package engine

import (
	"fmt"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/hittest"
	"github.com/vovakirdan/crawlcore/internal/party"
)

// rebirthStatBumps is how many random statistic points a reincarnated
// champion gains.
const rebirthStatBumps = 12

func (e *Engine) clickInPanel(pos core.Point) {
	p := e.party
	switch e.panel {
	case PanelChest:
		if !p.HasLeader() {
			return
		}
		cmd := hittest.ResolveMouse(hittest.MousePanelChest, pos, core.ButtonLeft)
		if slot, ok := chestSlot(cmd); ok {
			e.ui.ClickChestSlot(slot)
		}
	case PanelResurrect:
		if !p.LeaderEmptyHanded() {
			return
		}
		if cmd := hittest.ResolveMouse(hittest.MousePanelResurrectReincarnateCancel, pos, core.ButtonLeft); cmd != command.None {
			e.clickInResurrectPanel(cmd)
		}
	}
}

// OfferCandidate adds a champion found in a mirror as the last party member
// and opens the resurrect panel. Its items must lie on the mirror square,
// the square ahead of the party; they stay there until the champion is
// resurrected or reincarnated.
func (e *Engine) OfferCandidate(c party.Champion) (int, error) {
	p := e.party
	switch {
	case p.CandidateOrdinal != 0:
		return party.NoChampion, ErrCandidatePending
	case !p.LeaderEmptyHanded():
		return party.NoChampion, ErrHandNotEmpty
	case p.Count >= party.MaxChampions:
		return party.NoChampion, ErrPartyFull
	}

	mx, my := dungeon.Ahead(p.X, p.Y, p.Dir)
	c.Load = 0
	for _, h := range c.Slots[:party.SlotChest1] {
		if h == dungeon.None {
			continue
		}
		x, y, on, err := e.store.Location(h)
		if err != nil {
			return party.NoChampion, fmt.Errorf("engine: offer candidate: %w", err)
		}
		if !on || x != mx || y != my {
			return party.NoChampion, fmt.Errorf("engine: offer candidate: %v is not on mirror square (%d,%d): %w", h, mx, my, dungeon.ErrContract)
		}
		c.Load += e.weight(h)
	}

	idx := p.Add(c)
	p.CandidateOrdinal = party.IndexToOrdinal(idx)
	e.logger.Info("candidate offered", "champion", c.Name, "index", idx)
	e.openInventory(idx, PanelResurrect)
	return idx, nil
}

func (e *Engine) clickInResurrectPanel(cmd command.Type) {
	p := e.party
	idx := p.Count - 1
	c := &p.Champions[idx]

	if cmd == command.ClickInPanelCancel {
		e.logger.Info("candidate dismissed", "champion", c.Name)
		p.CandidateOrdinal = 0
		e.closeInventory()
		if p.Count == 1 {
			e.SetLeader(party.NoChampion)
		}
		p.Count--
		p.Champions[idx] = party.Champion{}
		p.Champions[idx].ClearSlots()
		e.ui.ClearChampion(idx)
		e.ui.DrawMenus()
		return
	}

	p.CandidateOrdinal = 0
	mx, my := dungeon.Ahead(p.X, p.Y, p.Dir)
	for _, h := range c.Slots[:party.SlotChest1] {
		if h == dungeon.None {
			continue
		}
		if err := e.store.Unlink(h, mx, my); err != nil {
			e.contract("resurrect", err)
		}
	}
	for h := e.store.FirstThing(mx, my); h != dungeon.EndOfList; h = e.store.NextThing(h) {
		if s, ok := e.store.Thing(h).Payload.(*dungeon.Sensor); ok {
			s.Disable()
			break
		}
	}

	verb := "RESURRECTED"
	if cmd == command.ClickInPanelReincarnate {
		verb = "REINCARNATED"
		c.Rename(e.ui.AskName(c.Name))
		c.ResetSkills()
		for i := 0; i < rebirthStatBumps; i++ {
			c.BumpStat(party.Stat(e.rng.Intn(party.StatCount)))
		}
	}

	if p.Count == 1 {
		p.LastMovementTime = e.gameTime
		e.SetLeader(0)
		p.MagicCaster = 0
		e.ui.DrawSpellArea(0)
	} else {
		e.ui.DrawSpellArea(p.MagicCaster)
	}

	e.ui.Message(championColors[idx], c.Name+" "+verb+".")
	e.logger.Info("champion joined", "champion", c.Name, "how", verb, "index", idx)
	e.closeInventory()
	e.ui.DrawMenus()
	e.updatePointer()
}

func (e *Engine) toggleInventory(idx int) {
	p := e.party
	if p.CandidateOrdinal != 0 || !p.Valid(idx) {
		return
	}
	if party.IndexToOrdinal(idx) == e.inventory {
		e.closeInventory()
		return
	}
	if !p.Champions[idx].Alive() {
		return
	}
	e.openInventory(idx, e.panelFor(idx))
}

// panelFor shows the chest a champion holds in the action hand.
func (e *Engine) panelFor(idx int) PanelContent {
	h := e.party.Champions[idx].Slots[party.SlotActionHand]
	if t := e.store.Thing(h); t != nil {
		if _, ok := t.Payload.(*dungeon.Container); ok {
			return PanelChest
		}
	}
	return PanelNone
}

func (e *Engine) openInventory(idx int, panel PanelContent) {
	e.inventory = party.IndexToOrdinal(idx)
	e.panel = panel
	e.setContext(hittest.ContextChampionInventory)
	e.ui.ShowInventory(idx, panel)
}

func (e *Engine) closeInventory() {
	if e.inventory == 0 {
		return
	}
	e.inventory = 0
	e.panel = PanelNone
	e.setContext(hittest.ContextInterface)
	e.ui.ShowInventory(party.NoChampion, PanelNone)
}

// clickOnSlot swaps the leader's hand with a champion's slot.
func (e *Engine) clickOnSlot(idx, slot int) {
	p := e.party
	if !p.HasLeader() || !p.Valid(idx) || party.IndexToOrdinal(idx) == p.CandidateOrdinal {
		return
	}
	c := &p.Champions[idx]
	if !c.Alive() {
		return
	}
	held, inSlot := p.LeaderHand, c.Slots[slot]
	if held == dungeon.None && inSlot == dungeon.None {
		return
	}
	wHeld, wSlot := e.weight(held), e.weight(inSlot)
	c.Slots[slot] = held
	p.LeaderHand = inSlot
	c.Load += wHeld - wSlot
	p.Champions[p.Leader].Load += wSlot - wHeld
	p.Champions[p.Leader].Mark(party.AttrLoad)
	c.Mark(party.AttrLoad | party.AttrStatusBox)
	if slot == party.SlotActionHand {
		c.Mark(party.AttrActionHand)
		if e.inventory == party.IndexToOrdinal(idx) && e.panel != PanelResurrect {
			e.panel = e.panelFor(idx)
			e.ui.ShowInventory(idx, e.panel)
		}
	}
	e.stopWaiting = true
}

func (e *Engine) clickInStatusBox(idx int, c command.Command) {
	if !e.party.Valid(idx) {
		return
	}
	cmd := hittest.ResolveMouse(hittest.MouseChampionNamesHands, c.Pos, core.ButtonLeft)
	if cmd == command.None {
		return
	}
	e.route(command.Command{Pos: c.Pos, Type: cmd})
}
