package engine

import (
	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/hittest"
	"github.com/vovakirdan/crawlcore/internal/party"
)

// SetLeader makes champion idx the leader, or leaves the party leaderless
// for party.NoChampion. The held object's weight moves with leadership.
// Dead champions cannot lead.
func (e *Engine) SetLeader(idx int) {
	p := e.party
	if p.Leader == idx {
		return
	}
	if idx != party.NoChampion && (!p.Valid(idx) || !p.Champions[idx].Alive()) {
		return
	}
	w := e.weight(p.LeaderHand)
	if p.HasLeader() {
		old := &p.Champions[p.Leader]
		old.Load -= w
		old.Mark(party.AttrLoad | party.AttrName)
		p.Leader = party.NoChampion
	}
	if idx == party.NoChampion {
		return
	}
	p.Leader = idx
	c := &p.Champions[idx]
	c.Dir = p.Dir
	c.Load += w
	if party.IndexToOrdinal(idx) != p.CandidateOrdinal {
		c.Mark(party.AttrIcon | party.AttrName)
	}
	e.logger.Debug("leader", "champion", c.Name, "index", idx)
}

// clickOnChampionIcon picks up a champion icon, or drops the one being
// moved onto the clicked position, swapping cells with whoever stood there.
func (e *Engine) clickOnChampionIcon(icon int) {
	p := e.party
	cell := dungeon.NormalizeModulo4(icon + int(p.Dir))
	at := p.ChampionAtCell(cell)
	if e.dragging == 0 {
		if at != party.NoChampion {
			e.dragging = party.IndexToOrdinal(at)
		}
		return
	}
	from := party.OrdinalToIndex(e.dragging)
	e.dragging = 0
	if at == from {
		return
	}
	if at != party.NoChampion {
		p.Champions[at].Cell = p.Champions[from].Cell
		p.Champions[at].Mark(party.AttrIcon)
	}
	p.Champions[from].Cell = cell
	p.Champions[from].Mark(party.AttrIcon)
}

// SetContext switches the screen accepting input. Pending raw input and
// queued commands are dropped. choices is only used by dialogs.
func (e *Engine) SetContext(ctx hittest.Context, choices int) error {
	tables, err := hittest.SetFor(ctx, choices)
	if err != nil {
		return err
	}
	e.ctx, e.choices = ctx, choices
	e.router.DiscardAllInput()
	e.router.SetTables(tables.WithKeys(e.moveKeys))
	e.logger.Debug("context", "ctx", ctx)
	return nil
}

func (e *Engine) setContext(ctx hittest.Context) {
	if err := e.SetContext(ctx, 0); err != nil {
		e.logger.Error("switch context", "ctx", ctx, "err", err)
	}
}

func (e *Engine) freeze() {
	if e.ctx == hittest.ContextFrozenGame {
		return
	}
	e.frozenFrom, e.frozenChoices = e.ctx, e.choices
	e.setContext(hittest.ContextFrozenGame)
}

func (e *Engine) unfreeze() {
	if e.ctx != hittest.ContextFrozenGame {
		return
	}
	if err := e.SetContext(e.frozenFrom, e.frozenChoices); err != nil {
		e.logger.Error("unfreeze", "ctx", e.frozenFrom, "err", err)
	}
}

func (e *Engine) sleep() {
	if e.party.CandidateOrdinal != 0 || e.party.Count == 0 {
		return
	}
	e.closeInventory()
	e.setContext(hittest.ContextPartySleeping)
}

func (e *Engine) wakeUp() {
	if e.ctx != hittest.ContextPartySleeping {
		return
	}
	e.setContext(hittest.ContextInterface)
}
