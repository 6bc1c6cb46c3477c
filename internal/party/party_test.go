package party

import (
	"testing"

	"github.com/vovakirdan/crawlcore/internal/dungeon"
)

func TestNewParty(t *testing.T) {
	p := New(5, 5, dungeon.East)
	if p.HasLeader() || p.Leader != NoChampion {
		t.Error("new party should have no leader")
	}
	if !p.LeaderEmptyHanded() {
		t.Error("new party should be empty handed")
	}
	if p.Candidate() != NoChampion {
		t.Errorf("Candidate() = %d, expected none", p.Candidate())
	}
	if p.Champions[0].Slots[0] != dungeon.None {
		t.Error("slots should start empty")
	}
}

func TestAddChampion(t *testing.T) {
	p := New(0, 0, dungeon.South)
	for i := 0; i < MaxChampions; i++ {
		if idx := p.Add(Champion{Name: "HALK", Health: 10}); idx != i {
			t.Fatalf("Add() = %d, expected %d", idx, i)
		}
	}
	if idx := p.Add(Champion{}); idx != NoChampion {
		t.Errorf("Add() to a full party = %d, expected NoChampion", idx)
	}
	if p.Champions[2].Dir != dungeon.South {
		t.Errorf("champion should face the party direction, got %v", p.Champions[2].Dir)
	}
	cells := map[int]bool{}
	for i := 0; i < p.Count; i++ {
		cells[p.Champions[i].Cell] = true
	}
	if len(cells) != MaxChampions {
		t.Errorf("champions share cells: %v", cells)
	}
	if p.FreeCell() != -1 {
		t.Errorf("FreeCell() of a full party = %d, expected -1", p.FreeCell())
	}
	if got := p.ChampionAtCell(p.Champions[3].Cell); got != 3 {
		t.Errorf("ChampionAtCell() = %d, expected 3", got)
	}
}

func TestFreeCellStartsFrontLeft(t *testing.T) {
	p := New(0, 0, dungeon.East)
	if got := p.FreeCell(); got != int(dungeon.East) {
		t.Errorf("FreeCell() = %d, expected %d", got, int(dungeon.East))
	}
	p.Add(Champion{Health: 1})
	if got := p.FreeCell(); got != 2 {
		t.Errorf("FreeCell() after one champion = %d, expected 2", got)
	}
}

func TestOrdinals(t *testing.T) {
	if IndexToOrdinal(NoChampion) != 0 {
		t.Error("NoChampion should map to ordinal 0")
	}
	if OrdinalToIndex(IndexToOrdinal(3)) != 3 {
		t.Error("ordinal round trip failed")
	}
}

func TestChampionHelpers(t *testing.T) {
	var c Champion
	c.Skills[4] = 12
	c.ResetSkills()
	if c.Skills[4] != 0 {
		t.Error("ResetSkills should zero skills")
	}

	c.Rename("  elija ")
	if c.Name != "ELIJA" {
		t.Errorf("Name = %q, expected ELIJA", c.Name)
	}

	c.BumpStat(StatWisdom)
	if c.Stats[StatWisdom] != (StatValue{Current: 1, Max: 1}) {
		t.Errorf("Stats[wisdom] = %+v", c.Stats[StatWisdom])
	}

	if d := c.TakeDirty(); d&AttrName == 0 || d&AttrStatistics == 0 {
		t.Errorf("TakeDirty() = %b, expected name and statistics", d)
	}
	if c.Dirty != AttrNone {
		t.Error("TakeDirty should clear flags")
	}
}
