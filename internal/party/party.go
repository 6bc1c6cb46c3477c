package party

import (
	"github.com/vovakirdan/crawlcore/internal/dungeon"
)

// MaxChampions is the party size limit.
const MaxChampions = 4

// NoChampion is the leader and magic caster index of an empty party.
const NoChampion = -1

// Party is the party-wide state.
type Party struct {
	Champions   [MaxChampions]Champion
	Count       int
	Leader      int
	LeaderHand  dungeon.Handle // dungeon.None when empty handed
	MagicCaster int

	// CandidateOrdinal is the 1-based index of a champion offered for
	// resurrection or reincarnation, or 0.
	CandidateOrdinal int

	X, Y int
	Dir  dungeon.Direction

	LastMovementTime int64
}

// New creates an empty party at (x, y) facing d.
func New(x, y int, d dungeon.Direction) *Party {
	p := &Party{
		Leader:      NoChampion,
		LeaderHand:  dungeon.None,
		MagicCaster: NoChampion,
		X:           x,
		Y:           y,
		Dir:         d,
	}
	for i := range p.Champions {
		p.Champions[i].ClearSlots()
	}
	return p
}

// Add appends a champion and returns its index, or NoChampion when full.
// The champion faces the party direction and takes the first free cell.
func (p *Party) Add(c Champion) int {
	if p.Count >= MaxChampions {
		return NoChampion
	}
	idx := p.Count
	c.Dir = p.Dir
	c.Cell = p.FreeCell()
	p.Champions[idx] = c
	p.Count++
	return idx
}

// FreeCell returns the first cell no champion stands on, counted clockwise
// from the party's front left, or -1 when all four are taken.
func (p *Party) FreeCell() int {
	for k := 0; k < 4; k++ {
		cell := dungeon.NormalizeModulo4(int(p.Dir) + k)
		taken := false
		for i := 0; i < p.Count; i++ {
			if p.Champions[i].Cell == cell {
				taken = true
				break
			}
		}
		if !taken {
			return cell
		}
	}
	return -1
}

// ChampionAtCell returns the index of the champion standing on cell, or
// NoChampion.
func (p *Party) ChampionAtCell(cell int) int {
	for i := 0; i < p.Count; i++ {
		if p.Champions[i].Cell == cell {
			return i
		}
	}
	return NoChampion
}

// LeaderEmptyHanded reports whether the leader holds nothing. A party without
// a leader is empty handed.
func (p *Party) LeaderEmptyHanded() bool {
	return p.LeaderHand == dungeon.None
}

// HasLeader reports whether a leader is set.
func (p *Party) HasLeader() bool {
	return p.Leader != NoChampion
}

// LeaderChampion returns the leader, or nil.
func (p *Party) LeaderChampion() *Champion {
	if !p.HasLeader() {
		return nil
	}
	return &p.Champions[p.Leader]
}

// Candidate returns the index of the offered candidate, or NoChampion.
func (p *Party) Candidate() int {
	return OrdinalToIndex(p.CandidateOrdinal)
}

// Valid reports whether i addresses a current champion.
func (p *Party) Valid(i int) bool {
	return i >= 0 && i < p.Count
}

// IndexToOrdinal converts a champion index to a 1-based ordinal; NoChampion
// maps to 0.
func IndexToOrdinal(i int) int {
	return i + 1
}

// OrdinalToIndex is the inverse of IndexToOrdinal.
func OrdinalToIndex(o int) int {
	return o - 1
}
