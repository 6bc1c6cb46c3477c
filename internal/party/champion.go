// Package party holds the champions and the party-wide state the dispatcher
// mutates: leader, held object, position and facing.
package party

import (
	"strings"

	"github.com/vovakirdan/crawlcore/internal/dungeon"
)

// Stat indexes a champion statistic.
type Stat int

const (
	StatLuck Stat = iota
	StatStrength
	StatDexterity
	StatWisdom
	StatVitality
	StatAntiMagic
	StatAntiFire

	StatCount = 7
)

var statNames = [StatCount]string{"luck", "strength", "dexterity", "wisdom", "vitality", "anti-magic", "anti-fire"}

func (s Stat) String() string {
	if s < 0 || int(s) >= StatCount {
		return "unknown"
	}
	return statNames[s]
}

// StatValue is a statistic's current and maximum value.
type StatValue struct {
	Current int `yaml:"current" json:"current"`
	Max     int `yaml:"max" json:"max"`
}

// Slot counts. Slots 0..29 are the body and backpack; 30..37 the open chest.
const (
	SlotReadyHand  = 0
	SlotActionHand = 1
	SlotChest1     = 30
	SlotCount      = 38
	SkillCount     = 20
)

// Attribute flags mark parts of a champion's display as needing a redraw.
type Attribute uint16

const (
	AttrNone Attribute = 0
	AttrLoad Attribute = 1 << iota
	AttrIcon
	AttrName
	AttrStatistics
	AttrStatusBox
	AttrPanel
	AttrActionHand
)

// Champion is one party member.
type Champion struct {
	Name      string
	Title     string
	Stats     [StatCount]StatValue
	Health    int
	MaxHealth int
	Load      int // Carried weight, tenths of a kilogram
	Dir       dungeon.Direction
	Cell      int
	Slots     [SlotCount]dungeon.Handle
	Skills    [SkillCount]int
	Dirty     Attribute
}

// Alive reports whether the champion has any health left.
func (c *Champion) Alive() bool {
	return c.Health > 0
}

// Mark flags attributes for redraw.
func (c *Champion) Mark(a Attribute) {
	c.Dirty |= a
}

// TakeDirty returns and clears the redraw flags.
func (c *Champion) TakeDirty() Attribute {
	d := c.Dirty
	c.Dirty = AttrNone
	return d
}

// ResetSkills zeroes every skill.
func (c *Champion) ResetSkills() {
	c.Skills = [SkillCount]int{}
}

// Rename replaces the champion's name and clears the title. Names are
// stored upper case as printed in the message area.
func (c *Champion) Rename(name string) {
	c.Name = strings.ToUpper(strings.TrimSpace(name))
	c.Title = ""
	c.Mark(AttrName)
}

// BumpStat raises both current and maximum of s by one.
func (c *Champion) BumpStat(s Stat) {
	c.Stats[s].Current++
	c.Stats[s].Max++
	c.Mark(AttrStatistics)
}

// ClearSlots empties every slot reference.
func (c *Champion) ClearSlots() {
	for i := range c.Slots {
		c.Slots[i] = dungeon.None
	}
}
