package tui

import (
	"fmt"

	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/engine"
	"github.com/vovakirdan/crawlcore/internal/party"
	"github.com/vovakirdan/crawlcore/internal/timeline"
)

// maxMessages is how many message lines the presenter keeps.
const maxMessages = 4

// Message is one line of the message area.
type Message struct {
	Color core.Color
	Text  string
}

// Presenter is the engine.UI of a terminal session. It keeps what the
// engine reported for the next frame to draw.
type Presenter struct {
	messages  []Message
	pointer   engine.Pointer
	inventory int
	panel     engine.PanelContent
	caster    int
}

var _ engine.UI = (*Presenter)(nil)

// NewPresenter creates a presenter with nothing to show.
func NewPresenter() *Presenter {
	return &Presenter{inventory: party.NoChampion, caster: party.NoChampion}
}

// SetPointer implements engine.UI.
func (p *Presenter) SetPointer(ptr engine.Pointer) { p.pointer = ptr }

// Message implements engine.UI.
func (p *Presenter) Message(c core.Color, text string) {
	p.messages = append(p.messages, Message{Color: c, Text: text})
	if n := len(p.messages); n > maxMessages {
		p.messages = p.messages[n-maxMessages:]
	}
}

// ShowInventory implements engine.UI.
func (p *Presenter) ShowInventory(champion int, panel engine.PanelContent) {
	p.inventory = champion
	p.panel = panel
}

// DrawMenus implements engine.UI.
func (p *Presenter) DrawMenus() {}

// DrawSpellArea implements engine.UI.
func (p *Presenter) DrawSpellArea(caster int) { p.caster = caster }

// ClearChampion implements engine.UI.
func (p *Presenter) ClearChampion(int) {}

// ClickChestSlot implements engine.UI.
func (p *Presenter) ClickChestSlot(slot int) {
	p.Message(core.ColorGray, fmt.Sprintf("CHEST SLOT %d.", slot+1))
}

// AskName keeps the current name. Terminal sessions have no name entry
// and replays must see the same answer.
func (p *Presenter) AskName(current string) string { return current }

// AltarRebirth implements engine.UI.
func (p *Presenter) AltarRebirth(ev timeline.Event) {
	p.Message(core.ColorCyan, fmt.Sprintf("THE ALTAR AT %d,%d GLOWS.", ev.X, ev.Y))
}

// Messages returns the kept message lines, oldest first.
func (p *Presenter) Messages() []Message { return p.messages }

// Pointer returns the last cursor the engine set.
func (p *Presenter) Pointer() engine.Pointer { return p.pointer }

// Panel returns the open inventory and its panel content.
func (p *Presenter) Panel() (int, engine.PanelContent) { return p.inventory, p.panel }

// Caster returns the champion shown in the spell area.
func (p *Presenter) Caster() int { return p.caster }
