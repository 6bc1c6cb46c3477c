package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/engine"
	"github.com/vovakirdan/crawlcore/internal/hittest"
	"github.com/vovakirdan/crawlcore/internal/party"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// championColors are the colors of the four party slots.
var championColors = [party.MaxChampions]core.Color{core.ColorGreen, core.ColorYellow, core.ColorRed, core.ColorBlue}

// Virtual screen areas, matching the regions the hit-test tables use.
const (
	statusBoxWidth = 69
	viewMaxX       = 223
	viewMaxY       = 168
	sideMinX       = 224
	messageMinY    = 169
)

var partyArrows = [4]rune{'^', '>', 'v', '<'}

// DrawFrame draws the engine state into dst, placing each part where the
// virtual screen has its clickable region so terminal clicks land on what
// they show.
func DrawFrame(dst *core.Screen, cfg core.RuntimeConfig, e *engine.Engine, pr *Presenter, title string) {
	dst.Clear()
	p := e.Party()

	for i := 0; i < party.MaxChampions; i++ {
		col, row := cfg.ToCell(core.Pt(i*statusBoxWidth, 0))
		if i >= p.Count {
			dst.DrawText(col, row, "-", core.ColorGray)
			continue
		}
		c := &p.Champions[i]
		name := c.Name
		if i == p.Leader {
			name = "*" + name
		}
		if party.IndexToOrdinal(i) == p.CandidateOrdinal {
			name += "?"
		}
		dst.DrawText(col, row, name, championColors[i])
		dst.DrawText(col, row+1, fmt.Sprintf("%d/%d", c.Health, c.MaxHealth), core.ColorDefault)
		if c.Slots[party.SlotActionHand] != dungeon.None {
			dst.DrawText(col, row+2, "+"+thingName(e.Store(), c.Slots[party.SlotActionHand]), core.ColorGray)
		}
	}

	x0, y0 := cfg.ToCell(core.Pt(0, hittest.ViewOffsetY))
	x1, y1 := cfg.ToCell(core.Pt(viewMaxX, viewMaxY))
	drawMap(dst, e, x0, y0, x1, y1)

	sx, sy := cfg.ToCell(core.Pt(sideMinX, hittest.ViewOffsetY))
	inv, panel := pr.Panel()
	lines := []string{
		title,
		fmt.Sprintf("tick %d", e.GameTime()),
		fmt.Sprintf("%s %s", e.Context(), p.Dir),
		fmt.Sprintf("pointer %s", pr.Pointer()),
	}
	if inv != party.NoChampion {
		lines = append(lines, fmt.Sprintf("inv %d %s", inv+1, panel))
	}
	if p.LeaderHand != dungeon.None {
		lines = append(lines, "hand "+thingName(e.Store(), p.LeaderHand))
	}
	for i, l := range lines {
		dst.DrawText(sx, sy+i, l, core.ColorWhite)
	}

	_, my := cfg.ToCell(core.Pt(0, messageMinY))
	for i, m := range pr.Messages() {
		dst.DrawText(0, my+i, m.Text, m.Color)
	}
}

// drawMap draws the level around the party inside the cell box (x0,y0)-(x1,y1).
func drawMap(dst *core.Screen, e *engine.Engine, x0, y0, x1, y1 int) {
	store, p := e.Store(), e.Party()
	w, h := x1-x0+1, y1-y0+1
	if w <= 0 || h <= 0 {
		return
	}
	left, top := p.X-w/2, p.Y-h/2
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			mx, my := left+col, top+row
			if !store.InBounds(mx, my) {
				continue
			}
			dst.SetCell(x0+col, y0+row, squareCell(store, mx, my))
		}
	}
	dst.SetCell(x0+p.X-left, y0+p.Y-top, core.Cell{Rune: partyArrows[p.Dir], Color: core.ColorGreen})
}

func squareCell(store *dungeon.Store, x, y int) core.Cell {
	g := store.Glyph(x, y)
	switch g {
	case dungeon.GlyphWall:
		return core.Cell{Rune: g, Color: core.ColorGray}
	case dungeon.GlyphDoorClosed, dungeon.GlyphDoorOpen, dungeon.GlyphButtonDoor:
		return core.Cell{Rune: g, Color: core.ColorYellow}
	case dungeon.GlyphAlcove, dungeon.GlyphFountain, dungeon.GlyphViAltar:
		return core.Cell{Rune: g, Color: core.ColorCyan}
	}
	if store.FirstOfKind(x, y, dungeon.KindGroup) != dungeon.EndOfList {
		return core.Cell{Rune: 'M', Color: core.ColorRed}
	}
	for _, h := range store.Things(x, y) {
		if dungeon.IconIndex(store.Thing(h).Payload) != dungeon.NoIcon {
			return core.Cell{Rune: '*', Color: core.ColorWhite}
		}
	}
	return core.Cell{Rune: g, Color: core.ColorDefault}
}

func thingName(store *dungeon.Store, h dungeon.Handle) string {
	t := store.Thing(h)
	if t == nil {
		return "?"
	}
	return t.Kind().String()
}
