package dungeon

import (
	"fmt"
	"strings"
)

// Layout glyphs. Each line of a layout is one map row.
const (
	GlyphWall       = '#'
	GlyphCorridor   = '.'
	GlyphDoorClosed = 'D'
	GlyphDoorOpen   = 'd'
	GlyphButtonDoor = 'B' // Closed door with a button
	GlyphAlcove     = 'A'
	GlyphFountain   = 'F'
	GlyphViAltar    = 'V'
	GlyphPit        = 'O'
	GlyphStairs     = '>'
	GlyphTeleporter = 'T'
)

// ParseLayout builds a level from ASCII rows. Rows shorter than the widest
// one are padded with wall. Door squares get a Door thing as the first thing
// of their chain.
func ParseLayout(rows []string) (*Store, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dungeon: empty layout")
	}
	width := 0
	for _, r := range rows {
		width = max(width, len([]rune(r)))
	}
	s := NewStore(width, len(rows))
	for y, row := range rows {
		for x, g := range []rune(row) {
			sq := s.Square(x, y)
			switch g {
			case GlyphWall, ' ':
				sq.Element = ElementWall
			case GlyphCorridor:
				sq.Element = ElementCorridor
			case GlyphDoorClosed, GlyphDoorOpen, GlyphButtonDoor:
				sq.Element = ElementDoor
				sq.Door = DoorClosed
				if g == GlyphDoorOpen {
					sq.Door = DoorOpen
				}
				if _, err := s.Add(x, y, Thing{Payload: &Door{Button: g == GlyphButtonDoor}}); err != nil {
					return nil, err
				}
			case GlyphAlcove:
				sq.Element, sq.Ornament = ElementWall, OrnamentAlcove
			case GlyphFountain:
				sq.Element, sq.Ornament = ElementWall, OrnamentFountain
			case GlyphViAltar:
				sq.Element, sq.Ornament = ElementWall, OrnamentViAltar
			case GlyphPit:
				sq.Element = ElementPit
			case GlyphStairs:
				sq.Element = ElementStairs
			case GlyphTeleporter:
				sq.Element = ElementTeleporter
			default:
				return nil, fmt.Errorf("dungeon: layout row %d col %d: unknown glyph %q", y, x, g)
			}
		}
	}
	return s, nil
}

// Glyph returns the layout glyph of (x, y).
func (s *Store) Glyph(x, y int) rune {
	sq := s.Square(x, y)
	if sq == nil {
		return GlyphWall
	}
	switch sq.Element {
	case ElementCorridor:
		return GlyphCorridor
	case ElementDoor:
		if sq.Door == DoorOpen {
			return GlyphDoorOpen
		}
		if h := s.FirstOfKind(x, y, KindDoor); h != EndOfList {
			if d, ok := s.Thing(h).Payload.(*Door); ok && d.HasButton() {
				return GlyphButtonDoor
			}
		}
		return GlyphDoorClosed
	case ElementPit:
		return GlyphPit
	case ElementStairs:
		return GlyphStairs
	case ElementTeleporter:
		return GlyphTeleporter
	}
	switch sq.Ornament {
	case OrnamentAlcove:
		return GlyphAlcove
	case OrnamentFountain:
		return GlyphFountain
	case OrnamentViAltar:
		return GlyphViAltar
	}
	return GlyphWall
}

// Layout renders the level back into rows.
func (s *Store) Layout() []string {
	rows := make([]string, s.height)
	var sb strings.Builder
	for y := 0; y < s.height; y++ {
		sb.Reset()
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.Glyph(x, y))
		}
		rows[y] = sb.String()
	}
	return rows
}
