package labymap

import (
	"fmt"
	"strings"

	"github.com/samdwyer/labyrinth/internal/labyrinth"
)

// borderGlyphs is indexed by a border pattern: bits N, E, S, W from high to
// low, 1 meaning the wall is present.
var borderGlyphs = [16]rune{
	' ', // 0000
	'╴', // 0001
	'╷', // 0010
	'┐', // 0011
	'╶', // 0100
	'─', // 0101
	'┌', // 0110
	'┬', // 0111
	'╵', // 1000
	'┘', // 1001
	'│', // 1010
	'┤', // 1011
	'└', // 1100
	'┴', // 1101
	'├', // 1110
	'┼', // 1111
}

// Pattern packs four wall flags into a border pattern.
func Pattern(north, east, south, west bool) uint8 {
	var p uint8
	if north {
		p |= 1 << 3
	}
	if east {
		p |= 1 << 2
	}
	if south {
		p |= 1 << 1
	}
	if west {
		p |= 1
	}
	return p
}

// BorderGlyph returns the box-drawing character for a border pattern.
// A pattern above 15 cannot come from four flags and panics.
func BorderGlyph(pattern uint8) rune {
	if int(pattern) >= len(borderGlyphs) {
		panic(fmt.Sprintf("labymap: invalid border pattern %b", pattern))
	}
	return borderGlyphs[pattern]
}

// InhabitantGlyph returns the character drawn for an inhabitant.
func InhabitantGlyph(inh labyrinth.Inhabitant) rune {
	switch inh {
	case labyrinth.InhabitantNone:
		return ' '
	case labyrinth.Minotaur:
		return 'M'
	case labyrinth.MinotaurDead:
		return 'm'
	case labyrinth.Mirror:
		return 'O'
	case labyrinth.MirrorCracked:
		return '0'
	default:
		return '?'
	}
}

// ItemGlyph returns the character drawn for an item.
// The place a treasure was taken from looks empty.
func ItemGlyph(itm labyrinth.Item) rune {
	switch itm {
	case labyrinth.ItemNone, labyrinth.TreasureGone:
		return ' '
	case labyrinth.Bullet:
		return '•'
	case labyrinth.Treasure:
		return 'T'
	default:
		return '?'
	}
}

// RoomGlyph returns the two characters drawn for a room cell.
func RoomGlyph(inh labyrinth.Inhabitant, itm labyrinth.Item) string {
	return string([]rune{InhabitantGlyph(inh), ItemGlyph(itm)})
}

// legendEntries lists the glyphs explained by Legend, in display order.
var legendEntries = []struct {
	glyph rune
	name  string
}{
	{InhabitantGlyph(labyrinth.Minotaur), "Minotaur"},
	{InhabitantGlyph(labyrinth.MinotaurDead), "Minotaur (dead)"},
	{InhabitantGlyph(labyrinth.Mirror), "Mirror"},
	{InhabitantGlyph(labyrinth.MirrorCracked), "Mirror (cracked)"},
	{ItemGlyph(labyrinth.Bullet), "Bullet"},
	{ItemGlyph(labyrinth.Treasure), "Treasure"},
}

// Legend returns the fixed block describing the room glyphs.
func Legend() string {
	var b strings.Builder
	b.WriteString("Legend:\n")
	for _, e := range legendEntries {
		fmt.Fprintf(&b, "  %c  %s\n", e.glyph, e.name)
	}
	return b.String()
}
