package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/labyrinth/internal/labyrinth"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	// Remove leading # if present
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	// Parse RGB components
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// ThemeDef is the structure of theme.json.
type ThemeDef struct {
	Wall        string            `json:"wall"`
	Exit        string            `json:"exit"`
	Player      string            `json:"player"`
	Inhabitants map[string]string `json:"inhabitants"` // Keyed like level inhabitant kinds
	Items       map[string]string `json:"items"`       // Keyed like level item kinds
}

// Theme holds the parsed display colors.
type Theme struct {
	Wall   tcell.Color
	Exit   tcell.Color
	Player tcell.Color

	inhabitants map[labyrinth.Inhabitant]tcell.Color
	items       map[labyrinth.Item]tcell.Color
}

// NewTheme parses a theme definition.
func NewTheme(def ThemeDef) (*Theme, error) {
	t := &Theme{
		inhabitants: make(map[labyrinth.Inhabitant]tcell.Color),
		items:       make(map[labyrinth.Item]tcell.Color),
	}

	var err error
	if t.Wall, err = ParseHexColor(def.Wall); err != nil {
		return nil, fmt.Errorf("theme wall: %w", err)
	}
	if t.Exit, err = ParseHexColor(def.Exit); err != nil {
		return nil, fmt.Errorf("theme exit: %w", err)
	}
	if t.Player, err = ParseHexColor(def.Player); err != nil {
		return nil, fmt.Errorf("theme player: %w", err)
	}

	for name, hex := range def.Inhabitants {
		inh, err := ParseInhabitant(name)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		if t.inhabitants[inh], err = ParseHexColor(hex); err != nil {
			return nil, fmt.Errorf("theme %s: %w", name, err)
		}
	}
	for name, hex := range def.Items {
		itm, err := ParseItem(name)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		if t.items[itm], err = ParseHexColor(hex); err != nil {
			return nil, fmt.Errorf("theme %s: %w", name, err)
		}
	}
	return t, nil
}

// LoadTheme loads the display theme from the embedded theme.json file.
func LoadTheme() (*Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return nil, err
	}
	return NewTheme(def)
}

// InhabitantColor returns the color for an inhabitant, or white if the theme has none.
func (t *Theme) InhabitantColor(inh labyrinth.Inhabitant) tcell.Color {
	if c, ok := t.inhabitants[inh]; ok {
		return c
	}
	return tcell.ColorWhite
}

// ItemColor returns the color for an item, or white if the theme has none.
func (t *Theme) ItemColor(itm labyrinth.Item) tcell.Color {
	if c, ok := t.items[itm]; ok {
		return c
	}
	return tcell.ColorWhite
}
