package drawing

import "github.com/google/uuid"

// PaletteColor is one swatch. Color is hex without '#'.
type PaletteColor struct {
	Color string `json:"color"`
	ID    string `json:"id"`
}

// Palette is the ordered set of swatches and the selected one.
type Palette struct {
	Colors   []PaletteColor
	Selected int
}

var defaultColors = []string{
	"000000", "ffffff", "7f7f7f", "c3c3c3",
	"880015", "ed1c24", "ff7f27", "fff200",
	"22b14c", "b5e61d", "00a2e8", "99d9ea",
	"3f48cc", "7092be", "a349a4", "c8bfe7",
}

// DefaultPalette returns the stock palette with the first colour selected.
func DefaultPalette() Palette {
	return NewPalette(defaultColors)
}

// NewPalette builds a palette from colours, assigning fresh ids.
func NewPalette(colors []string) Palette {
	p := Palette{Colors: make([]PaletteColor, len(colors))}
	for i, c := range colors {
		p.Colors[i] = PaletteColor{Color: c, ID: uuid.NewString()}
	}
	return p
}

// Current returns the selected colour, or "" for an empty palette.
func (p Palette) Current() string {
	if p.Selected < 0 || p.Selected >= len(p.Colors) {
		return ""
	}
	return p.Colors[p.Selected].Color
}

func (p Palette) withColor(i int, color string) Palette {
	colors := make([]PaletteColor, len(p.Colors))
	copy(colors, p.Colors)
	colors[i].Color = color
	p.Colors = colors
	return p
}
