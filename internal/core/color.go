package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)

// Palette assigns colors to the things drawn in the scene. It is a plain
// value so every renderer gets its own copy.
type Palette struct {
	Player      Color
	PlayerTrail Color
	Enemy       Color
	EnemyTrail  Color
	Warning     Color
	Border      Color
	HUD         Color
}

// DefaultPalette returns the white-player / red-enemy scheme.
func DefaultPalette() Palette {
	return Palette{
		Player:      ColorBrightWhite,
		PlayerTrail: ColorGray,
		Enemy:       ColorBrightRed,
		EnemyTrail:  ColorRed,
		Warning:     ColorYellow,
		Border:      ColorDarkGray,
		HUD:         ColorWhite,
	}
}
