// Package draw renders the game into a terminal: a half-block pixel canvas,
// sprite shapes, positioned text and chunked output for network sessions.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// shades run from empty to solid.
var shades = []rune{BlockEmpty, BlockLight, BlockMedium, BlockDark, BlockFull}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return shades[0]
	}
	if intensity >= 1 {
		return shades[len(shades)-1]
	}
	return shades[int(intensity*float64(len(shades)-1))]
}

// Meter renders a fill level in [0, 1] as width shade characters.
// The last partially filled cell gets a lighter shade.
func Meter(level float64, width int) string {
	out := make([]rune, width)
	filled := min(max(level, 0), 1) * float64(width)
	for i := range out {
		out[i] = ShadeLevel(filled - float64(i))
	}
	return string(out)
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockMedium    = '▒'
	BlockDark      = '▓'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
