package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a monochrome pixel buffer shown through half-block characters,
// two pixels per terminal cell. Drawing happens in a logical coordinate space
// (the game's playfield) that is scaled onto whatever terminal area is available.
type Canvas struct {
	cols, rows int    // Terminal cells covered by the canvas
	pixels     []bool // cols * rows*2, row-major
	shown      []rune // Glyph last emitted per cell; 0 means never emitted
	redraw     bool
	brightness float64

	logicalW, logicalH float64
	sx, sy             float64 // Logical to pixel scale

	// 0-based terminal offset of the canvas origin, for centering.
	offsetCol, offsetRow int

	out     strings.Builder
	scratch []Point
	xs      []float64
}

// NewCanvas creates an unscaled canvas: one logical unit per pixel.
func NewCanvas(cols, rows int) *Canvas {
	return NewScaledCanvas(cols, rows, float64(cols), float64(rows*2))
}

// NewScaledCanvas creates a canvas of cols x rows terminal cells showing a
// logicalW x logicalH playfield.
func NewScaledCanvas(cols, rows int, logicalW, logicalH float64) *Canvas {
	c := &Canvas{brightness: 1, logicalW: logicalW, logicalH: logicalH}
	c.allocate(cols, rows)
	return c
}

func (c *Canvas) allocate(cols, rows int) {
	c.cols, c.rows = cols, rows
	c.pixels = make([]bool, cols*rows*2)
	c.shown = make([]rune, cols*rows)
	c.redraw = true
	c.sx = float64(cols) / c.logicalW
	c.sy = float64(rows*2) / c.logicalH
}

// Resize fits the same playfield into a new terminal area.
func (c *Canvas) Resize(cols, rows int) {
	if cols != c.cols || rows != c.rows {
		c.allocate(cols, rows)
	}
}

// SetOffset places the canvas origin at terminal cell (col+1, row+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol, c.offsetRow = col, row
}

func (c *Canvas) OffsetCol() int { return c.offsetCol }
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the number of columns the canvas covers.
func (c *Canvas) TerminalWidth() int { return c.cols }

// TerminalHeight returns the number of rows the canvas covers.
func (c *Canvas) TerminalHeight() int { return c.rows }

// ForceRedraw makes the next Render emit every cell that is or was set,
// e.g. after the terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.redraw = true
}

// SetBrightness sets the gray level used for set pixels, clamped to [0.2, 1].
func (c *Canvas) SetBrightness(b float64) {
	b = min(max(b, 0.2), 1)
	if b != c.brightness {
		c.brightness = b
		c.redraw = true
	}
}

// Brightness returns the current gray level.
func (c *Canvas) Brightness() float64 {
	return c.brightness
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// toPixel maps a logical point to pixel coordinates.
func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.sx)), int(math.Round(y * c.sy))
}

// plot sets one pixel, ignoring anything off the canvas.
func (c *Canvas) plot(px, py int) {
	if px >= 0 && px < c.cols && py >= 0 && py < c.rows*2 {
		c.pixels[py*c.cols+px] = true
	}
}

// FillRect sets every pixel inside the logical rectangle. Anything that
// scales below one pixel still covers one.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0, y0 := c.toPixel(x, y)
	x1, y1 := c.toPixel(x+w, y+h)
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	for py := max(y0, 0); py < min(y1, c.rows*2); py++ {
		row := c.pixels[py*c.cols : (py+1)*c.cols]
		for px := max(x0, 0); px < min(x1, c.cols); px++ {
			row[px] = true
		}
	}
}

// glyph returns the half-block character for a terminal cell.
func (c *Canvas) glyph(col, row int) rune {
	top := c.pixels[2*row*c.cols+col]
	bottom := c.pixels[(2*row+1)*c.cols+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	}
	return BlockEmpty
}

// Render writes the cells that changed since the previous Render, wrapped in
// the current gray level. Cells that became empty are overwritten with spaces.
func (c *Canvas) Render(w io.Writer) {
	c.out.Reset()
	c.out.WriteString("\033[38;5;")
	c.out.WriteString(strconv.Itoa(grayIndex(c.brightness)))
	c.out.WriteByte('m')

	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			ch := c.glyph(col, row)
			prev := &c.shown[row*c.cols+col]
			emit := ch != *prev
			if c.redraw {
				// A blank cell only needs repainting if something was there.
				emit = ch != BlockEmpty || (*prev != 0 && *prev != BlockEmpty)
			}
			*prev = ch
			if emit {
				writeCursor(&c.out, col+1+c.offsetCol, row+1+c.offsetRow)
				c.out.WriteRune(ch)
			}
		}
	}
	c.out.WriteString("\033[0m")
	c.redraw = false

	io.WriteString(w, c.out.String())
}

// grayIndex maps a brightness in [0, 1] onto the 24-step xterm gray ramp.
func grayIndex(b float64) int {
	return 232 + int(math.Round(min(max(b, 0), 1)*23))
}

// RenderBorder frames the canvas when it is centered in a larger terminal.
// Each side is drawn only if the offset leaves room for it.
func (c *Canvas) RenderBorder(w io.Writer) {
	sides := c.offsetCol >= 1
	ends := c.offsetRow >= 1
	if !sides && !ends {
		return
	}

	left, right := c.offsetCol, c.offsetCol+c.cols+1
	top, bottom := c.offsetRow, c.offsetRow+c.rows+1
	bar := strings.Repeat("─", c.cols)

	var b strings.Builder
	if ends {
		for _, r := range [2]struct {
			row         int
			open, close string
		}{{top, "┌", "┐"}, {bottom, "└", "┘"}} {
			if sides {
				writeCursor(&b, left, r.row)
				b.WriteString(r.open + bar + r.close)
			} else {
				writeCursor(&b, left+1, r.row)
				b.WriteString(bar)
			}
		}
	}
	if sides {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			writeCursor(&b, left, row)
			b.WriteString("│")
			writeCursor(&b, right, row)
			b.WriteString("│")
		}
	}
	io.WriteString(w, b.String())
}

// BorrowPoints returns a scratch slice of n points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.scratch) < n {
		c.scratch = make([]Point, n)
	}
	return c.scratch[:n]
}

// writeCursor appends a 1-based cursor position sequence.
func writeCursor(b *strings.Builder, col, row int) {
	var num [20]byte
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(num[:0], int64(row), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(num[:0], int64(col), 10))
	b.WriteByte('H')
}
