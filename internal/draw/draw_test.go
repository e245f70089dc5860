package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(c *Canvas) string {
	var buf bytes.Buffer
	c.Render(&buf)
	return buf.String()
}

func TestCanvasRendersHalfBlocks(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillRect(0, 0, 1, 1)
	c.FillRect(1, 0, 1, 1)
	c.FillRect(1, 1, 1, 1)
	c.FillRect(2, 3, 1, 1)

	out := render(c)
	assert.Contains(t, out, "\033[1;1H▀")
	assert.Contains(t, out, "\033[1;2H█")
	assert.Contains(t, out, "\033[2;3H▄")
	assert.True(t, strings.HasSuffix(out, "\033[0m"))
}

func TestCanvasRenderOnlyEmitsChanges(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillRect(0, 0, 1, 1)
	render(c)

	c.Clear()
	c.FillRect(0, 0, 1, 1)
	assert.NotContains(t, render(c), "H", "unchanged frame moves no cursor")

	c.Clear()
	out := render(c)
	assert.Contains(t, out, "\033[1;1H ", "vacated cell is blanked")

	c.ForceRedraw()
	c.FillRect(3, 2, 1, 1)
	out = render(c)
	assert.Contains(t, out, "\033[2;4H▀")
	assert.NotContains(t, out, "\033[1;1H ")
}

func TestCanvasBrightness(t *testing.T) {
	c := NewCanvas(2, 1)
	c.FillRect(0, 0, 1, 1)
	assert.Contains(t, render(c), "\033[38;5;255m")

	c.SetBrightness(0)
	assert.InDelta(t, 0.2, c.Brightness(), 1e-9)
	out := render(c)
	assert.Contains(t, out, "\033[38;5;237m")
	assert.Contains(t, out, "\033[1;1H▀", "brightness change repaints set cells")
}

func TestScaledCanvasFillRect(t *testing.T) {
	c := NewScaledCanvas(8, 4, 80, 80)
	c.FillRect(0, 0, 10, 10)
	out := render(c)
	assert.Contains(t, out, "\033[1;1H▀")
	assert.NotContains(t, out, "\033[1;2H")

	c.Clear()
	c.FillRect(-50, -50, 10, 10)
	c.FillRect(200, 200, 10, 10)
	assert.NotPanics(t, func() { render(c) })
}

func TestResizeForcesRedraw(t *testing.T) {
	c := NewScaledCanvas(4, 2, 40, 40)
	c.FillRect(0, 0, 10, 10)
	render(c)

	c.Resize(8, 4)
	assert.Equal(t, 8, c.TerminalWidth())
	assert.Equal(t, 4, c.TerminalHeight())
	c.FillRect(0, 0, 5, 5)
	assert.Contains(t, render(c), "\033[1;1H")
}

func TestLineAndFilledPolygon(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(Point{X: 0, Y: 0}, Point{X: 3, Y: 3})
	out := render(c)
	assert.Contains(t, out, "\033[1;1H▀")
	assert.Contains(t, out, "\033[1;2H▄")
	assert.Contains(t, out, "\033[2;3H▀")
	assert.Contains(t, out, "\033[2;4H▄")

	c = NewCanvas(4, 2)
	pts := c.BorrowPoints(4)
	pts[0], pts[1], pts[2], pts[3] = Point{X: 0, Y: 0}, Point{X: 3, Y: 0}, Point{X: 3, Y: 3}, Point{X: 0, Y: 3}
	c.DrawPolygon(pts, true)
	out = render(c)
	for _, cell := range []string{"1;1", "1;4", "2;1", "2;4"} {
		assert.Contains(t, out, "\033["+cell+"H█")
	}
}

func TestBorderOnlyWithOffset(t *testing.T) {
	c := NewCanvas(3, 1)
	var out bytes.Buffer
	c.RenderBorder(&out)
	assert.Empty(t, out.String())

	c.SetOffset(1, 1)
	c.RenderBorder(&out)
	assert.Equal(t, "\033[1;1H┌───┐\033[3;1H└───┘\033[2;1H│\033[2;5H│", out.String())
}

func TestShapesStayOnCanvas(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	assert.NotPanics(t, func() {
		c.Ship(375, 540, 50, 50, false, 3)
		c.Ship(-20, 590, 50, 50, true, 0)
		c.Rock(100, 100, 30, 45, "asteroid-3")
		c.Rock(790, -40, 30, 0, "")
		c.Diamond(400, 0, 30, 30)
		c.Explosion(200, 200, 40, 8, 9)
		c.Explosion(200, 200, 40, 0, 0)
		c.DrawCircle(400, 300, 35, false)
	})
	assert.NotEmpty(t, render(c))
}

func TestRockOutlineIsStablePerSeed(t *testing.T) {
	a := NewScaledCanvas(40, 20, 200, 200)
	b := NewScaledCanvas(40, 20, 200, 200)
	a.Rock(100, 100, 60, 10, "rock-a")
	b.Rock(100, 100, 60, 10, "rock-a")
	assert.Equal(t, render(a), render(b))
}

func TestMeterAndShades(t *testing.T) {
	assert.Equal(t, "     ", Meter(0, 5))
	assert.Equal(t, "█████", Meter(1, 5))
	assert.Equal(t, "██▒  ", Meter(0.5, 5))
	assert.Equal(t, ' ', ShadeLevel(-1))
	assert.Equal(t, '█', ShadeLevel(2))
}

func TestTextCentered(t *testing.T) {
	txt := Centered(20, 3, "GAME OVER")
	assert.Equal(t, 6, txt.Col)
	assert.Equal(t, 3, txt.Row)
	assert.Equal(t, 9, txt.Width())

	assert.Equal(t, 1, Centered(4, 1, "too wide for it").Col)
}

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	Text{Col: 0, Row: 1, Value: "Score: 50"}.Draw(cw)
	Text{Col: 5, Row: 5}.Draw(cw)
	cw.ClearRow(2, 3)
	assert.Equal(t, "\033[2;3HScore: 50\033[3;3H   ", cw.Pending())

	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[2;3HScore: 50\033[3;3H   ", out.String())
	assert.Empty(t, cw.Pending())
}
