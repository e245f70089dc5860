package draw

import "unicode/utf8"

// Text is a string placed at a 1-based terminal cell.
type Text struct {
	Col   int
	Row   int
	Value string
}

// Centered returns text centered horizontally in a row of the given width.
func Centered(width, row int, value string) Text {
	col := (width-utf8.RuneCountInString(value))/2 + 1
	return Text{Col: max(col, 1), Row: row, Value: value}
}

// Draw queues the text on cw. Positions below 1 are clamped.
func (t Text) Draw(cw *ChunkWriter) {
	if t.Value == "" {
		return
	}
	cw.WriteAt(max(t.Col, 1), max(t.Row, 1), t.Value)
}

// Width returns the number of terminal cells the text occupies.
func (t Text) Width() int {
	return utf8.RuneCountInString(t.Value)
}
