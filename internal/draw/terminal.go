package draw

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal control sequences.
const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// maxChunkSize keeps each write under a typical MTU so SSH sessions stream smoothly.
const maxChunkSize = 1400

// ChunkWriter queues a frame's terminal output and writes it out in
// MTU-sized chunks on Flush. Cursor positions are 1-based canvas cells and
// get the canvas offset added.
type ChunkWriter struct {
	buf            strings.Builder
	out            *bufio.Writer
	offCol, offRow int
}

// NewChunkWriter creates a ChunkWriter for w with the given canvas offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the canvas offset, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

// Write queues raw bytes. Canvas.Render writes through this.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteAt queues s at a 1-based canvas cell.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	writeCursor(&cw.buf, col+cw.offCol, row+cw.offRow)
	cw.buf.WriteString(s)
}

// ClearRow blanks width cells of a 1-based canvas row.
func (cw *ChunkWriter) ClearRow(row, width int) {
	cw.WriteAt(1, row, strings.Repeat(" ", max(width, 0)))
}

// Pending returns the text queued since the last Flush.
func (cw *ChunkWriter) Pending() string {
	return cw.buf.String()
}

// Flush writes everything queued and resets the queue.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return cw.out.Flush()
}

var _ io.Writer = (*ChunkWriter)(nil)

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, clearScreen)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, hideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, showCursor)
}
