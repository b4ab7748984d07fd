package editor

import (
	"fmt"
	"strings"
)

// Renderer builds a frame buffer and writes it to the terminal in one go.
type Renderer struct {
	buf strings.Builder
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame draws the full screen: text rows, status bar, message bar and
// cursor placement. The viewport must already be scrolled to the cursor.
func (r *Renderer) RenderFrame(
	b *Buffer,
	vp *Viewport,
	cursorRow int,
	renderCol int,
	statusLeft string,
	statusRight string,
	message string,
	welcome bool,
) string {
	r.buf.Reset()

	// Hide cursor during drawing, then home it.
	r.buf.WriteString("\x1b[?25l")
	r.buf.WriteString("\x1b[H")

	r.drawRows(b, vp, welcome)
	r.drawStatusBar(vp.Cols, statusLeft, statusRight)
	r.drawMessageBar(vp.Cols, message)

	y, x := vp.ScreenPos(cursorRow, renderCol)
	fmt.Fprintf(&r.buf, "\x1b[%d;%dH", y+1, x+1)

	// Show cursor.
	r.buf.WriteString("\x1b[?25h")

	return r.buf.String()
}

func (r *Renderer) drawRows(b *Buffer, vp *Viewport, welcome bool) {
	for y := 0; y < vp.Rows; y++ {
		fileRow := y + vp.RowOffset
		if row := b.Row(fileRow); row != nil {
			r.buf.Write(vp.Visible(row.Render()))
		} else if welcome && y == vp.Rows/3 {
			r.drawWelcome(vp.Cols)
		} else {
			r.buf.WriteByte('~')
		}
		// Erase the rest of the line.
		r.buf.WriteString("\x1b[K")
		r.buf.WriteString("\r\n")
	}
}

func (r *Renderer) drawWelcome(cols int) {
	welcome := fmt.Sprintf("Kilo editor -- version %s", Version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		r.buf.WriteByte('~')
		padding--
	}
	r.buf.WriteString(strings.Repeat(" ", padding))
	r.buf.WriteString(welcome)
}

func (r *Renderer) drawStatusBar(cols int, left, right string) {
	// Reverse video for status bar.
	r.buf.WriteString("\x1b[7m")

	if len(left) > cols {
		left = left[:cols]
	}
	r.buf.WriteString(left)
	for n := len(left); n < cols; n++ {
		if cols-n == len(right) {
			r.buf.WriteString(right)
			break
		}
		r.buf.WriteByte(' ')
	}

	// Reset attributes.
	r.buf.WriteString("\x1b[m")
	r.buf.WriteString("\r\n")
}

func (r *Renderer) drawMessageBar(cols int, message string) {
	r.buf.WriteString("\x1b[K")
	if len(message) > cols {
		message = message[:cols]
	}
	r.buf.WriteString(message)
}
