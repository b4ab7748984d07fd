package editor

import (
	"bytes"

	"github.com/JackWReid/kilo/internal/terminal"
)

// findState is the incremental search state, plus the cursor and viewport
// to restore if the search is cancelled.
type findState struct {
	lastMatch int // Row of the last match, -1 for none
	forward   bool

	savedCx, savedCy         int
	savedRowOff, savedColOff int
}

func (a *App) startFind() {
	a.find = findState{
		lastMatch:   -1,
		forward:     true,
		savedCx:     a.cx,
		savedCy:     a.cy,
		savedRowOff: a.viewport.RowOffset,
		savedColOff: a.viewport.ColOffset,
	}
	a.statusBar.StartPrompt(PromptFind, "Search: %s (Use ESC/Arrows/Enter)")
}

// endFind keeps the cursor on the current match.
func (a *App) endFind() {
	a.find.lastMatch = -1
	a.find.forward = true
}

// cancelFind puts the cursor and viewport back where the search started.
func (a *App) cancelFind() {
	a.cx = a.find.savedCx
	a.cy = a.find.savedCy
	a.viewport.RowOffset = a.find.savedRowOff
	a.viewport.ColOffset = a.find.savedColOff
	a.endFind()
}

// findNext searches for query after a prompt key. Arrows step to the next or
// previous match, any other key restarts the search from the last match.
func (a *App) findNext(query string, key terminal.Key) {
	switch key.Type {
	case terminal.KeyRight, terminal.KeyDown:
		a.find.forward = true
	case terminal.KeyLeft, terminal.KeyUp:
		a.find.forward = false
	default:
		a.find.lastMatch = -1
		a.find.forward = true
	}
	if a.find.lastMatch == -1 {
		a.find.forward = true
	}
	if query == "" {
		return
	}

	numRows := a.buf.NumRows()
	current := a.find.lastMatch
	for i := 0; i < numRows; i++ {
		if a.find.forward {
			current++
		} else {
			current--
		}
		if current < 0 {
			current = numRows - 1
		} else if current >= numRows {
			current = 0
		}

		idx := bytes.Index(a.buf.Row(current).Render(), []byte(query))
		if idx < 0 {
			continue
		}
		a.find.lastMatch = current
		a.cy = current
		a.cx = a.buf.RawCol(current, idx)
		// Scroll so the match ends up at the top of the screen.
		a.viewport.RowOffset = numRows
		return
	}
}
