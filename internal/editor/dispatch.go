package editor

import "github.com/JackWReid/kilo/internal/terminal"

// ProcessKey applies one key to the session.
func (a *App) ProcessKey(key terminal.Key) {
	if a.statusBar.Prompt != PromptNone {
		a.handlePromptKey(key)
		a.quitTimes = a.cfg.QuitTimes
		return
	}

	switch key.Type {
	case terminal.KeyChar:
		switch key.Ch {
		case terminal.Ctrl('q'):
			a.requestQuit()
			return
		case terminal.Enter:
			a.insertNewline()
		case terminal.Ctrl('s'):
			a.save()
		case terminal.Ctrl('f'):
			a.startFind()
		case terminal.Backspace, terminal.Ctrl('h'):
			a.deleteChar()
		case terminal.Ctrl('l'):
			// Nothing to do; every key redraws the screen.
		default:
			a.insertChar(key.Ch)
		}
	case terminal.KeyDelete:
		a.moveCursor(terminal.KeyRight)
		a.deleteChar()
	case terminal.KeyHome:
		a.cx = 0
	case terminal.KeyEnd:
		a.cx = a.buf.RowLen(a.cy)
	case terminal.KeyPgUp, terminal.KeyPgDn:
		a.page(key.Type)
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		a.moveCursor(key.Type)
	}
	a.quitTimes = a.cfg.QuitTimes
}

func (a *App) handlePromptKey(key terminal.Key) {
	switch a.statusBar.Prompt {
	case PromptSaveAs:
		text, done, cancelled := a.statusBar.HandlePromptKey(key)
		if cancelled {
			a.statusBar.SetMessage("Save aborted")
			return
		}
		if done {
			a.filename = text
			a.writeFile()
		}

	case PromptFind:
		_, done, cancelled := a.statusBar.HandlePromptKey(key)
		if cancelled {
			a.cancelFind()
			return
		}
		if done {
			a.endFind()
			return
		}
		a.findNext(a.statusBar.PromptText, key)
	}
}

// requestQuit quits at once when the document is clean. Otherwise the user
// has to repeat the request QuitTimes times in a row.
func (a *App) requestQuit() {
	if a.buf.Dirty > 0 {
		a.quitTimes--
		if a.quitTimes > 0 {
			a.statusBar.SetMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", a.quitTimes)
			return
		}
	}
	a.quit = true
}

// insertChar inserts a character at the cursor and advances the cursor.
// On the line past the end of the document a new row is created first.
func (a *App) insertChar(c byte) {
	if a.cy == a.buf.NumRows() {
		a.buf.InsertRow(a.buf.NumRows(), nil)
	}
	a.buf.InsertChar(a.cy, a.cx, c)
	a.cx++
}

// insertNewline splits the current row at the cursor.
func (a *App) insertNewline() {
	if a.cx == 0 {
		a.buf.InsertRow(a.cy, nil)
	} else {
		a.buf.SplitRow(a.cy, a.cx)
	}
	a.cy++
	a.cx = 0
}

// deleteChar deletes the character before the cursor (backspace). At column
// 0 the row is joined onto the previous one.
func (a *App) deleteChar() {
	if a.cy == a.buf.NumRows() {
		return
	}
	if a.cx == 0 && a.cy == 0 {
		return
	}

	if a.cx > 0 {
		a.buf.DeleteChar(a.cy, a.cx-1)
		a.cx--
		return
	}
	a.cx = a.buf.RowLen(a.cy - 1)
	a.buf.AppendBytes(a.cy-1, a.buf.Row(a.cy).Chars())
	a.buf.DeleteRow(a.cy)
	a.cy--
}

// moveCursor moves the cursor one cell, wrapping across row ends, then
// clamps the column to the new row.
func (a *App) moveCursor(dir terminal.KeyType) {
	row := a.buf.Row(a.cy)
	switch dir {
	case terminal.KeyLeft:
		if a.cx > 0 {
			a.cx--
		} else if a.cy > 0 {
			a.cy--
			a.cx = a.buf.RowLen(a.cy)
		}
	case terminal.KeyRight:
		if row != nil && a.cx < row.Len() {
			a.cx++
		} else if row != nil && a.cx == row.Len() {
			a.cy++
			a.cx = 0
		}
	case terminal.KeyUp:
		if a.cy > 0 {
			a.cy--
		}
	case terminal.KeyDown:
		if a.cy < a.buf.NumRows() {
			a.cy++
		}
	}
	a.clampCursor()
}

func (a *App) clampCursor() {
	a.cy = clamp(a.cy, 0, a.buf.NumRows())
	a.cx = clamp(a.cx, 0, a.buf.RowLen(a.cy))
}

// page moves the cursor to the top or bottom of the screen, then a full
// screen further.
func (a *App) page(dir terminal.KeyType) {
	arrow := terminal.KeyUp
	if dir == terminal.KeyPgUp {
		a.cy = a.viewport.RowOffset
	} else {
		arrow = terminal.KeyDown
		a.cy = min(a.viewport.RowOffset+a.viewport.Rows-1, a.buf.NumRows())
	}
	a.clampCursor()
	for i := 0; i < a.viewport.Rows; i++ {
		a.moveCursor(arrow)
	}
}

func (a *App) save() {
	if a.filename == "" {
		a.statusBar.StartPrompt(PromptSaveAs, "Save as: %s (ESC to cancel)")
		return
	}
	a.writeFile()
}

// writeFile saves the document. A failure leaves the document dirty.
func (a *App) writeFile() {
	n, err := a.store.Save(a.filename, a.buf.Text())
	if err != nil {
		logger.Printf("save %s failed: %v", a.filename, err)
		a.statusBar.SetMessage("Can't save! I/O error: %v", err)
		return
	}
	a.buf.Dirty = 0
	logger.Printf("saved %s: %d bytes", a.filename, n)
	a.statusBar.SetMessage("%d bytes written to disk", n)
}
