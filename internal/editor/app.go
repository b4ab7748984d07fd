package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/JackWReid/kilo/internal/config"
	"github.com/JackWReid/kilo/internal/logutil"
	"github.com/JackWReid/kilo/internal/terminal"
)

var Version = "0.0.1"

var logger = logutil.GetLogger("[editor] ")

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// KeyReader delivers one logical key per call.
type KeyReader interface {
	ReadKey() (terminal.Key, error)
}

// App is the editor session: the document, cursor, viewport and status
// state, all owned by the control loop.
type App struct {
	buf       *Buffer
	viewport  *Viewport
	renderer  *Renderer
	statusBar *StatusBar
	store     Store
	cfg       config.Config

	filename string
	cx, cy   int // Cursor: stored column and row
	rx       int // Rendered column of the cursor, set by scroll

	quitTimes int
	quit      bool
	find      findState

	keys KeyReader
	out  io.Writer
}

func NewApp(cfg config.Config, filename string) *App {
	return &App{
		buf:       NewBuffer(cfg.TabStop),
		viewport:  NewViewport(0, 0),
		renderer:  NewRenderer(),
		statusBar: NewStatusBar(cfg.MessageTimeout),
		store:     FileStore{},
		cfg:       cfg,
		filename:  filename,
		quitTimes: cfg.QuitTimes,
	}
}

// Run opens the file (if any), takes over the terminal and edits until the
// user quits. The terminal is cleared and restored on every return path.
func (a *App) Run() (err error) {
	if a.filename != "" {
		if err := a.open(a.filename); err != nil {
			return err
		}
	}

	t, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		a.clearScreen(t)
		if rerr := t.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	rows, cols, err := t.Size()
	if err != nil {
		return err
	}
	logger.Printf("terminal is %d rows x %d cols", rows, cols)
	a.attach(terminal.NewDecoder(t), t, rows, cols)
	a.statusBar.SetMessage(helpMessage)

	return a.loop()
}

func (a *App) attach(keys KeyReader, out io.Writer, rows, cols int) {
	a.keys = keys
	a.out = out
	a.viewport.Resize(rows, cols)
}

// loop draws, reads one key and applies it, until the user quits.
func (a *App) loop() error {
	for !a.quit {
		if err := a.refresh(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		key, err := a.keys.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		a.ProcessKey(key)
	}
	return nil
}

// open loads a file into an empty buffer. The document starts clean.
func (a *App) open(filename string) error {
	lines, err := a.store.Load(filename)
	if err != nil {
		return err
	}
	for _, line := range lines {
		a.buf.InsertRow(a.buf.NumRows(), line)
	}
	a.buf.Dirty = 0
	a.filename = filename
	logger.Printf("opened %s: %d rows", filename, len(lines))
	return nil
}

// scroll computes the rendered cursor column and snaps the viewport to it.
func (a *App) scroll() {
	a.rx = a.buf.RenderCol(a.cy, a.cx)
	a.viewport.Scroll(a.cy, a.rx)
}

// frame composes the current screen.
func (a *App) frame() string {
	a.scroll()
	numRows := a.buf.NumRows()
	return a.renderer.RenderFrame(
		a.buf,
		a.viewport,
		a.cy,
		a.rx,
		a.statusBar.FormatLeft(a.filename, numRows, a.buf.Dirty > 0),
		a.statusBar.FormatRight(a.cy, numRows),
		a.statusBar.Message(),
		numRows == 0 && a.filename == "",
	)
}

// refresh draws the current screen with a single write.
func (a *App) refresh() error {
	_, err := io.WriteString(a.out, a.frame())
	return err
}

func (a *App) clearScreen(w io.Writer) {
	io.WriteString(w, "\x1b[2J\x1b[H")
}
