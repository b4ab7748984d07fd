package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/JackWReid/kilo/internal/logutil"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var logger = logutil.GetLogger("[terminal] ")

var (
	// ErrNotTerminal is returned by Open when the input is not a terminal.
	ErrNotTerminal = errors.New("input is not a terminal")
	// ErrNoInput is returned by ReadByte when no byte arrived within the
	// read timeout.
	ErrNoInput = errors.New("no input")

	errBadCursorReport = errors.New("bad cursor position report")
)

// ReadTimeout is how long a single read waits for a byte. It matches the
// VTIME setting applied in raw mode.
const ReadTimeout = 100 * time.Millisecond

// Terminal manages raw mode, reads with a timeout and terminal dimensions.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
	buf      [1]byte
}

// Open puts in into raw mode and returns a Terminal writing to out. The
// caller must call Restore before the process exits.
func Open(in, out *os.File) (*Terminal, error) {
	fd := in.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil, ErrNotTerminal
	}

	oldState, err := term.MakeRaw(int(fd))
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	if err := setReadPolicy(int(fd)); err != nil {
		term.Restore(int(fd), oldState)
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return &Terminal{in: in, out: out, oldState: oldState}, nil
}

// setReadPolicy finishes the raw mode setup that MakeRaw leaves out: parity
// checking off and a read that returns after 100ms with zero bytes.
func setReadPolicy(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	termios.Iflag &^= unix.INPCK
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}

// Restore returns the terminal to the mode saved by Open. It is safe to call
// more than once.
func (t *Terminal) Restore() error {
	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		logger.Printf("restore failed: %v", err)
		return fmt.Errorf("restore terminal mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// ReadByte waits up to ReadTimeout for one byte of input. It returns
// ErrNoInput if nothing arrived in time.
func (t *Terminal) ReadByte() (byte, error) {
	ready, err := waitForRead(int(t.in.Fd()), ReadTimeout)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, ErrNoInput
		}
		return 0, fmt.Errorf("read: %w", err)
	}
	if !ready {
		return 0, ErrNoInput
	}
	n, err := t.in.Read(t.buf[:])
	if n == 1 {
		return t.buf[0], nil
	}
	if err == nil {
		return 0, ErrNoInput
	}
	if errors.Is(err, unix.EAGAIN) {
		return 0, ErrNoInput
	}
	return 0, fmt.Errorf("read: %w", err)
}

func waitForRead(fd int, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Write writes p to the terminal output in a single call.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size returns the terminal dimensions. When the window size ioctl is
// unavailable it moves the cursor to the bottom-right corner and asks the
// terminal where the cursor ended up.
func (t *Terminal) Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	logger.Printf("window size query failed (%v), falling back to cursor report", err)
	if _, err := io.WriteString(t.out, "\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	rows, cols, err = t.CursorPosition()
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	return rows, cols, nil
}

// CursorPosition asks the terminal for the cursor position and returns the
// 1-based row and column it reports.
func (t *Terminal) CursorPosition() (row, col int, err error) {
	if _, err := io.WriteString(t.out, "\x1b[6n"); err != nil {
		return 0, 0, err
	}
	var reply []byte
	for len(reply) < 32 {
		b, err := t.ReadByte()
		if err != nil {
			if errors.Is(err, ErrNoInput) {
				break
			}
			return 0, 0, err
		}
		if b == 'R' {
			break
		}
		reply = append(reply, b)
	}
	return parseCursorReport(reply)
}

// parseCursorReport parses the body of an "ESC [ row ; col R" reply, without
// the trailing R.
func parseCursorReport(reply []byte) (row, col int, err error) {
	if len(reply) < 2 || reply[0] != Esc || reply[1] != '[' {
		return 0, 0, fmt.Errorf("%w: %q", errBadCursorReport, reply)
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadCursorReport, reply)
	}
	return row, col, nil
}
