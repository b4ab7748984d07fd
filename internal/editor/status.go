package editor

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/JackWReid/kilo/internal/terminal"
)

// PromptType indicates what kind of prompt is active.
type PromptType int

const (
	PromptNone   PromptType = iota
	PromptSaveAs            // "Save as: " for an untitled document
	PromptFind              // "Search: " incremental find
)

// StatusBar generates status bar text and holds the message bar state,
// including an active prompt.
type StatusBar struct {
	Prompt       PromptType
	PromptText   string // User input during a prompt.
	promptFormat string

	message     string
	messageTime time.Time
	timeout     time.Duration
	now         func() time.Time
}

func NewStatusBar(timeout time.Duration) *StatusBar {
	return &StatusBar{timeout: timeout, now: time.Now}
}

// FormatLeft returns the left-aligned portion of the status bar.
func (s *StatusBar) FormatLeft(filename string, numRows int, dirty bool) string {
	modified := ""
	if dirty {
		modified = "(modified)"
	}
	return fmt.Sprintf("%.20s - %d lines %s", truncatePath(filename), numRows, modified)
}

// FormatRight returns the right-aligned portion of the status bar.
func (s *StatusBar) FormatRight(cursorRow, numRows int) string {
	return fmt.Sprintf("%d/%d", cursorRow+1, numRows)
}

// SetMessage sets the message bar text. It is shown until the timeout passes.
func (s *StatusBar) SetMessage(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageTime = s.now()
}

// ClearMessage clears the message bar.
func (s *StatusBar) ClearMessage() {
	s.message = ""
}

// Message returns the text for the message bar: the active prompt, or the
// latest message if it has not expired.
func (s *StatusBar) Message() string {
	if s.Prompt != PromptNone {
		return fmt.Sprintf(s.promptFormat, s.PromptText)
	}
	if s.message == "" || s.now().Sub(s.messageTime) >= s.timeout {
		return ""
	}
	return s.message
}

// StartPrompt begins a prompt. format must contain one %s for the input.
func (s *StatusBar) StartPrompt(pt PromptType, format string) {
	s.Prompt = pt
	s.PromptText = ""
	s.promptFormat = format
}

// ClearPrompt resets the prompt state.
func (s *StatusBar) ClearPrompt() {
	s.Prompt = PromptNone
	s.PromptText = ""
	s.promptFormat = ""
}

// HandlePromptKey processes a keypress during an active prompt.
// Returns (input string, done bool, cancelled bool).
func (s *StatusBar) HandlePromptKey(key terminal.Key) (string, bool, bool) {
	switch {
	case key.Type == terminal.KeyEscape:
		s.ClearPrompt()
		s.ClearMessage()
		return "", false, true
	case key.Type == terminal.KeyDelete, key.IsChar(terminal.Backspace), key.IsChar(terminal.Ctrl('h')):
		if len(s.PromptText) > 0 {
			s.PromptText = s.PromptText[:len(s.PromptText)-1]
		}
	case key.IsChar(terminal.Enter):
		if s.PromptText == "" {
			return "", false, false
		}
		text := s.PromptText
		s.ClearPrompt()
		s.ClearMessage()
		return text, true, false
	case key.Type == terminal.KeyChar && key.Ch >= 32 && key.Ch < 127:
		s.PromptText += string(key.Ch)
	}
	return "", false, false
}

// truncatePath shortens a file path to parent/basename.
func truncatePath(filename string) string {
	if filename == "" {
		return "[No Name]"
	}
	dir := filepath.Base(filepath.Dir(filename))
	base := filepath.Base(filename)
	if dir == "." || dir == "/" {
		return base
	}
	return dir + "/" + base
}
