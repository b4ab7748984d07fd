package terminal

// KeyType identifies a logical key.
type KeyType int

// Key types.
const (
	KeyChar   KeyType = iota // A single input byte, including control bytes
	KeyEscape                // Escape key (standalone or unrecognised sequence)
	KeyUp                    // Arrow up
	KeyDown                  // Arrow down
	KeyLeft                  // Arrow left
	KeyRight                 // Arrow right
	KeyHome                  // Home
	KeyEnd                   // End
	KeyDelete                // Delete/Forward-delete
	KeyPgUp                  // Page Up
	KeyPgDn                  // Page Down
)

var keyNames = [...]string{
	KeyChar:   "Char",
	KeyEscape: "Escape",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyHome:   "Home",
	KeyEnd:    "End",
	KeyDelete: "Delete",
	KeyPgUp:   "PageUp",
	KeyPgDn:   "PageDown",
}

func (k KeyType) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// Key is one decoded keypress. Ch is only meaningful for KeyChar.
type Key struct {
	Type KeyType
	Ch   byte
}

// Bytes with a fixed meaning in raw mode.
const (
	Esc       byte = 0x1b
	Enter     byte = '\r'
	Backspace byte = 127
)

// Ctrl returns the byte the terminal sends for Ctrl plus the given letter.
func Ctrl(c byte) byte {
	return c & 0x1f
}

// Char returns the key for a literal input byte.
func Char(c byte) Key {
	return Key{Type: KeyChar, Ch: c}
}

// IsChar reports whether k is the literal byte c.
func (k Key) IsChar(c byte) bool {
	return k.Type == KeyChar && k.Ch == c
}
