package terminal

import "errors"

// ByteSource delivers input one byte at a time. ReadByte returns ErrNoInput
// when no byte arrived within its timeout.
type ByteSource interface {
	ReadByte() (byte, error)
}

// Decoder turns a byte stream into logical keys.
type Decoder struct {
	src ByteSource
}

func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

type decodeState int

const (
	stateIdle    decodeState = iota
	stateEsc                 // ESC read
	stateBracket             // ESC [ read
	stateDigit               // ESC [ <digit> read, expecting ~
	stateG3                  // ESC O read
)

// CSI sequences identified by their final letter: ESC [ <letter>.
var csiLetter = map[byte]KeyType{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
}

// CSI sequences of the form ESC [ <digit> ~.
var csiTilde = map[byte]KeyType{
	'1': KeyHome, '7': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd, '8': KeyEnd,
	'5': KeyPgUp,
	'6': KeyPgDn,
}

// G3 sequences: ESC O <letter>.
var g3Seq = map[byte]KeyType{
	'H': KeyHome, 'F': KeyEnd,
}

// ReadKey blocks until a byte arrives and returns exactly one key. If an
// escape sequence is cut short by the read timeout, or is not one the decoder
// knows, the result is a bare Escape. The bytes read so far are consumed
// either way.
func (d *Decoder) ReadKey() (Key, error) {
	state := stateIdle
	var digit byte
	for {
		b, err := d.src.ReadByte()
		if err != nil {
			if !errors.Is(err, ErrNoInput) {
				return Key{}, err
			}
			if state == stateIdle {
				continue
			}
			return Key{Type: KeyEscape}, nil
		}

		switch state {
		case stateIdle:
			if b != Esc {
				return Char(b), nil
			}
			state = stateEsc
		case stateEsc:
			switch b {
			case '[':
				state = stateBracket
			case 'O':
				state = stateG3
			default:
				return Key{Type: KeyEscape}, nil
			}
		case stateBracket:
			if b >= '0' && b <= '9' {
				digit = b
				state = stateDigit
				continue
			}
			return lookup(csiLetter, b), nil
		case stateDigit:
			if b != '~' {
				return Key{Type: KeyEscape}, nil
			}
			return lookup(csiTilde, digit), nil
		case stateG3:
			return lookup(g3Seq, b), nil
		}
	}
}

func lookup(table map[byte]KeyType, b byte) Key {
	if k, ok := table[b]; ok {
		return Key{Type: k}
	}
	return Key{Type: KeyEscape}
}
