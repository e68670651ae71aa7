package glimpse

import "strconv"

// Key is a platform independent key code. Providers translate their native
// key codes into a Key and report KeyUnknown for keys without a mapping.
type Key uint16

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt

	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "Unknown",

	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",

	KeyLeft:  "Left",
	KeyRight: "Right",
	KeyUp:    "Up",
	KeyDown:  "Down",

	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",

	KeyMinus:  "Minus",
	KeyEqual:  "Equal",
	KeyComma:  "Comma",
	KeyPeriod: "Period",
	KeySlash:  "Slash",
}

func init() {
	for key := KeyA; key <= KeyZ; key++ {
		keyNames[key] = string(rune('A' + key - KeyA))
	}

	for key := Key0; key <= Key9; key++ {
		keyNames[key] = string(rune('0' + key - Key0))
	}

	for key := KeyF1; key <= KeyF12; key++ {
		keyNames[key] = "F" + strconv.Itoa(int(key-KeyF1)+1)
	}
}

func (k Key) String() string {
	if k >= keyCount {
		return "Key(" + strconv.Itoa(int(k)) + ")"
	}

	return keyNames[k]
}

// KeyOfRune maps printable ascii characters to their key. Upper and lower
// case letters map to the same key.
func KeyOfRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}

	switch r {
	case ' ':
		return KeySpace
	case '-':
		return KeyMinus
	case '=':
		return KeyEqual
	case ',':
		return KeyComma
	case '.':
		return KeyPeriod
	case '/':
		return KeySlash
	}

	return KeyUnknown
}
