package termwin

import (
	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/pixloop/glimpse"
)

var tcellToKey = map[tcell.Key]glimpse.Key{
	tcell.KeyEnter:      glimpse.KeyEnter,
	tcell.KeyEscape:     glimpse.KeyEscape,
	tcell.KeyTab:        glimpse.KeyTab,
	tcell.KeyBackspace:  glimpse.KeyBackspace,
	tcell.KeyBackspace2: glimpse.KeyBackspace,
	tcell.KeyDelete:     glimpse.KeyDelete,
	tcell.KeyInsert:     glimpse.KeyInsert,
	tcell.KeyHome:       glimpse.KeyHome,
	tcell.KeyEnd:        glimpse.KeyEnd,
	tcell.KeyPgUp:       glimpse.KeyPageUp,
	tcell.KeyPgDn:       glimpse.KeyPageDown,

	tcell.KeyLeft:  glimpse.KeyLeft,
	tcell.KeyRight: glimpse.KeyRight,
	tcell.KeyUp:    glimpse.KeyUp,
	tcell.KeyDown:  glimpse.KeyDown,

	tcell.KeyF1:  glimpse.KeyF1,
	tcell.KeyF2:  glimpse.KeyF2,
	tcell.KeyF3:  glimpse.KeyF3,
	tcell.KeyF4:  glimpse.KeyF4,
	tcell.KeyF5:  glimpse.KeyF5,
	tcell.KeyF6:  glimpse.KeyF6,
	tcell.KeyF7:  glimpse.KeyF7,
	tcell.KeyF8:  glimpse.KeyF8,
	tcell.KeyF9:  glimpse.KeyF9,
	tcell.KeyF10: glimpse.KeyF10,
	tcell.KeyF11: glimpse.KeyF11,
	tcell.KeyF12: glimpse.KeyF12,
}

func keyOf(ev *tcell.EventKey) glimpse.Key {
	if ev.Key() == tcell.KeyRune {
		return glimpse.KeyOfRune(ev.Rune())
	}

	return tcellToKey[ev.Key()]
}
