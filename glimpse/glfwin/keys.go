package glfwin

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/pixloop/glimpse"
)

var glfwToKey = map[glfw.Key]glimpse.Key{
	glfw.KeyA: glimpse.KeyA,
	glfw.KeyB: glimpse.KeyB,
	glfw.KeyC: glimpse.KeyC,
	glfw.KeyD: glimpse.KeyD,
	glfw.KeyE: glimpse.KeyE,
	glfw.KeyF: glimpse.KeyF,
	glfw.KeyG: glimpse.KeyG,
	glfw.KeyH: glimpse.KeyH,
	glfw.KeyI: glimpse.KeyI,
	glfw.KeyJ: glimpse.KeyJ,
	glfw.KeyK: glimpse.KeyK,
	glfw.KeyL: glimpse.KeyL,
	glfw.KeyM: glimpse.KeyM,
	glfw.KeyN: glimpse.KeyN,
	glfw.KeyO: glimpse.KeyO,
	glfw.KeyP: glimpse.KeyP,
	glfw.KeyQ: glimpse.KeyQ,
	glfw.KeyR: glimpse.KeyR,
	glfw.KeyS: glimpse.KeyS,
	glfw.KeyT: glimpse.KeyT,
	glfw.KeyU: glimpse.KeyU,
	glfw.KeyV: glimpse.KeyV,
	glfw.KeyW: glimpse.KeyW,
	glfw.KeyX: glimpse.KeyX,
	glfw.KeyY: glimpse.KeyY,
	glfw.KeyZ: glimpse.KeyZ,

	glfw.Key0: glimpse.Key0,
	glfw.Key1: glimpse.Key1,
	glfw.Key2: glimpse.Key2,
	glfw.Key3: glimpse.Key3,
	glfw.Key4: glimpse.Key4,
	glfw.Key5: glimpse.Key5,
	glfw.Key6: glimpse.Key6,
	glfw.Key7: glimpse.Key7,
	glfw.Key8: glimpse.Key8,
	glfw.Key9: glimpse.Key9,

	glfw.KeySpace:     glimpse.KeySpace,
	glfw.KeyEnter:     glimpse.KeyEnter,
	glfw.KeyKPEnter:   glimpse.KeyEnter,
	glfw.KeyEscape:    glimpse.KeyEscape,
	glfw.KeyTab:       glimpse.KeyTab,
	glfw.KeyBackspace: glimpse.KeyBackspace,
	glfw.KeyDelete:    glimpse.KeyDelete,
	glfw.KeyInsert:    glimpse.KeyInsert,
	glfw.KeyHome:      glimpse.KeyHome,
	glfw.KeyEnd:       glimpse.KeyEnd,
	glfw.KeyPageUp:    glimpse.KeyPageUp,
	glfw.KeyPageDown:  glimpse.KeyPageDown,

	glfw.KeyLeft:  glimpse.KeyLeft,
	glfw.KeyRight: glimpse.KeyRight,
	glfw.KeyUp:    glimpse.KeyUp,
	glfw.KeyDown:  glimpse.KeyDown,

	glfw.KeyF1:  glimpse.KeyF1,
	glfw.KeyF2:  glimpse.KeyF2,
	glfw.KeyF3:  glimpse.KeyF3,
	glfw.KeyF4:  glimpse.KeyF4,
	glfw.KeyF5:  glimpse.KeyF5,
	glfw.KeyF6:  glimpse.KeyF6,
	glfw.KeyF7:  glimpse.KeyF7,
	glfw.KeyF8:  glimpse.KeyF8,
	glfw.KeyF9:  glimpse.KeyF9,
	glfw.KeyF10: glimpse.KeyF10,
	glfw.KeyF11: glimpse.KeyF11,
	glfw.KeyF12: glimpse.KeyF12,

	glfw.KeyLeftShift:    glimpse.KeyLeftShift,
	glfw.KeyRightShift:   glimpse.KeyRightShift,
	glfw.KeyLeftControl:  glimpse.KeyLeftControl,
	glfw.KeyRightControl: glimpse.KeyRightControl,
	glfw.KeyLeftAlt:      glimpse.KeyLeftAlt,
	glfw.KeyRightAlt:     glimpse.KeyRightAlt,

	glfw.KeyMinus:  glimpse.KeyMinus,
	glfw.KeyEqual:  glimpse.KeyEqual,
	glfw.KeyComma:  glimpse.KeyComma,
	glfw.KeyPeriod: glimpse.KeyPeriod,
	glfw.KeySlash:  glimpse.KeySlash,
}
