package glimpse

// WindowID identifies the window an event belongs to.
type WindowID uint64

// Action describes the transition of a digital input.
type Action uint8

const (
	Press Action = iota + 1
	Release
)

func (a Action) String() string {
	switch a {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		return "Unknown"
	}
}

type MouseButton uint32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Event is a platform event delivered by a Window. The set of events
// is closed, use a type switch to inspect them.
type Event interface {
	isEvent()
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct {
	Window WindowID
}

// Resized is sent after the surface of the window changed its size. Width
// and Height are in physical pixels.
type Resized struct {
	Window        WindowID
	Width, Height uint32
}

// RedrawRequested is sent after a call to Window.RequestRedraw, once per
// request, when the window is ready to draw the next frame.
type RedrawRequested struct {
	Window WindowID
}

// AboutToWait is sent once the window has delivered all pending events and
// is about to wait for new ones.
type AboutToWait struct{}

type KeyInput struct {
	Window WindowID
	Key    Key
	Action Action
}

type MouseButtonInput struct {
	Window WindowID
	Button MouseButton
	Action Action
}

// CursorMoved reports the cursor position in physical pixels relative to
// the top left corner of the window.
type CursorMoved struct {
	Window WindowID
	X, Y   float32
}

// MouseWheel reports a scroll delta in lines (or terminal wheel clicks).
type MouseWheel struct {
	Window         WindowID
	DeltaX, DeltaY float32
}

func (CloseRequested) isEvent()   {}
func (Resized) isEvent()          {}
func (RedrawRequested) isEvent()  {}
func (AboutToWait) isEvent()      {}
func (KeyInput) isEvent()         {}
func (MouseButtonInput) isEvent() {}
func (CursorMoved) isEvent()      {}
func (MouseWheel) isEvent()       {}
