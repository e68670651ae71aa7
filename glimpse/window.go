package glimpse

// Window is implemented by the windowing providers. A Window owns the
// platform event pump: Run blocks and calls handler for every event on the
// calling goroutine until Exit is called or the pump fails.
type Window interface {
	ID() WindowID

	// Size returns the current size of the window surface in physical pixels.
	Size() (uint32, uint32)

	// RequestRedraw asks the window to deliver a RedrawRequested event
	// the next time it is ready to draw.
	RequestRedraw()

	Run(handler func(ev Event)) error

	// Exit stops the event pump after the current event was handled.
	Exit()

	// Terminate releases the window and all platform resources.
	Terminate()
}
