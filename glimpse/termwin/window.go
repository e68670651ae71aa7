// Package termwin runs the harness inside a terminal. Every terminal cell
// shows two vertically stacked pixels using the upper half block glyph.
package termwin

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/pixloop/glimpse"
)

var nextWindowID atomic.Uint64

const DefaultFrameInterval = 16 * time.Millisecond

type Options struct {
	// FrameInterval is the minimum time between two redraws.
	FrameInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.FrameInterval <= 0 {
		o.FrameInterval = DefaultFrameInterval
	}

	return o
}

// Window is a glimpse.Window backed by a tcell screen. The surface size is
// reported in pixels, that is one pixel per column and two per row.
//
// Terminals do not report key releases, every key press is delivered as
// a Press immediately followed by a Release.
type Window struct {
	id     glimpse.WindowID
	screen tcell.Screen
	opts   Options

	events chan tcell.Event
	done   chan struct{}

	// currently pressed mouse buttons
	buttons tcell.ButtonMask

	redrawRequested bool
	exit            bool
}

var _ glimpse.Window = (*Window)(nil)

func NewWindow(opts Options) (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}

	return NewWindowFromScreen(screen, opts)
}

// NewWindowFromScreen initializes the given screen and wraps it
// into a Window.
func NewWindowFromScreen(screen tcell.Screen, opts Options) (*Window, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialize screen: %w", err)
	}

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	w := &Window{
		id:     glimpse.WindowID(nextWindowID.Add(1)),
		screen: screen,
		opts:   opts.withDefaults(),
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}

	cols, rows := screen.Size()
	slog.Info("Terminal initialized",
		slog.Int("columns", cols),
		slog.Int("rows", rows),
	)

	go w.poll()

	return w, nil
}

func (w *Window) poll() {
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			// screen was finalized
			return
		}

		select {
		case w.events <- ev:
		case <-w.done:
			return
		}
	}
}

func (w *Window) Screen() tcell.Screen {
	return w.screen
}

func (w *Window) ID() glimpse.WindowID {
	return w.id
}

func (w *Window) Size() (uint32, uint32) {
	cols, rows := w.screen.Size()
	return pixelSize(cols, rows)
}

func (w *Window) RequestRedraw() {
	w.redrawRequested = true
}

func (w *Window) Exit() {
	w.exit = true
}

func (w *Window) Terminate() {
	select {
	case <-w.done:
	default:
		close(w.done)
	}

	w.screen.Fini()
}

// Run delivers terminal events as they arrive. Every frame interval it
// sends AboutToWait followed by a RedrawRequested if one was requested.
func (w *Window) Run(handler func(ev glimpse.Event)) error {
	ticker := time.NewTicker(w.opts.FrameInterval)
	defer ticker.Stop()

	for !w.exit {
		select {
		case ev := <-w.events:
			for _, ev := range w.translate(ev) {
				handler(ev)

				if w.exit {
					break
				}
			}

		case <-ticker.C:
			handler(glimpse.AboutToWait{})

			if w.redrawRequested && !w.exit {
				w.redrawRequested = false
				handler(glimpse.RedrawRequested{Window: w.id})
			}
		}
	}

	return nil
}

func (w *Window) translate(ev tcell.Event) []glimpse.Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		width, height := pixelSize(ev.Size())
		return []glimpse.Event{glimpse.Resized{Window: w.id, Width: width, Height: height}}

	case *tcell.EventKey:
		if isInterrupt(ev) {
			return []glimpse.Event{glimpse.CloseRequested{Window: w.id}}
		}

		key := keyOf(ev)
		if key == glimpse.KeyUnknown {
			return nil
		}

		return []glimpse.Event{
			glimpse.KeyInput{Window: w.id, Key: key, Action: glimpse.Press},
			glimpse.KeyInput{Window: w.id, Key: key, Action: glimpse.Release},
		}

	case *tcell.EventMouse:
		return w.translateMouse(ev)
	}

	return nil
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button glimpse.MouseButton
}{
	{tcell.Button1, glimpse.MouseButtonLeft},
	{tcell.Button2, glimpse.MouseButtonRight},
	{tcell.Button3, glimpse.MouseButtonMiddle},
}

func (w *Window) translateMouse(ev *tcell.EventMouse) []glimpse.Event {
	col, row := ev.Position()

	// center of the cell in pixel coordinates
	events := []glimpse.Event{
		glimpse.CursorMoved{Window: w.id, X: float32(col) + 0.5, Y: float32(row*2) + 1},
	}

	buttons := ev.Buttons()

	for _, mb := range mouseButtons {
		wasDown := w.buttons&mb.mask != 0
		isDown := buttons&mb.mask != 0

		switch {
		case isDown && !wasDown:
			events = append(events, glimpse.MouseButtonInput{Window: w.id, Button: mb.button, Action: glimpse.Press})
		case wasDown && !isDown:
			events = append(events, glimpse.MouseButtonInput{Window: w.id, Button: mb.button, Action: glimpse.Release})
		}
	}

	w.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	var wheel glimpse.MouseWheel
	if buttons&tcell.WheelUp != 0 {
		wheel.DeltaY += 1
	}

	if buttons&tcell.WheelDown != 0 {
		wheel.DeltaY -= 1
	}

	if buttons&tcell.WheelLeft != 0 {
		wheel.DeltaX -= 1
	}

	if buttons&tcell.WheelRight != 0 {
		wheel.DeltaX += 1
	}

	if wheel.DeltaX != 0 || wheel.DeltaY != 0 {
		wheel.Window = w.id
		events = append(events, wheel)
	}

	return events
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}

	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C')
}

func pixelSize(cols, rows int) (uint32, uint32) {
	return uint32(max(cols, 0)), uint32(max(rows, 0) * 2)
}
