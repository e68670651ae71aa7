package termwin

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/pixloop/glimpse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T, cols, rows int) (*Window, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")

	w, err := NewWindowFromScreen(screen, Options{FrameInterval: time.Millisecond})
	require.NoError(t, err)

	screen.SetSize(cols, rows)

	t.Cleanup(w.Terminate)

	return w, screen
}

func TestWindowSizeInPixels(t *testing.T) {
	w, _ := newTestWindow(t, 80, 24)

	width, height := w.Size()
	assert.Equal(t, uint32(80), width)
	assert.Equal(t, uint32(48), height)
}

func TestTranslateKeys(t *testing.T) {
	w, _ := newTestWindow(t, 10, 10)

	events := w.translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	assert.Equal(t, []glimpse.Event{
		glimpse.KeyInput{Window: w.ID(), Key: glimpse.KeyA, Action: glimpse.Press},
		glimpse.KeyInput{Window: w.ID(), Key: glimpse.KeyA, Action: glimpse.Release},
	}, events)

	events = w.translate(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Len(t, events, 2)
	assert.Equal(t, glimpse.KeyLeft, events[0].(glimpse.KeyInput).Key)

	events = w.translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	assert.Equal(t, []glimpse.Event{glimpse.CloseRequested{Window: w.ID()}}, events)

	// no mapping
	assert.Empty(t, w.translate(tcell.NewEventKey(tcell.KeyRune, 'ö', tcell.ModNone)))
}

func TestTranslateResize(t *testing.T) {
	w, _ := newTestWindow(t, 10, 10)

	events := w.translate(tcell.NewEventResize(100, 30))
	assert.Equal(t, []glimpse.Event{glimpse.Resized{Window: w.ID(), Width: 100, Height: 60}}, events)
}

func TestTranslateMouse(t *testing.T) {
	w, _ := newTestWindow(t, 10, 10)

	events := w.translate(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	assert.Equal(t, []glimpse.Event{
		glimpse.CursorMoved{Window: w.ID(), X: 3.5, Y: 5},
		glimpse.MouseButtonInput{Window: w.ID(), Button: glimpse.MouseButtonLeft, Action: glimpse.Press},
	}, events)

	// still down, only a move
	events = w.translate(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))
	assert.Len(t, events, 1)

	events = w.translate(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, glimpse.MouseButtonInput{Window: w.ID(), Button: glimpse.MouseButtonLeft, Action: glimpse.Release}, events[1])

	events = w.translate(tcell.NewEventMouse(4, 2, tcell.WheelUp, tcell.ModNone))
	assert.Equal(t, glimpse.MouseWheel{Window: w.ID(), DeltaY: 1}, events[1])
}

func TestWindowRun(t *testing.T) {
	w, screen := newTestWindow(t, 10, 10)

	var keys []glimpse.KeyInput
	var redraws int

	w.RequestRedraw()

	handler := func(ev glimpse.Event) {
		switch ev := ev.(type) {
		case glimpse.RedrawRequested:
			redraws += 1

		case glimpse.KeyInput:
			keys = append(keys, ev)
			if ev.Key == glimpse.KeyQ && ev.Action == glimpse.Press {
				w.Exit()
			}
		}
	}

	// give the window a chance to redraw before the key arrives
	time.AfterFunc(20*time.Millisecond, func() {
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	})

	done := make(chan error, 1)
	go func() { done <- w.Run(handler) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after exit")
	}

	// the release is not delivered after exit
	assert.Equal(t, []glimpse.KeyInput{{Window: w.ID(), Key: glimpse.KeyQ, Action: glimpse.Press}}, keys)
	assert.Equal(t, 1, redraws)
}
