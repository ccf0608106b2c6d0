// This file is part of glblur.
//
// glblur is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glblur is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glblur.  If not, see <https://www.gnu.org/licenses/>.

package gui_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/jetsetilly/glblur/glapi/fakegl"
	"github.com/jetsetilly/glblur/gui"
	"github.com/jetsetilly/glblur/render"
	"github.com/jetsetilly/glblur/test"
)

// window returns events from a list. a close event is returned once the list
// has been exhausted
type window struct {
	events []gui.Event
	swaps  int
}

func (win *window) ProcAddr(_ string) unsafe.Pointer {
	return nil
}

func (win *window) PixelFormat() string {
	return "test"
}

func (win *window) WaitEvent() gui.Event {
	if len(win.events) == 0 {
		return gui.Event{ID: gui.EventClose}
	}
	ev := win.events[0]
	win.events = win.events[1:]
	return ev
}

func (win *window) SwapBuffers() {
	win.swaps++
}

func (win *window) Destroy() error {
	return nil
}

type renderer struct {
	frames  int
	clear   render.Color
	resized [2]int32
}

func (r *renderer) RenderFrame(clear render.Color) {
	r.frames++
	r.clear = clear
}

func (r *renderer) Resize(width int32, height int32) {
	r.resized = [2]int32{width, height}
}

func TestRunUntilClose(t *testing.T) {
	win := &window{
		events: []gui.Event{
			{ID: gui.EventRedraw},
			{ID: gui.EventNone},
			{ID: gui.EventRedraw},
			{ID: gui.EventClose},
			{ID: gui.EventRedraw},
		},
	}
	r := &renderer{}

	var afterFirst int
	err := gui.Run(win, r, render.White, func() error {
		afterFirst++
		return nil
	})
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, r.frames, 2)
	test.ExpectEquality(t, r.clear, render.White)
	test.ExpectEquality(t, win.swaps, 2)
	test.ExpectEquality(t, afterFirst, 1)

	// event after the close is never seen
	test.ExpectEquality(t, len(win.events), 1)
}

func TestResizeRedraws(t *testing.T) {
	win := &window{
		events: []gui.Event{
			{ID: gui.EventResize, Data: gui.EventDataResize{Width: 320, Height: 200}},
		},
	}
	r := &renderer{}

	err := gui.Run(win, r, render.DefaultClear, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.frames, 1)
	test.ExpectEquality(t, r.resized, [2]int32{320, 200})
}

func TestAfterFirstError(t *testing.T) {
	win := &window{
		events: []gui.Event{
			{ID: gui.EventRedraw},
			{ID: gui.EventRedraw},
		},
	}
	r := &renderer{}

	sentinel := errors.New("test error")
	err := gui.Run(win, r, render.DefaultClear, func() error {
		return sentinel
	})
	test.ExpectEquality(t, err, sentinel)
	test.ExpectEquality(t, r.frames, 1)

	// the buffers are not swapped if afterFirst fails
	test.ExpectEquality(t, win.swaps, 0)
}

func TestRunWithPipeline(t *testing.T) {
	gl := fakegl.NewGL(32, 32)
	pl, err := render.NewPipeline(gl, render.DefaultOptions())
	test.DemandSuccess(t, err)
	defer pl.Destroy()

	win := &window{
		events: []gui.Event{
			{ID: gui.EventRedraw},
			{ID: gui.EventResize, Data: gui.EventDataResize{Width: 64, Height: 40}},
		},
	}

	err = gui.Run(win, pl, render.DefaultClear, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, win.swaps, 2)

	// the pipeline resized the viewport but not the render targets
	_, _, w, h := gl.GetViewport()
	test.ExpectEquality(t, w, 64)
	test.ExpectEquality(t, h, 40)
	tw, th := pl.TargetSize()
	test.ExpectEquality(t, tw, 32)
	test.ExpectEquality(t, th, 32)
}

func TestEventString(t *testing.T) {
	test.ExpectEquality(t, gui.EventClose.String(), "close")
	test.ExpectEquality(t, gui.EventResize.String(), "resize")
	test.ExpectEquality(t, gui.EventID(99).String(), "unknown event (99)")
}
