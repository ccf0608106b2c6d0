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

// Package sdlwindow implements the gui.Window interface with SDL2.
//
// SDL2 has no way of requesting a transparent framebuffer. An 8 bit alpha
// channel is requested for the default framebuffer but the window itself is
// composited as opaque, so alpha in the clear colour is not visible on the
// desktop. Use the glfwwindow package when a transparent surface is needed.
package sdlwindow

import (
	"fmt"
	"unsafe"

	"github.com/jetsetilly/glblur/curated"
	"github.com/jetsetilly/glblur/gui"
	"github.com/jetsetilly/glblur/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Window is an SDL window with an OpenGL 3.2 core context.
//
// MUST ONLY be used from the #mainthread
type Window struct {
	window  *sdl.Window
	context sdl.GLContext

	// events that are returned by WaitEvent() before any new SDL events
	pending []gui.Event
}

func setAttributes() error {
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_STENCIL_SIZE, 8},

		// alpha in the default framebuffer. the window is still opaque
		// (see package documentation)
		{sdl.GL_ALPHA_SIZE, 8},
	}

	for _, a := range attrs {
		err := sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			return err
		}
	}

	return nil
}

// NewWindow creates a window of the specified size. The GL context is current
// on return.
func NewWindow(title string, width int32, height int32) (*Window, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(gui.ContextAcquisitionError, fmt.Errorf("sdl: %w", err))
	}

	err = setAttributes()
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.ContextAcquisitionError, fmt.Errorf("sdl: %w", err))
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &Window{}

	win.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.ContextAcquisitionError, fmt.Errorf("sdl: %w", err))
	}

	win.context, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(gui.ContextAcquisitionError, fmt.Errorf("sdl: %w", err))
	}

	err = win.window.GLMakeCurrent(win.context)
	if err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(gui.ContextAcquisitionError, fmt.Errorf("sdl: %w", err))
	}

	// vsync is not essential so an error is only logged
	err = sdl.GLSetSwapInterval(1)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "vsync: %v", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	// the first frame is drawn without waiting for an expose event
	win.pending = append(win.pending, gui.Event{ID: gui.EventRedraw})

	return win, nil
}

// ProcAddr implements the gui.Window interface.
func (win *Window) ProcAddr(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// PixelFormat implements the gui.Window interface.
func (win *Window) PixelFormat() string {
	pf, err := win.window.GetPixelFormat()
	if err != nil {
		return fmt.Sprintf("unknown (%v)", err)
	}

	alpha, _ := sdl.GLGetAttribute(sdl.GL_ALPHA_SIZE)
	depth, _ := sdl.GLGetAttribute(sdl.GL_DEPTH_SIZE)
	stencil, _ := sdl.GLGetAttribute(sdl.GL_STENCIL_SIZE)

	return fmt.Sprintf("%s (alpha %d, depth %d, stencil %d)",
		sdl.GetPixelFormatName(uint(pf)), alpha, depth, stencil)
}

// WaitEvent implements the gui.Window interface. SDL events that have no
// meaning to the gui package are returned as gui.EventNone.
func (win *Window) WaitEvent() gui.Event {
	if len(win.pending) > 0 {
		ev := win.pending[0]
		win.pending = win.pending[1:]
		return ev
	}

	switch ev := sdl.WaitEvent().(type) {
	case nil:
		logger.Logf(logger.Allow, "sdl", "wait event: %v", sdl.GetError())

	case *sdl.QuitEvent:
		return gui.Event{ID: gui.EventClose}

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return gui.Event{ID: gui.EventClose}
		case sdl.WINDOWEVENT_EXPOSED:
			return gui.Event{ID: gui.EventRedraw}
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			w, h := win.window.GLGetDrawableSize()
			return gui.Event{
				ID:   gui.EventResize,
				Data: gui.EventDataResize{Width: w, Height: h},
			}
		}
	}

	return gui.Event{ID: gui.EventNone}
}

// SwapBuffers implements the gui.Window interface.
func (win *Window) SwapBuffers() {
	win.window.GLSwap()
}

// Destroy implements the gui.Window interface.
func (win *Window) Destroy() error {
	if win.context != nil {
		sdl.GLDeleteContext(win.context)
		win.context = nil
	}

	var err error
	if win.window != nil {
		err = win.window.Destroy()
		win.window = nil
	}

	sdl.Quit()

	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// compile time check that Window satisfies the gui.Window interface
var _ gui.Window = (*Window)(nil)
