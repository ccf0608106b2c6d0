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

// Package glfwwindow implements the gui.Window interface with GLFW.
package glfwwindow

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/glblur/curated"
	"github.com/jetsetilly/glblur/gui"
	"github.com/jetsetilly/glblur/logger"
)

// Window is a GLFW window with an OpenGL 3.2 core context.
//
// MUST ONLY be used from the #mainthread
type Window struct {
	window *glfw.Window

	// events are queued by the GLFW callbacks and returned by WaitEvent()
	events []gui.Event
}

// NewWindow creates a window of the specified size. The GL context is current
// on return.
func NewWindow(title string, width int32, height int32) (*Window, error) {
	err := glfw.Init()
	if err != nil {
		return nil, curated.Errorf(gui.ContextAcquisitionError, fmt.Errorf("glfw: %w", err))
	}
	logger.Logf(logger.Allow, "glfw", "version %s", glfw.GetVersionString())

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win := &Window{}

	win.window, err = glfw.CreateWindow(int(width), int(height), title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, curated.Errorf(gui.ContextAcquisitionError, fmt.Errorf("glfw: %w", err))
	}

	win.window.MakeContextCurrent()
	if glfw.GetCurrentContext() != win.window {
		_ = win.Destroy()
		return nil, curated.Errorf(gui.ContextAcquisitionError, fmt.Errorf("glfw: context is not current"))
	}

	glfw.SwapInterval(1)

	win.window.SetCloseCallback(func(_ *glfw.Window) {
		win.events = append(win.events, gui.Event{ID: gui.EventClose})
	})
	win.window.SetRefreshCallback(func(_ *glfw.Window) {
		win.events = append(win.events, gui.Event{ID: gui.EventRedraw})
	})
	win.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width int, height int) {
		win.events = append(win.events, gui.Event{
			ID:   gui.EventResize,
			Data: gui.EventDataResize{Width: int32(width), Height: int32(height)},
		})
	})

	major := win.window.GetAttrib(glfw.ContextVersionMajor)
	minor := win.window.GetAttrib(glfw.ContextVersionMinor)
	logger.Logf(logger.Allow, "glfw", "using GL version %d.%d core", major, minor)

	// the first frame is drawn without waiting for a refresh
	win.events = append(win.events, gui.Event{ID: gui.EventRedraw})

	return win, nil
}

// ProcAddr implements the gui.Window interface.
func (win *Window) ProcAddr(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// PixelFormat implements the gui.Window interface.
func (win *Window) PixelFormat() string {
	transparent := win.window.GetAttrib(glfw.TransparentFramebuffer) == glfw.True
	w, h := win.window.GetFramebufferSize()
	return fmt.Sprintf("%dx%d framebuffer (transparent %v)", w, h, transparent)
}

// WaitEvent implements the gui.Window interface.
func (win *Window) WaitEvent() gui.Event {
	for len(win.events) == 0 {
		glfw.WaitEvents()
	}
	ev := win.events[0]
	win.events = win.events[1:]
	return ev
}

// SwapBuffers implements the gui.Window interface.
func (win *Window) SwapBuffers() {
	win.window.SwapBuffers()
}

// Destroy implements the gui.Window interface.
func (win *Window) Destroy() error {
	if win.window != nil {
		win.window.Destroy()
		win.window = nil
	}
	glfw.Terminate()
	return nil
}

// compile time check that Window satisfies the gui.Window interface
var _ gui.Window = (*Window)(nil)
