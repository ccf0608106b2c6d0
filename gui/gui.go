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

package gui

import (
	"unsafe"

	"github.com/jetsetilly/glblur/render"
)

// Window is a window with a GL context. The context is made current when the
// window is created.
type Window interface {
	// ProcAddr returns the address of the named GL function in the window's
	// context. The function signature matches the requirement of
	// gl.InitWithProcAddrFunc()
	ProcAddr(name string) unsafe.Pointer

	// PixelFormat returns a description of the pixel format of the window.
	// It is for information only
	PixelFormat() string

	// WaitEvent blocks until an event is ready
	WaitEvent() Event

	// SwapBuffers presents the contents of the default framebuffer
	SwapBuffers()

	// Destroy the context and the window
	Destroy() error
}

// Renderer draws a single frame into the current context.
type Renderer interface {
	RenderFrame(clear render.Color)
}

// Resizer is implemented by Renderer implementations that need to know when
// the size of the window has changed.
type Resizer interface {
	Resize(width int32, height int32)
}

// Sentinel error returned if the window or its GL context cannot be created or
// made current.
const ContextAcquisitionError = "gui: context acquisition: %v"

// Sentinel error returned by Run() if it is called from a goroutine other than
// the #mainthread.
const ThreadError = "gui: not called from the main thread"
