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

// Package gui connects a window to the render pipeline. The Window interface
// is implemented by the sdlwindow and glfwwindow packages, each of which
// creates a window with an OpenGL 3.2 core context.
//
// Run() is the event loop. It blocks, waiting for events from the window, and
// draws a frame in response to redraw and resize events. It returns when the
// window is closed. Run() and all Window methods must be called from the
// thread that created the window, which for most platforms must be the main
// thread. Callers should use runtime.LockOSThread() early in the program.
package gui
