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

package render

import "github.com/jetsetilly/glblur/framebuffer"

// Sentinel error patterns returned by NewPipeline().
const (
	// shader stage, shader program name, driver info log
	ShaderCompileError = "render: shader compile: %s (%s): %s"

	// shader program name, driver info log
	ProgramLinkError = "render: program link: %s: %s"

	// the framebuffer error is wrapped by the render package
	FramebufferIncompleteError = framebuffer.IncompleteError
	FramebufferError           = "render: %v"

	ViewportError = "render: unusable viewport: %dx%d"
)
