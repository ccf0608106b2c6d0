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

package glapi

import "fmt"

// buffer bits for Clear()
const (
	DepthBufferBit   = 0x00000100
	StencilBufferBit = 0x00000400
	ColorBufferBit   = 0x00004000
)

// primitive types
const (
	Triangles     = 0x0004
	TriangleStrip = 0x0005
)

// data types
const (
	UnsignedByte = 0x1401
	Float        = 0x1406
)

// string queries
const (
	Vendor                 = 0x1F00
	Renderer               = 0x1F01
	Version                = 0x1F02
	ShadingLanguageVersion = 0x8B8C
)

// capabilities
const (
	DepthTest = 0x0B71
)

// buffer objects
const (
	ArrayBuffer = 0x8892
	StaticDraw  = 0x88E4
)

// shaders and programs
const (
	FragmentShader = 0x8B30
	VertexShader   = 0x8B31
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	InfoLogLength  = 0x8B84
)

// textures
const (
	Texture2D        = 0x0DE1
	Texture0         = 0x84C0
	RGBA             = 0x1908
	RGBA8            = 0x8058
	TextureMagFilter = 0x2800
	TextureMinFilter = 0x2801
	TextureWrapS     = 0x2802
	TextureWrapT     = 0x2803
	Linear           = 0x2601
	ClampToEdge      = 0x812F
)

// framebuffers and renderbuffers
const (
	Framebuffer            = 0x8D40
	ReadFramebuffer        = 0x8CA8
	Renderbuffer           = 0x8D41
	ColorAttachment0       = 0x8CE0
	DepthAttachment        = 0x8D00
	DepthStencilAttachment = 0x821A
	Depth24Stencil8        = 0x88F0
)

// framebuffer status values returned by CheckFramebufferStatus()
const (
	FramebufferComplete                    = 0x8CD5
	FramebufferIncompleteAttachment        = 0x8CD6
	FramebufferIncompleteMissingAttachment = 0x8CD7
	FramebufferIncompleteDrawBuffer        = 0x8CDB
	FramebufferIncompleteReadBuffer        = 0x8CDC
	FramebufferUnsupported                 = 0x8CDD
	FramebufferIncompleteMultisample       = 0x8D56
	FramebufferUndefined                   = 0x8219
)

// FramebufferStatusString returns a readable name for a value returned by
// CheckFramebufferStatus().
func FramebufferStatusString(status uint32) string {
	switch status {
	case FramebufferComplete:
		return "complete"
	case FramebufferIncompleteAttachment:
		return "incomplete attachment"
	case FramebufferIncompleteMissingAttachment:
		return "missing attachment"
	case FramebufferIncompleteDrawBuffer:
		return "incomplete draw buffer"
	case FramebufferIncompleteReadBuffer:
		return "incomplete read buffer"
	case FramebufferUnsupported:
		return "unsupported"
	case FramebufferIncompleteMultisample:
		return "incomplete multisample"
	case FramebufferUndefined:
		return "undefined"
	}
	return fmt.Sprintf("unknown status (%#04x)", status)
}
