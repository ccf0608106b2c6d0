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

// API is the graphics capability surface consumed by the render pipeline. All
// methods must be called from the thread that holds the current context.
type API interface {
	// string queries. name is one of Vendor, Renderer, Version or
	// ShadingLanguageVersion
	GetString(name uint32) string

	// shader objects
	CreateShader(shaderType uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// program objects
	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// attribute and uniform locations. both return -1 if the name is not an
	// active attribute or uniform in the linked program
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	// uniform values for the program currently in use
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, v0 float32, v1 float32)

	// vertex buffers and vertex array objects
	GenBuffer() uint32
	BindBuffer(target uint32, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer uint32)
	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	// textures. pixels may be nil to allocate storage without uploading data
	GenTexture() uint32
	ActiveTexture(texture uint32)
	BindTexture(target uint32, texture uint32)
	TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8)
	TexParameteri(target uint32, pname uint32, param int32)
	DeleteTexture(texture uint32)

	// framebuffers and renderbuffers
	GenFramebuffer() uint32
	BindFramebuffer(target uint32, framebuffer uint32)
	FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32)
	FramebufferRenderbuffer(target uint32, attachment uint32, renderbufferTarget uint32, renderbuffer uint32)
	CheckFramebufferStatus(target uint32) uint32
	DeleteFramebuffer(framebuffer uint32)
	GenRenderbuffer() uint32
	BindRenderbuffer(target uint32, renderbuffer uint32)
	RenderbufferStorage(target uint32, internalFormat uint32, width int32, height int32)
	DeleteRenderbuffer(renderbuffer uint32)

	// drawing
	ClearColor(r float32, g float32, b float32, a float32)
	Clear(mask uint32)
	Enable(capability uint32)
	Disable(capability uint32)
	DrawArrays(mode uint32, first int32, count int32)

	// viewport. GetViewport returns the current viewport as x, y, width, height
	Viewport(x int32, y int32, width int32, height int32)
	GetViewport() (int32, int32, int32, int32)

	// ReadPixels reads RGBA/UNSIGNED_BYTE data from the bound read framebuffer.
	// pixels must be at least width*height*4 bytes long
	ReadPixels(x int32, y int32, width int32, height int32, pixels []uint8)
}
