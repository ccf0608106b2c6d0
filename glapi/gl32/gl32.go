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

// Package gl32 implements the glapi.API interface with the OpenGL 3.2 core
// profile bindings from go-gl.
package gl32

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glblur/glapi"
)

// GL32 is an implementation of glapi.API. There is no state in the type, the
// driver holds all of it.
type GL32 struct{}

// ProcAddrFunc resolves the named GL entry point for the current context.
type ProcAddrFunc func(name string) unsafe.Pointer

// NewGL32 loads the GL entry points with the supplied resolver. The context
// that procAddr belongs to must be current on the calling thread.
func NewGL32(procAddr ProcAddrFunc) (*GL32, error) {
	err := gl.InitWithProcAddrFunc(procAddr)
	if err != nil {
		return nil, fmt.Errorf("gl32: %w", err)
	}
	return &GL32{}, nil
}

// the gl package expects null terminated strings
func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

// ptr converts a slice to a pointer suitable for the gl package. an empty
// slice is converted to a nil pointer.
func ptr[T uint8 | float32](data []T) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func (*GL32) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (*GL32) CreateShader(shaderType uint32) uint32 {
	return gl.CreateShader(shaderType)
}

func (*GL32) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

func (*GL32) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*GL32) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (*GL32) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	// the log length includes the NULL character
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*GL32) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*GL32) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*GL32) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*GL32) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*GL32) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (*GL32) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*GL32) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*GL32) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*GL32) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, cstr(name))
}

func (*GL32) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, cstr(name))
}

func (*GL32) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (*GL32) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (*GL32) Uniform2f(location int32, v0 float32, v1 float32) {
	gl.Uniform2f(location, v0, v1)
}

func (*GL32) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*GL32) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (*GL32) BufferData(target uint32, data []float32, usage uint32) {
	gl.BufferData(target, len(data)*4, ptr(data), usage)
}

func (*GL32) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (*GL32) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*GL32) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (*GL32) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (*GL32) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (*GL32) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*GL32) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (*GL32) ActiveTexture(texture uint32) {
	gl.ActiveTexture(texture)
}

func (*GL32) BindTexture(target uint32, texture uint32) {
	gl.BindTexture(target, texture)
}

func (*GL32) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, ptr(pixels))
}

func (*GL32) TexParameteri(target uint32, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (*GL32) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (*GL32) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (*GL32) BindFramebuffer(target uint32, framebuffer uint32) {
	gl.BindFramebuffer(target, framebuffer)
}

func (*GL32) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
}

func (*GL32) FramebufferRenderbuffer(target uint32, attachment uint32, renderbufferTarget uint32, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(target, attachment, renderbufferTarget, renderbuffer)
}

func (*GL32) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (*GL32) DeleteFramebuffer(framebuffer uint32) {
	gl.DeleteFramebuffers(1, &framebuffer)
}

func (*GL32) GenRenderbuffer() uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (*GL32) BindRenderbuffer(target uint32, renderbuffer uint32) {
	gl.BindRenderbuffer(target, renderbuffer)
}

func (*GL32) RenderbufferStorage(target uint32, internalFormat uint32, width int32, height int32) {
	gl.RenderbufferStorage(target, internalFormat, width, height)
}

func (*GL32) DeleteRenderbuffer(renderbuffer uint32) {
	gl.DeleteRenderbuffers(1, &renderbuffer)
}

func (*GL32) ClearColor(r float32, g float32, b float32, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*GL32) Clear(mask uint32) {
	gl.Clear(mask)
}

func (*GL32) Enable(capability uint32) {
	gl.Enable(capability)
}

func (*GL32) Disable(capability uint32) {
	gl.Disable(capability)
}

func (*GL32) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (*GL32) Viewport(x int32, y int32, width int32, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*GL32) GetViewport() (int32, int32, int32, int32) {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	return vp[0], vp[1], vp[2], vp[3]
}

func (*GL32) ReadPixels(x int32, y int32, width int32, height int32, pixels []uint8) {
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, ptr(pixels))
}

// compile time check that GL32 satisfies the glapi.API interface
var _ glapi.API = (*GL32)(nil)
