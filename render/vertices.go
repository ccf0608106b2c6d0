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

import (
	"github.com/jetsetilly/glblur/glapi"
)

// triangle vertices. each vertex is a 2D position followed by an RGB colour
var triangleVertices = []float32{
	-0.5, -0.5, 1.0, 0.0, 0.0,
	0.0, 0.5, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 1.0,
}

// full screen quad, drawn as a triangle strip. each vertex is a 2D position
var quadVertices = []float32{
	-1.0, -1.0,
	1.0, -1.0,
	-1.0, 1.0,
	1.0, 1.0,
}

const sizeofFloat = 4

// an attribute in an interleaved vertex buffer. size is the number of floats
type attribute struct {
	location int32
	size     int32
}

// a vertex buffer and the vertex array object that describes its layout
type vertexArray struct {
	api   glapi.API
	vao   uint32
	vbo   uint32
	mode  uint32
	count int32
}

// the stride of the buffer is the sum of the attribute sizes. attributes are
// packed in the order they are given
func newVertexArray(api glapi.API, data []float32, mode uint32, attribs ...attribute) *vertexArray {
	var stride int32
	for _, a := range attribs {
		stride += a.size
	}

	va := &vertexArray{
		api:   api,
		mode:  mode,
		count: int32(len(data)) / stride,
	}

	va.vao = api.GenVertexArray()
	api.BindVertexArray(va.vao)

	va.vbo = api.GenBuffer()
	api.BindBuffer(glapi.ArrayBuffer, va.vbo)
	api.BufferData(glapi.ArrayBuffer, data, glapi.StaticDraw)

	var offset int32
	for _, a := range attribs {
		if a.location >= 0 {
			api.VertexAttribPointer(uint32(a.location), a.size, glapi.Float, false,
				stride*sizeofFloat, uintptr(offset*sizeofFloat))
			api.EnableVertexAttribArray(uint32(a.location))
		}
		offset += a.size
	}

	api.BindVertexArray(0)
	api.BindBuffer(glapi.ArrayBuffer, 0)

	return va
}

func (va *vertexArray) draw() {
	va.api.BindVertexArray(va.vao)
	va.api.DrawArrays(va.mode, 0, va.count)
}

func (va *vertexArray) destroy() {
	if va.vbo != 0 {
		va.api.DeleteBuffer(va.vbo)
		va.vbo = 0
	}
	if va.vao != 0 {
		va.api.DeleteVertexArray(va.vao)
		va.vao = 0
	}
}
