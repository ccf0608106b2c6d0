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

// Package fakegl is a software implementation of glapi.API. It is intended
// for testing packages that draw with glapi without needing a graphics driver.
//
// Only as much of GL is implemented as is needed by the render pipeline.
// Colour buffers are blur.Buffer values. Shader source is not compiled,
// instead the attribute and uniform declarations are read from the source
// and the program is recognised by the uniforms it declares. A program with a
// u_dir uniform is treated as the blur program and its draw is performed with
// blur.Pass(). Any other program rasterises the bound triangles, interpolating
// the color attribute.
package fakegl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jetsetilly/glblur/blur"
	"github.com/jetsetilly/glblur/glapi"
)

type shader struct {
	stage    uint32
	source   string
	compiled bool
	log      string
}

type program struct {
	shaders  []uint32
	linked   bool
	log      string
	attribs  map[string]int32
	uniforms map[string]int32
	values   map[int32][]float32
	isBlur   bool
}

type attribPointer struct {
	vbo    uint32
	size   int32
	stride int32
	offset uintptr
}

type vertexArray struct {
	pointers map[uint32]attribPointer
	enabled  map[uint32]bool
}

type framebuffer struct {
	color uint32
	depth uint32
}

// GL implements the glapi.API interface in software.
type GL struct {
	// the viewport as returned by GetViewport(). the default framebuffer is
	// resized to match the viewport on every call to Viewport()
	X, Y          int32
	Width, Height int32

	// the value returned by CheckFramebufferStatus()
	Status uint32

	// Compile returns the info log for a failed compilation. an empty string
	// indicates success. the default function fails source that does not
	// begin with a #version directive or that has no main() function
	Compile func(stage uint32, source string) string

	// programs fail to link if FailLink is true
	FailLink bool

	// if SceneFill is not nil, programs other than the blur program fill the
	// target with the colour instead of rasterising
	SceneFill *[4]float32

	// counters
	FramebuffersCreated int
	StatusChecks        int
	DrawCalls           int

	nextName uint32

	shaders       map[uint32]*shader
	programs      map[uint32]*program
	buffers       map[uint32][]float32
	vertexArrays  map[uint32]*vertexArray
	textures      map[uint32]*blur.Buffer
	framebuffers  map[uint32]*framebuffer
	renderbuffers map[uint32]bool

	defaultFramebuffer *blur.Buffer

	clearColor   [4]float32
	capabilities map[uint32]bool

	currentProgram     uint32
	currentArrayBuffer uint32
	currentVertexArray uint32
	currentFramebuffer uint32
	readFramebuffer    uint32
	currentTexture     map[uint32]uint32
	activeUnit         uint32
}

// NewGL creates a new software GL with a viewport of the specified size.
func NewGL(width int32, height int32) *GL {
	gl := &GL{
		Status:         glapi.FramebufferComplete,
		Compile:        DefaultCompile,
		shaders:        make(map[uint32]*shader),
		programs:       make(map[uint32]*program),
		buffers:        make(map[uint32][]float32),
		vertexArrays:   make(map[uint32]*vertexArray),
		textures:       make(map[uint32]*blur.Buffer),
		framebuffers:   make(map[uint32]*framebuffer),
		renderbuffers:  make(map[uint32]bool),
		capabilities:   make(map[uint32]bool),
		currentTexture: make(map[uint32]uint32),
	}
	gl.Viewport(0, 0, width, height)
	return gl
}

// DefaultCompile is the default value of the GL.Compile field.
func DefaultCompile(stage uint32, source string) string {
	if !strings.HasPrefix(strings.TrimSpace(source), "#version") {
		return "0:1(1): error: missing #version directive"
	}
	if !strings.Contains(source, "void main(") {
		return "error: no main() function"
	}
	return ""
}

func (gl *GL) name() uint32 {
	gl.nextName++
	return gl.nextName
}

// Live returns the number of GL objects that have been created and not
// deleted.
func (gl *GL) Live() int {
	return len(gl.shaders) + len(gl.programs) + len(gl.buffers) + len(gl.vertexArrays) +
		len(gl.textures) + len(gl.framebuffers) + len(gl.renderbuffers)
}

// DefaultFramebuffer returns the colour buffer of the default framebuffer.
func (gl *GL) DefaultFramebuffer() *blur.Buffer {
	return gl.defaultFramebuffer
}

// Texture returns the contents of the texture. Returns nil if the name is not
// a texture.
func (gl *GL) Texture(texture uint32) *blur.Buffer {
	return gl.textures[texture]
}

// Enabled returns whether the capability is currently enabled.
func (gl *GL) Enabled(capability uint32) bool {
	return gl.capabilities[capability]
}

// Uniform returns the value of the named uniform in the program currently in
// use. Returns nil if the uniform has not been set.
func (gl *GL) Uniform(name string) []float32 {
	prg, ok := gl.programs[gl.currentProgram]
	if !ok {
		return nil
	}
	loc, ok := prg.uniforms[name]
	if !ok {
		return nil
	}
	return prg.values[loc]
}

func (gl *GL) GetString(name uint32) string {
	switch name {
	case glapi.Vendor:
		return "glblur"
	case glapi.Renderer:
		return "fakegl"
	case glapi.Version:
		return "3.2 (fakegl)"
	case glapi.ShadingLanguageVersion:
		return "1.50"
	}
	return ""
}

func (gl *GL) CreateShader(stage uint32) uint32 {
	n := gl.name()
	gl.shaders[n] = &shader{stage: stage}
	return n
}

func (gl *GL) ShaderSource(s uint32, source string) {
	if sh, ok := gl.shaders[s]; ok {
		sh.source = source
	}
}

func (gl *GL) CompileShader(s uint32) {
	sh, ok := gl.shaders[s]
	if !ok {
		return
	}
	sh.log = gl.Compile(sh.stage, sh.source)
	sh.compiled = sh.log == ""
}

func (gl *GL) GetShaderiv(s uint32, pname uint32) int32 {
	sh, ok := gl.shaders[s]
	if !ok {
		return 0
	}
	switch pname {
	case glapi.CompileStatus:
		if sh.compiled {
			return 1
		}
	case glapi.InfoLogLength:
		if sh.log != "" {
			return int32(len(sh.log) + 1)
		}
	}
	return 0
}

func (gl *GL) GetShaderInfoLog(s uint32) string {
	if sh, ok := gl.shaders[s]; ok {
		return sh.log
	}
	return ""
}

func (gl *GL) DeleteShader(s uint32) {
	delete(gl.shaders, s)
}

func (gl *GL) CreateProgram() uint32 {
	n := gl.name()
	gl.programs[n] = &program{
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
		values:   make(map[int32][]float32),
	}
	return n
}

func (gl *GL) AttachShader(p uint32, s uint32) {
	if prg, ok := gl.programs[p]; ok {
		prg.shaders = append(prg.shaders, s)
	}
}

var (
	attribDecl  = regexp.MustCompile(`(?m)^\s*in\s+\w+\s+(\w+)\s*;`)
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
)

func (gl *GL) LinkProgram(p uint32) {
	prg, ok := gl.programs[p]
	if !ok {
		return
	}

	if gl.FailLink {
		prg.log = "error: linking with uncompiled shader"
		return
	}

	var vert, frag bool
	for _, s := range prg.shaders {
		sh, ok := gl.shaders[s]
		if !ok || !sh.compiled {
			prg.log = "error: linking with uncompiled shader"
			return
		}
		switch sh.stage {
		case glapi.VertexShader:
			vert = true
			for _, m := range attribDecl.FindAllStringSubmatch(sh.source, -1) {
				prg.attribs[m[1]] = int32(len(prg.attribs))
			}
		case glapi.FragmentShader:
			frag = true
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(sh.source, -1) {
			if _, ok := prg.uniforms[m[1]]; !ok {
				prg.uniforms[m[1]] = int32(len(prg.uniforms))
			}
		}
	}

	if !vert || !frag {
		prg.log = "error: program is missing a shader stage"
		return
	}

	_, prg.isBlur = prg.uniforms["u_dir"]
	prg.linked = true
}

func (gl *GL) GetProgramiv(p uint32, pname uint32) int32 {
	prg, ok := gl.programs[p]
	if !ok {
		return 0
	}
	switch pname {
	case glapi.LinkStatus:
		if prg.linked {
			return 1
		}
	case glapi.InfoLogLength:
		if prg.log != "" {
			return int32(len(prg.log) + 1)
		}
	}
	return 0
}

func (gl *GL) GetProgramInfoLog(p uint32) string {
	if prg, ok := gl.programs[p]; ok {
		return prg.log
	}
	return ""
}

func (gl *GL) UseProgram(p uint32) {
	gl.currentProgram = p
}

func (gl *GL) DeleteProgram(p uint32) {
	delete(gl.programs, p)
	if gl.currentProgram == p {
		gl.currentProgram = 0
	}
}

func (gl *GL) GetAttribLocation(p uint32, name string) int32 {
	if prg, ok := gl.programs[p]; ok {
		if loc, ok := prg.attribs[name]; ok {
			return loc
		}
	}
	return -1
}

func (gl *GL) GetUniformLocation(p uint32, name string) int32 {
	if prg, ok := gl.programs[p]; ok {
		if loc, ok := prg.uniforms[name]; ok {
			return loc
		}
	}
	return -1
}

func (gl *GL) setUniform(loc int32, v ...float32) {
	if loc < 0 {
		return
	}
	if prg, ok := gl.programs[gl.currentProgram]; ok {
		prg.values[loc] = v
	}
}

func (gl *GL) Uniform1i(loc int32, v int32) {
	gl.setUniform(loc, float32(v))
}

func (gl *GL) Uniform1f(loc int32, v float32) {
	gl.setUniform(loc, v)
}

func (gl *GL) Uniform2f(loc int32, v0 float32, v1 float32) {
	gl.setUniform(loc, v0, v1)
}

func (gl *GL) GenBuffer() uint32 {
	n := gl.name()
	gl.buffers[n] = nil
	return n
}

func (gl *GL) BindBuffer(target uint32, b uint32) {
	if target == glapi.ArrayBuffer {
		gl.currentArrayBuffer = b
	}
}

func (gl *GL) BufferData(target uint32, data []float32, usage uint32) {
	if target != glapi.ArrayBuffer {
		return
	}
	if _, ok := gl.buffers[gl.currentArrayBuffer]; ok {
		gl.buffers[gl.currentArrayBuffer] = append([]float32(nil), data...)
	}
}

func (gl *GL) DeleteBuffer(b uint32) {
	delete(gl.buffers, b)
}

func (gl *GL) GenVertexArray() uint32 {
	n := gl.name()
	gl.vertexArrays[n] = &vertexArray{
		pointers: make(map[uint32]attribPointer),
		enabled:  make(map[uint32]bool),
	}
	return n
}

func (gl *GL) BindVertexArray(a uint32) {
	gl.currentVertexArray = a
}

func (gl *GL) DeleteVertexArray(a uint32) {
	delete(gl.vertexArrays, a)
}

func (gl *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	if va, ok := gl.vertexArrays[gl.currentVertexArray]; ok {
		va.pointers[index] = attribPointer{
			vbo:    gl.currentArrayBuffer,
			size:   size,
			stride: stride,
			offset: offset,
		}
	}
}

func (gl *GL) EnableVertexAttribArray(index uint32) {
	if va, ok := gl.vertexArrays[gl.currentVertexArray]; ok {
		va.enabled[index] = true
	}
}

func (gl *GL) GenTexture() uint32 {
	n := gl.name()
	gl.textures[n] = blur.NewBuffer(0, 0)
	return n
}

func (gl *GL) ActiveTexture(texture uint32) {
	gl.activeUnit = texture - glapi.Texture0
}

func (gl *GL) BindTexture(target uint32, texture uint32) {
	if target == glapi.Texture2D {
		gl.currentTexture[gl.activeUnit] = texture
	}
}

func (gl *GL) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8) {
	t := gl.currentTexture[gl.activeUnit]
	if _, ok := gl.textures[t]; !ok {
		return
	}
	buf := blur.NewBuffer(int(width), int(height))
	for i := range pixels {
		if i >= len(buf.Pix) {
			break
		}
		buf.Pix[i] = float32(pixels[i]) / 255
	}
	gl.textures[t] = buf
}

func (gl *GL) TexParameteri(target uint32, pname uint32, param int32) {
}

func (gl *GL) DeleteTexture(texture uint32) {
	delete(gl.textures, texture)
}

func (gl *GL) GenFramebuffer() uint32 {
	n := gl.name()
	gl.framebuffers[n] = &framebuffer{}
	gl.FramebuffersCreated++
	return n
}

func (gl *GL) BindFramebuffer(target uint32, fbo uint32) {
	switch target {
	case glapi.Framebuffer:
		gl.currentFramebuffer = fbo
		gl.readFramebuffer = fbo
	case glapi.ReadFramebuffer:
		gl.readFramebuffer = fbo
	}
}

func (gl *GL) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32) {
	if fb, ok := gl.framebuffers[gl.currentFramebuffer]; ok && attachment == glapi.ColorAttachment0 {
		fb.color = texture
	}
}

func (gl *GL) FramebufferRenderbuffer(target uint32, attachment uint32, renderbufferTarget uint32, renderbuffer uint32) {
	if fb, ok := gl.framebuffers[gl.currentFramebuffer]; ok {
		fb.depth = renderbuffer
	}
}

func (gl *GL) CheckFramebufferStatus(target uint32) uint32 {
	gl.StatusChecks++
	if gl.Status != glapi.FramebufferComplete {
		return gl.Status
	}
	fb, ok := gl.framebuffers[gl.currentFramebuffer]
	if !ok {
		return glapi.FramebufferUndefined
	}
	if fb.color == 0 {
		return glapi.FramebufferIncompleteMissingAttachment
	}
	return glapi.FramebufferComplete
}

func (gl *GL) DeleteFramebuffer(fbo uint32) {
	delete(gl.framebuffers, fbo)
}

func (gl *GL) GenRenderbuffer() uint32 {
	n := gl.name()
	gl.renderbuffers[n] = true
	return n
}

func (gl *GL) BindRenderbuffer(target uint32, renderbuffer uint32) {
}

func (gl *GL) RenderbufferStorage(target uint32, internalFormat uint32, width int32, height int32) {
}

func (gl *GL) DeleteRenderbuffer(renderbuffer uint32) {
	delete(gl.renderbuffers, renderbuffer)
}

func (gl *GL) ClearColor(r float32, g float32, b float32, a float32) {
	gl.clearColor = [4]float32{r, g, b, a}
}

// the colour buffer of the currently bound draw framebuffer
func (gl *GL) target() *blur.Buffer {
	if gl.currentFramebuffer == 0 {
		return gl.defaultFramebuffer
	}
	fb, ok := gl.framebuffers[gl.currentFramebuffer]
	if !ok {
		return nil
	}
	return gl.textures[fb.color]
}

func (gl *GL) Clear(mask uint32) {
	if mask&glapi.ColorBufferBit == 0 {
		return
	}
	if t := gl.target(); t != nil {
		t.Fill(gl.clearColor)
	}
}

func (gl *GL) Enable(capability uint32) {
	gl.capabilities[capability] = true
}

func (gl *GL) Disable(capability uint32) {
	gl.capabilities[capability] = false
}

func (gl *GL) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawCalls++

	prg, ok := gl.programs[gl.currentProgram]
	if !ok || !prg.linked {
		return
	}

	dst := gl.target()
	if dst == nil {
		return
	}

	if prg.isBlur {
		gl.drawBlur(prg, dst)
		return
	}

	if gl.SceneFill != nil {
		dst.Fill(*gl.SceneFill)
		return
	}

	if mode == glapi.Triangles {
		gl.rasterise(prg, dst, first, count)
	}
}

func (gl *GL) drawBlur(prg *program, dst *blur.Buffer) {
	unit := int32(0)
	if v := prg.values[prg.uniforms["u_texture"]]; len(v) > 0 {
		unit = int32(v[0])
	}
	src, ok := gl.textures[gl.currentTexture[uint32(unit)]]
	if !ok || src.Width == 0 || src.Height == 0 {
		return
	}

	var dir blur.Direction
	if v := prg.values[prg.uniforms["u_dir"]]; len(v) == 2 {
		dir = blur.Direction{int(v[0]), int(v[1])}
	}

	var sigma float32
	if v := prg.values[prg.uniforms["u_sigma"]]; len(v) == 1 {
		sigma = v[0]
	}

	out := blur.Pass(src, dir, sigma)

	// the quad covers the whole target. the source is sampled with normalised
	// coordinates so differing sizes are scaled with nearest sampling
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			sx := x * out.Width / max(dst.Width, 1)
			sy := y * out.Height / max(dst.Height, 1)
			dst.Set(x, y, out.At(sx, sy))
		}
	}
}

// read count vertices of the attribute from the bound vertex array
func (gl *GL) vertices(loc int32, first int32, count int32) ([][]float32, error) {
	va, ok := gl.vertexArrays[gl.currentVertexArray]
	if !ok {
		return nil, fmt.Errorf("no vertex array bound")
	}
	if loc < 0 || !va.enabled[uint32(loc)] {
		return nil, fmt.Errorf("attribute %d not enabled", loc)
	}
	ptr := va.pointers[uint32(loc)]
	data := gl.buffers[ptr.vbo]

	stride := int(ptr.stride / 4)
	offset := int(ptr.offset / 4)
	if stride == 0 {
		stride = int(ptr.size)
	}

	v := make([][]float32, 0, count)
	for i := first; i < first+count; i++ {
		s := int(i)*stride + offset
		e := s + int(ptr.size)
		if e > len(data) {
			return nil, fmt.Errorf("vertex %d out of range", i)
		}
		v = append(v, data[s:e])
	}
	return v, nil
}

// rasterise triangles using the position and color attributes. pixel centres
// inside a triangle are coloured by interpolating the vertex colours
func (gl *GL) rasterise(prg *program, dst *blur.Buffer, first int32, count int32) {
	loc, ok := prg.attribs["position"]
	if !ok {
		return
	}
	pos, err := gl.vertices(loc, first, count)
	if err != nil {
		return
	}

	// vertices are white if there is no usable color attribute
	col := make([][]float32, len(pos))
	for i := range col {
		col[i] = []float32{1, 1, 1}
	}
	if loc, ok := prg.attribs["color"]; ok {
		if c, err := gl.vertices(loc, first, count); err == nil {
			col = c
		}
	}

	w := float32(dst.Width)
	h := float32(dst.Height)

	for t := 0; t+2 < len(pos); t += 3 {
		var px, py [3]float32
		for i := 0; i < 3; i++ {
			px[i] = (pos[t+i][0]*0.5 + 0.5) * w
			py[i] = (pos[t+i][1]*0.5 + 0.5) * h
		}

		area := (px[1]-px[0])*(py[2]-py[0]) - (px[2]-px[0])*(py[1]-py[0])
		if area == 0 {
			continue
		}

		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				cx := float32(x) + 0.5
				cy := float32(y) + 0.5

				b0 := ((px[1]-cx)*(py[2]-cy) - (px[2]-cx)*(py[1]-cy)) / area
				b1 := ((px[2]-cx)*(py[0]-cy) - (px[0]-cx)*(py[2]-cy)) / area
				b2 := 1 - b0 - b1
				if b0 < 0 || b1 < 0 || b2 < 0 {
					continue
				}

				var c [4]float32
				for i := 0; i < 3; i++ {
					c[i] = b0*col[t][i] + b1*col[t+1][i] + b2*col[t+2][i]
				}
				c[3] = 1
				dst.Set(x, y, c)
			}
		}
	}
}

func (gl *GL) Viewport(x int32, y int32, width int32, height int32) {
	gl.X, gl.Y = x, y
	gl.Width, gl.Height = width, height
	gl.defaultFramebuffer = blur.NewBuffer(int(max(width, 0)), int(max(height, 0)))
}

func (gl *GL) GetViewport() (int32, int32, int32, int32) {
	return gl.X, gl.Y, gl.Width, gl.Height
}

func (gl *GL) ReadPixels(x int32, y int32, width int32, height int32, pixels []uint8) {
	var src *blur.Buffer
	if gl.readFramebuffer == 0 {
		src = gl.defaultFramebuffer
	} else if fb, ok := gl.framebuffers[gl.readFramebuffer]; ok {
		src = gl.textures[fb.color]
	}
	if src == nil || src.Width == 0 || src.Height == 0 {
		return
	}

	i := 0
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			c := src.At(int(col), int(row))
			for ch := 0; ch < 4 && i < len(pixels); ch++ {
				pixels[i] = blur.Quantise(c[ch])
				i++
			}
		}
	}
}

// compile time check that GL satisfies the glapi.API interface
var _ glapi.API = (*GL)(nil)
