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
	"strings"

	"github.com/jetsetilly/glblur/curated"
	"github.com/jetsetilly/glblur/glapi"
	"github.com/jetsetilly/glblur/logger"
)

// a linked shader program
type program struct {
	api    glapi.API
	name   string
	handle uint32
}

func stageName(stage uint32) string {
	switch stage {
	case glapi.VertexShader:
		return "vertex"
	case glapi.FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// compile a single shader stage. the shader is deleted if compilation fails
func compileShader(api glapi.API, name string, stage uint32, source []byte) (uint32, error) {
	handle := api.CreateShader(stage)
	api.ShaderSource(handle, string(source))
	api.CompileShader(handle)

	if api.GetShaderiv(handle, glapi.CompileStatus) == 0 {
		log := strings.TrimSpace(api.GetShaderInfoLog(handle))
		if log == "" {
			log = "no information from driver"
		}
		api.DeleteShader(handle)
		return 0, curated.Errorf(ShaderCompileError, stageName(stage), name, log)
	}

	return handle, nil
}

// compile and link shader program
func newProgram(api glapi.API, name string, vertSource []byte, fragSource []byte) (*program, error) {
	vert, err := compileShader(api, name, glapi.VertexShader, vertSource)
	if err != nil {
		return nil, err
	}
	defer api.DeleteShader(vert)

	frag, err := compileShader(api, name, glapi.FragmentShader, fragSource)
	if err != nil {
		return nil, err
	}
	defer api.DeleteShader(frag)

	prg := &program{
		api:    api,
		name:   name,
		handle: api.CreateProgram(),
	}

	api.AttachShader(prg.handle, vert)
	api.AttachShader(prg.handle, frag)
	api.LinkProgram(prg.handle)

	if api.GetProgramiv(prg.handle, glapi.LinkStatus) == 0 {
		log := strings.TrimSpace(api.GetProgramInfoLog(prg.handle))
		if log == "" {
			log = "no information from driver"
		}
		prg.destroy()
		return nil, curated.Errorf(ProgramLinkError, name, log)
	}

	logger.Logf(logger.Allow, "glsl", "%s program linked", name)

	return prg, nil
}

func (prg *program) destroy() {
	if prg.handle != 0 {
		prg.api.DeleteProgram(prg.handle)
		prg.handle = 0
	}
}

func (prg *program) use() {
	prg.api.UseProgram(prg.handle)
}

// a missing attribute is not an error. the location will be -1
func (prg *program) attrib(name string) int32 {
	loc := prg.api.GetAttribLocation(prg.handle, name)
	if loc < 0 {
		logger.Logf(logger.Allow, "glsl", "%s program: no attribute named %s", prg.name, name)
	}
	return loc
}

// a missing uniform is not an error. the location will be -1 and setting the
// uniform will silently do nothing
func (prg *program) uniform(name string) int32 {
	loc := prg.api.GetUniformLocation(prg.handle, name)
	if loc < 0 {
		logger.Logf(logger.Allow, "glsl", "%s program: no uniform named %s", prg.name, name)
	}
	return loc
}
