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

// Package shaders contains the GLSL source for the render pipeline. The
// source is embedded in the binary at compile time.
package shaders

import _ "embed"

//go:embed "scene.vert"
var SceneVertexShader []byte

//go:embed "scene.frag"
var SceneFragShader []byte

//go:embed "blur.vert"
var BlurVertexShader []byte

//go:embed "blur.frag"
var BlurFragShader []byte
