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
	"github.com/jetsetilly/glblur/blur"
	"github.com/jetsetilly/glblur/shaders"
)

// Sources is the GLSL source for the two shader programs used by the
// pipeline. A nil field is replaced by the embedded source of the same name.
type Sources struct {
	SceneVertex   []byte
	SceneFragment []byte
	BlurVertex    []byte
	BlurFragment  []byte
}

// DefaultSources returns the embedded shader sources.
func DefaultSources() Sources {
	return Sources{
		SceneVertex:   shaders.SceneVertexShader,
		SceneFragment: shaders.SceneFragShader,
		BlurVertex:    shaders.BlurVertexShader,
		BlurFragment:  shaders.BlurFragShader,
	}
}

func (src Sources) withDefaults() Sources {
	def := DefaultSources()
	if src.SceneVertex == nil {
		src.SceneVertex = def.SceneVertex
	}
	if src.SceneFragment == nil {
		src.SceneFragment = def.SceneFragment
	}
	if src.BlurVertex == nil {
		src.BlurVertex = def.BlurVertex
	}
	if src.BlurFragment == nil {
		src.BlurFragment = def.BlurFragment
	}
	return src
}

// Options for NewPipeline().
type Options struct {
	// draw the scene through the two blur passes. if false the scene is drawn
	// directly to the default framebuffer
	Blur bool

	// value of the u_sigma uniform in the blur shader
	Sigma float32

	Sources Sources
}

// DefaultOptions returns the options for the blur pipeline with the default
// sigma value and the embedded shaders.
func DefaultOptions() Options {
	return Options{
		Blur:    true,
		Sigma:   blur.DefaultSigma,
		Sources: DefaultSources(),
	}
}
