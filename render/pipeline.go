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
	"github.com/jetsetilly/glblur/curated"
	"github.com/jetsetilly/glblur/framebuffer"
	"github.com/jetsetilly/glblur/glapi"
	"github.com/jetsetilly/glblur/logger"
)

// the scene is drawn to texture zero. the horizontal blur of the scene is
// drawn to texture one
const (
	sceneTexture = iota
	horizontalTexture
	numTextures
)

// uniform locations in the blur program
type blurUniforms struct {
	texture     int32
	textureSize int32
	sigma       int32
	dir         int32
}

// Pipeline is the set of GPU resources needed to draw a frame. Create with
// NewPipeline().
type Pipeline struct {
	api  glapi.API
	opts Options

	scene    *program
	triangle *vertexArray

	// nil if the pipeline was created without blur
	blurPrg  *program
	quad     *vertexArray
	uniforms blurUniforms
	seq      *framebuffer.Sequence
}

// NewPipeline compiles the shaders, uploads the vertex data and allocates the
// offscreen framebuffers. The size of the framebuffers is taken from the
// current viewport and does not change for the lifetime of the pipeline.
//
// The returned Pipeline is ready for use. If an error is returned then any GL
// objects created up to that point will have been deleted.
func NewPipeline(api glapi.API, opts Options) (*Pipeline, error) {
	logger.Logf(logger.Allow, "render", "vendor: %s", api.GetString(glapi.Vendor))
	logger.Logf(logger.Allow, "render", "renderer: %s", api.GetString(glapi.Renderer))
	logger.Logf(logger.Allow, "render", "version: %s", api.GetString(glapi.Version))

	opts.Sources = opts.Sources.withDefaults()

	pl := &Pipeline{
		api:  api,
		opts: opts,
	}

	err := pl.setup()
	if err != nil {
		pl.Destroy()
		return nil, err
	}

	return pl, nil
}

func (pl *Pipeline) setup() error {
	var err error

	// both programs are compiled before anything else is allocated
	pl.scene, err = newProgram(pl.api, "scene", pl.opts.Sources.SceneVertex, pl.opts.Sources.SceneFragment)
	if err != nil {
		return err
	}

	if pl.opts.Blur {
		pl.blurPrg, err = newProgram(pl.api, "blur", pl.opts.Sources.BlurVertex, pl.opts.Sources.BlurFragment)
		if err != nil {
			return err
		}
	}

	pl.triangle = newVertexArray(pl.api, triangleVertices, glapi.Triangles,
		attribute{location: pl.scene.attrib("position"), size: 2},
		attribute{location: pl.scene.attrib("color"), size: 3},
	)

	if !pl.opts.Blur {
		logger.Logf(logger.Allow, "render", "pipeline ready (no blur)")
		return nil
	}

	pl.quad = newVertexArray(pl.api, quadVertices, glapi.TriangleStrip,
		attribute{location: pl.blurPrg.attrib("inPos"), size: 2},
	)

	pl.uniforms = blurUniforms{
		texture:     pl.blurPrg.uniform("u_texture"),
		textureSize: pl.blurPrg.uniform("u_textureSize"),
		sigma:       pl.blurPrg.uniform("u_sigma"),
		dir:         pl.blurPrg.uniform("u_dir"),
	}

	_, _, width, height := pl.api.GetViewport()
	if width <= 0 || height <= 0 {
		return curated.Errorf(ViewportError, width, height)
	}

	pl.seq = framebuffer.NewSequence(pl.api, numTextures)
	err = pl.seq.Setup(width, height)
	if err != nil {
		pl.seq = nil
		return curated.Errorf(FramebufferError, err)
	}

	logger.Logf(logger.Allow, "render", "pipeline ready (sigma %.3g, %d taps)",
		pl.opts.Sigma, len(blur.Weights(pl.opts.Sigma)))

	return nil
}

// Destroy deletes all the GL objects owned by the pipeline. The pipeline must
// not be used after Destroy() has been called.
func (pl *Pipeline) Destroy() {
	if pl.seq != nil {
		pl.seq.Destroy()
		pl.seq = nil
	}
	if pl.quad != nil {
		pl.quad.destroy()
		pl.quad = nil
	}
	if pl.triangle != nil {
		pl.triangle.destroy()
		pl.triangle = nil
	}
	if pl.blurPrg != nil {
		pl.blurPrg.destroy()
		pl.blurPrg = nil
	}
	if pl.scene != nil {
		pl.scene.destroy()
		pl.scene = nil
	}
}

// Blur returns true if the pipeline draws through the blur passes.
func (pl *Pipeline) Blur() bool {
	return pl.opts.Blur
}

// Sigma returns the sigma value used by the blur passes.
func (pl *Pipeline) Sigma() float32 {
	return pl.opts.Sigma
}

// TargetSize returns the dimensions of the offscreen render targets. Both
// values are zero if the pipeline has no blur.
func (pl *Pipeline) TargetSize() (int32, int32) {
	if pl.seq == nil {
		return 0, 0
	}
	return pl.seq.Dimensions()
}

// Resize sets the viewport to the new size of the default framebuffer. The
// offscreen render targets keep the size they were created with.
func (pl *Pipeline) Resize(width int32, height int32) {
	pl.api.Viewport(0, 0, width, height)
}

func (pl *Pipeline) drawScene(clear Color) {
	pl.api.Enable(glapi.DepthTest)
	pl.api.ClearColor(clear.R, clear.G, clear.B, clear.A)
	pl.api.Clear(glapi.ColorBufferBit | glapi.DepthBufferBit)
	pl.scene.use()
	pl.triangle.draw()
}

func (pl *Pipeline) drawBlur(srcTexture uint32, dir blur.Direction) {
	pl.api.Disable(glapi.DepthTest)
	pl.api.ClearColor(White.R, White.G, White.B, White.A)
	pl.api.Clear(glapi.ColorBufferBit | glapi.DepthBufferBit)

	pl.blurPrg.use()
	pl.api.ActiveTexture(glapi.Texture0)
	pl.api.BindTexture(glapi.Texture2D, srcTexture)
	pl.api.Uniform2f(pl.uniforms.dir, float32(dir[0]), float32(dir[1]))
	pl.quad.draw()
}

// RenderFrame draws the scene to the default framebuffer. The context must be
// current on the calling thread.
//
// Drawing the same scene twice with the same clear colour produces the same
// output both times.
func (pl *Pipeline) RenderFrame(clear Color) {
	if !pl.opts.Blur {
		pl.api.BindFramebuffer(glapi.Framebuffer, 0)
		pl.drawScene(clear)
		return
	}

	// the texture size uniform follows the viewport even though the render
	// targets are never resized
	_, _, width, height := pl.api.GetViewport()

	pl.seq.Process(sceneTexture, func() {
		pl.drawScene(clear)
	})

	pl.blurPrg.use()
	pl.api.Uniform1i(pl.uniforms.texture, 0)
	pl.api.Uniform2f(pl.uniforms.textureSize, float32(width), float32(height))
	pl.api.Uniform1f(pl.uniforms.sigma, pl.opts.Sigma)

	pl.seq.Process(horizontalTexture, func() {
		pl.drawBlur(pl.seq.Texture(sceneTexture), blur.Horizontal)
	})

	pl.api.BindFramebuffer(glapi.Framebuffer, 0)
	pl.drawBlur(pl.seq.Texture(horizontalTexture), blur.Vertical)
}
