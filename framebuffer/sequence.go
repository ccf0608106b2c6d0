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

package framebuffer

import (
	"github.com/jetsetilly/glblur/curated"
	"github.com/jetsetilly/glblur/glapi"
	"github.com/jetsetilly/glblur/logger"
)

// Sentinel error patterns returned by Setup().
const (
	IncompleteError   = "framebuffer: incomplete: %d: %s"
	DimensionsError   = "framebuffer: invalid dimensions: %dx%d"
	AlreadySetupError = "framebuffer: already setup"
)

// the texture, framebuffer and renderbuffer names for a single texture index
type target struct {
	texture uint32
	fbo     uint32
	rbo     uint32
}

// Sequence represents the sequence of textures that can be drawn to.
type Sequence struct {
	api     glapi.API
	targets []target
	width   int32
	height  int32
}

// NewSequence is the preferred method of initialisation of the Sequence type.
// No GL objects are created until Setup() is called.
func NewSequence(api glapi.API, numTextures int) *Sequence {
	return &Sequence{
		api:     api,
		targets: make([]target, numTextures),
	}
}

// Setup allocates the textures, framebuffers and renderbuffers for the
// specified width and height. The completeness of each framebuffer is checked
// exactly once.
//
// Returns an IncompleteError for the first framebuffer that is not complete.
// Objects created up to that point are deleted.
func (seq *Sequence) Setup(width int32, height int32) error {
	if seq.width != 0 || seq.height != 0 {
		return curated.Errorf(AlreadySetupError)
	}

	if width <= 0 || height <= 0 {
		return curated.Errorf(DimensionsError, width, height)
	}

	for i := range seq.targets {
		t := &seq.targets[i]

		t.texture = seq.api.GenTexture()
		seq.api.BindTexture(glapi.Texture2D, t.texture)
		seq.api.TexImage2D(glapi.Texture2D, 0, glapi.RGBA8, width, height, glapi.RGBA, glapi.UnsignedByte, nil)
		seq.api.TexParameteri(glapi.Texture2D, glapi.TextureMagFilter, glapi.Linear)
		seq.api.TexParameteri(glapi.Texture2D, glapi.TextureMinFilter, glapi.Linear)

		// clamp to edge rather than to a border colour. a border colour would
		// darken the edges of the image when blurred
		seq.api.TexParameteri(glapi.Texture2D, glapi.TextureWrapS, glapi.ClampToEdge)
		seq.api.TexParameteri(glapi.Texture2D, glapi.TextureWrapT, glapi.ClampToEdge)

		t.rbo = seq.api.GenRenderbuffer()
		seq.api.BindRenderbuffer(glapi.Renderbuffer, t.rbo)
		seq.api.RenderbufferStorage(glapi.Renderbuffer, glapi.Depth24Stencil8, width, height)

		t.fbo = seq.api.GenFramebuffer()
		seq.api.BindFramebuffer(glapi.Framebuffer, t.fbo)
		seq.api.FramebufferTexture2D(glapi.Framebuffer, glapi.ColorAttachment0, glapi.Texture2D, t.texture, 0)
		seq.api.FramebufferRenderbuffer(glapi.Framebuffer, glapi.DepthStencilAttachment, glapi.Renderbuffer, t.rbo)

		status := seq.api.CheckFramebufferStatus(glapi.Framebuffer)
		if status != glapi.FramebufferComplete {
			seq.api.BindFramebuffer(glapi.Framebuffer, 0)
			seq.Destroy()
			return curated.Errorf(IncompleteError, i, glapi.FramebufferStatusString(status))
		}
	}

	seq.api.BindTexture(glapi.Texture2D, 0)
	seq.api.BindRenderbuffer(glapi.Renderbuffer, 0)
	seq.api.BindFramebuffer(glapi.Framebuffer, 0)

	seq.width = width
	seq.height = height
	logger.Logf(logger.Allow, "framebuffer", "%d textures of %dx%d", len(seq.targets), width, height)

	return nil
}

// Destroy deletes all GL objects created by the sequence. A destroyed sequence
// can be Setup() again.
func (seq *Sequence) Destroy() {
	for i := range seq.targets {
		t := &seq.targets[i]
		if t.fbo != 0 {
			seq.api.DeleteFramebuffer(t.fbo)
		}
		if t.rbo != 0 {
			seq.api.DeleteRenderbuffer(t.rbo)
		}
		if t.texture != 0 {
			seq.api.DeleteTexture(t.texture)
		}
		*t = target{}
	}
	seq.width = 0
	seq.height = 0
}

// Len returns the number of textures employed in the framebuffer sequence.
func (seq *Sequence) Len() int {
	return len(seq.targets)
}

// Dimensions returns the width and height of the textures in the sequence.
func (seq *Sequence) Dimensions() (int32, int32) {
	return seq.width, seq.height
}

// Texture returns the texture ID related to the idxTexture.
func (seq *Sequence) Texture(idxTexture int) uint32 {
	return seq.targets[idxTexture].texture
}

// Process binds the framebuffer related to idxTexture and runs the supplied
// draw() function.
//
// Returns the texture ID (not the index) that has been drawn to.
//
// Changes the state of the frame buffer.
func (seq *Sequence) Process(idxTexture int, draw func()) uint32 {
	t := seq.targets[idxTexture]
	seq.api.BindFramebuffer(glapi.Framebuffer, t.fbo)
	draw()
	return t.texture
}
