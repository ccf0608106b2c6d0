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
	"image"

	"github.com/jetsetilly/glblur/glapi"
)

// Snapshot reads the contents of the default framebuffer. The size of the
// image is the size of the current viewport. Should be called after
// RenderFrame() and before the buffers are swapped.
func (pl *Pipeline) Snapshot() *image.RGBA {
	x, y, width, height := pl.api.GetViewport()
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	pix := make([]uint8, width*height*4)
	pl.api.BindFramebuffer(glapi.ReadFramebuffer, 0)
	pl.api.ReadPixels(x, y, width, height, pix)

	// GL rows start at the bottom of the image
	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	stride := int(width) * 4
	for row := 0; row < int(height); row++ {
		src := pix[(int(height)-1-row)*stride:]
		copy(img.Pix[row*img.Stride:row*img.Stride+stride], src[:stride])
	}

	return img
}
