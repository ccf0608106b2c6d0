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

package blur

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// Buffer is an RGBA image with float32 channels in the range 0 to 1. Pixel
// (0, 0) is the first pixel in the Pix slice. Whether that is the top-left or
// bottom-left pixel is of no consequence to a blur pass.
type Buffer struct {
	Width  int
	Height int
	Pix    []float32
}

// NewBuffer creates a buffer of the given size. All channels are zero.
func NewBuffer(width int, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*4),
	}
}

// FromImage creates a buffer from an image.
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	buf := NewBuffer(b.Dx(), b.Dy())
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			buf.Set(x, y, [4]float32{
				float32(c.R) / 255.0,
				float32(c.G) / 255.0,
				float32(c.B) / 255.0,
				float32(c.A) / 255.0,
			})
		}
	}
	return buf
}

// Fill every pixel with the specified colour.
func (buf *Buffer) Fill(c [4]float32) {
	for i := 0; i < len(buf.Pix); i += 4 {
		copy(buf.Pix[i:i+4], c[:])
	}
}

// At returns the colour at x, y. Coordinates outside the buffer are clamped to
// the nearest edge.
func (buf *Buffer) At(x int, y int) [4]float32 {
	x = max(0, min(x, buf.Width-1))
	y = max(0, min(y, buf.Height-1))
	i := (y*buf.Width + x) * 4
	return [4]float32{buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2], buf.Pix[i+3]}
}

// Set the colour at x, y. Coordinates outside the buffer are ignored.
func (buf *Buffer) Set(x int, y int, c [4]float32) {
	if x < 0 || y < 0 || x >= buf.Width || y >= buf.Height {
		return
	}
	i := (y*buf.Width + x) * 4
	copy(buf.Pix[i:i+4], c[:])
}

// Copy returns a copy of the buffer.
func (buf *Buffer) Copy() *Buffer {
	c := NewBuffer(buf.Width, buf.Height)
	copy(c.Pix, buf.Pix)
	return c
}

// ToImage converts the buffer to an 8 bit per channel image, as it would be
// stored in an RGBA8 texture.
func (buf *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for i, v := range buf.Pix {
		img.Pix[i] = Quantise(v)
	}
	return img
}

// Quantise converts a channel value to the 8 bit value stored in an RGBA8
// texture.
func Quantise(v float32) uint8 {
	v = clamp(v)
	return uint8(math32.Round(v * 255.0))
}
