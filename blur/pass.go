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
	"github.com/chewxy/math32"
)

// Pass performs a single blur pass over src in the direction dir and returns
// the result in a new buffer of the same size. Samples outside the source are
// clamped to the edge.
func Pass(src *Buffer, dir Direction, sigma float32) *Buffer {
	dst := NewBuffer(src.Width, src.Height)
	weights := Weights(sigma)

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			c := src.At(x, y)
			r, g, b := c[0], c[1], c[2]
			sum := float32(1.0)

			for i, w := range weights {
				k := i + 1
				p := src.At(x+dir[0]*k, y+dir[1]*k)
				n := src.At(x-dir[0]*k, y-dir[1]*k)
				r += (p[0] + n[0]) * w
				g += (p[1] + n[1]) * w
				b += (p[2] + n[2]) * w
				sum += 2 * w
			}

			dst.Set(x, y, [4]float32{
				clamp(r / sum),
				clamp(g / sum),
				clamp(b / sum),
				1.0,
			})
		}
	}

	return dst
}

// Separable performs a Horizontal pass followed by a Vertical pass.
func Separable(src *Buffer, sigma float32) *Buffer {
	return Pass(Pass(src, Horizontal, sigma), Vertical, sigma)
}

// NaN is clamped to zero
func clamp(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return math32.Min(1, v)
}
