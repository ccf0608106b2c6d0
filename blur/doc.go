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

// Package blur is a CPU implementation of the separable gaussian blur
// performed by the blur fragment shader. It mirrors the shader arithmetic in
// float32 and is used to describe the kernel (the KERNEL mode of the program)
// and to check the behaviour of the blur without a graphics context.
//
// A blur pass samples the source along a single axis. The sample at the
// fragment position has a weight of one. Samples at offsets of plus and minus
// i texels, for i from 1 to MaxTaps, are weighted by a gaussian density
// evaluated at i/MaxTaps. The loop stops at the first weight that is smaller
// than Threshold. The result is the weighted average of the samples, clamped
// to the range 0 to 1, with an alpha of one.
//
// Running a Horizontal pass followed by a Vertical pass approximates a two
// dimensional gaussian blur.
package blur
