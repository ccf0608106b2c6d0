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
	"math"

	"github.com/chewxy/math32"
)

// MaxTaps is the maximum number of samples taken either side of the fragment.
const MaxTaps = 32

// Threshold is the weight below which a sample makes no visible contribution
// to an 8 bit colour channel.
const Threshold = float32(1.0 / 255.0)

// DefaultSigma is the sigma value used by the render pipeline unless
// otherwise specified.
const DefaultSigma = float32(0.5)

// Direction of a blur pass in texels.
type Direction [2]int

// List of valid Direction values.
var (
	Horizontal = Direction{1, 0}
	Vertical   = Direction{0, 1}
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "oblique"
}

// CalcGauss returns the gaussian density at x for the given sigma. The result
// is zero if sigma is not positive or is NaN.
func CalcGauss(x float32, sigma float32) float32 {
	if !(sigma > 0.0) {
		return 0.0
	}
	return math32.Exp(-(x*x)/(2.0*sigma)) / (2.0 * float32(math.Pi) * sigma)
}

// Weights returns the weights of the samples at offsets 1, 2, 3, ... for the
// sigma value as it is given to the blur shader. The shader halves the value
// before calculating the density.
//
// The length of the returned slice is the number of samples taken either side
// of the fragment and is never more than MaxTaps. The weights are
// non-increasing.
func Weights(sigma float32) []float32 {
	w := make([]float32, 0, MaxTaps)
	for i := 1; i <= MaxTaps; i++ {
		g := CalcGauss(float32(i)/MaxTaps, sigma*0.5)
		if !(g >= Threshold) {
			break
		}
		w = append(w, g)
	}
	return w
}

// Sum returns the sum of all the weights applied in a single blur pass,
// including the implicit weight of the centre sample.
func Sum(weights []float32) float32 {
	s := float32(1.0)
	for _, w := range weights {
		s += 2 * w
	}
	return s
}
