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

package blur_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/glblur/blur"
	"github.com/jetsetilly/glblur/test"
)

func TestCalcGaussNonPositiveSigma(t *testing.T) {
	for _, x := range []float32{-1.0, -0.5, 0.0, 0.25, 1.0, 100.0} {
		test.ExpectEquality(t, blur.CalcGauss(x, 0.0), 0.0, x)
		test.ExpectEquality(t, blur.CalcGauss(x, -0.25), 0.0, x)
		test.ExpectEquality(t, blur.CalcGauss(x, -100.0), 0.0, x)
	}
}

func TestCalcGaussSymmetry(t *testing.T) {
	for _, sigma := range []float32{0.01, 0.25, 0.5, 1.0, 10.0} {
		for i := 0; i <= blur.MaxTaps; i++ {
			x := float32(i) / blur.MaxTaps
			test.ExpectEquality(t, blur.CalcGauss(x, sigma), blur.CalcGauss(-x, sigma), sigma, x)
		}
	}
}

func TestCalcGaussPeak(t *testing.T) {
	// density at zero is 1/(2*pi*sigma)
	test.ExpectApproximate(t, blur.CalcGauss(0, 0.25), 0.63662, 0.0001)
	test.ExpectApproximate(t, blur.CalcGauss(1, 0.25), 0.08616, 0.0001)
}

func TestWeightsBounded(t *testing.T) {
	for _, sigma := range []float32{0.001, 0.01, 0.1, 0.5, 1.0, 2.0, 50.0, 1000.0} {
		w := blur.Weights(sigma)
		test.ExpectSuccess(t, len(w) <= blur.MaxTaps, sigma)

		for i := 1; i < len(w); i++ {
			test.ExpectSuccess(t, w[i] <= w[i-1], sigma, i)
		}
		for i := range w {
			test.ExpectSuccess(t, w[i] >= blur.Threshold, sigma, i)
		}
	}
}

func TestWeightsEarlyExit(t *testing.T) {
	// the default sigma never falls below the threshold
	test.ExpectEquality(t, len(blur.Weights(blur.DefaultSigma)), blur.MaxTaps)

	// a very narrow kernel stops early
	w := blur.Weights(0.01)
	test.ExpectSuccess(t, len(w) > 0)
	test.ExpectSuccess(t, len(w) < blur.MaxTaps)

	// a very wide kernel is flat and below threshold everywhere
	test.ExpectEquality(t, len(blur.Weights(1000.0)), 0)

	// sigma of zero has no weights at all
	test.ExpectEquality(t, len(blur.Weights(0.0)), 0)
}

func TestWeightsMatchCalcGauss(t *testing.T) {
	w := blur.Weights(blur.DefaultSigma)
	for i := range w {
		x := float32(i+1) / blur.MaxTaps
		test.ExpectEquality(t, w[i], blur.CalcGauss(x, blur.DefaultSigma*0.5), i)
	}
}

func TestSum(t *testing.T) {
	test.ExpectEquality(t, blur.Sum(nil), 1.0)
	test.ExpectEquality(t, blur.Sum([]float32{0.25, 0.125}), 1.75)
}

func TestDirectionString(t *testing.T) {
	test.ExpectEquality(t, blur.Horizontal.String(), "horizontal")
	test.ExpectEquality(t, blur.Vertical.String(), "vertical")
	test.ExpectEquality(t, blur.Direction{1, 1}.String(), "oblique")
}

func TestNonFiniteSigma(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	test.ExpectEquality(t, blur.CalcGauss(0.5, nan), 0.0)
	test.ExpectEquality(t, blur.CalcGauss(0.5, inf), 0.0)

	test.ExpectEquality(t, len(blur.Weights(nan)), 0)
	test.ExpectEquality(t, len(blur.Weights(inf)), 0)
	test.ExpectEquality(t, blur.Sum(blur.Weights(nan)), 1.0)
}
