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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/glblur/curated"
)

// Color is a normalised RGBA colour as passed to the GL clear functions.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// White is the colour the blur targets are cleared to before drawing.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// DefaultClear is the colour the scene target is cleared to if no other
// colour is specified. The alpha is less than one so the scene is partly
// see-through on a transparent window surface.
var DefaultClear = Color{R: 1, G: 0.5, B: 0.7, A: 0.3}

func (c Color) String() string {
	return fmt.Sprintf("%.3g,%.3g,%.3g,%.3g", c.R, c.G, c.B, c.A)
}

// Sentinel error returned by ParseColor().
const ColorError = "color: %v"

// ParseColor parses a string of three or four comma separated values in the
// range 0 to 1. Alpha is 1 if omitted.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return Color{}, curated.Errorf(ColorError, fmt.Sprintf("expected r,g,b[,a] not %q", s))
	}

	v := [4]float32{1, 1, 1, 1}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return Color{}, curated.Errorf(ColorError, err)
		}
		if !(f >= 0 && f <= 1) {
			return Color{}, curated.Errorf(ColorError, fmt.Sprintf("%s out of range", p))
		}
		v[i] = float32(f)
	}

	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}
