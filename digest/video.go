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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Video generates a SHA-1 value for a sequence of frames. The hash of each
// frame includes the hash of the previous frame.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames added since the last reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// NewFrame adds the image to the digest.
func (dig *Video) NewFrame(img *image.RGBA) {
	b := img.Bounds()
	rowLen := b.Dx() * 4

	// the size of the image can change between frames
	l := len(dig.digest) + rowLen*b.Dy()
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	i := copy(dig.pixels, dig.digest[:])

	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := img.PixOffset(b.Min.X, y)
		i += copy(dig.pixels[i:], img.Pix[o:o+rowLen])
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}

// compile time check that Video satisfies the Digest interface
var _ Digest = (*Video)(nil)
