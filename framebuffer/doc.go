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

// Package framebuffer provides a convenient way of working with OpenGL
// framebuffers. The Sequence type conceptualises a sequence of render targets,
// each one a colour texture paired with its own framebuffer object and a
// depth/stencil renderbuffer.
//
// The key to the Sequence type is the texture index. This is not to be
// confused with the texture ID. The number of textures (and therefore texture
// indices) is defined at Sequence creation, with NewSequence().
//
// For example, to create a framebuffer sequence with two textures:
//
//	seq := NewSequence(api, 2)
//
// The Setup() function must be called once after NewSequence(). It allocates
// the textures and renderbuffers and checks that every framebuffer is
// complete. The dimensions of a Sequence are fixed once Setup() has succeeded.
//
//	err := seq.Setup(800, 600)
//
// The Process() function binds the framebuffer for the texture index and, for
// convenience, runs the supplied draw() function. The texture ID is returned
// and can be used as the input to the next call to Process().
//
//	texture := seq.Process(0, func() {
//		// 1. set up shader
//		// 2. OpenGL draw (eg. DrawArrays())
//	})
package framebuffer
