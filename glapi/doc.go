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

// Package glapi describes the subset of OpenGL used by the render pipeline.
//
// The API interface is the only way the rest of the program talks to the
// graphics driver. The real implementation lives in the gl32 sub-package and
// wraps the go-gl bindings. Keeping the interface and the enum values in a
// package of their own means that packages depending on glapi can be built
// and tested without cgo or a graphics context.
//
// The constants in this package have the same numeric values as the
// corresponding OpenGL enums and are passed through to the driver unchanged.
//
// Methods that in C take a count and a pointer to an array of names (eg.
// glGenTextures) are simplified to create or delete a single name. Methods
// that take a C string take a Go string instead.
package glapi
