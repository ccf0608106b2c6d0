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

// Package render owns the GPU resources used to draw the demo scene and
// exposes the per-frame draw routine.
//
// A Pipeline is created with NewPipeline(). The graphics context that the
// glapi.API talks to must be current on the calling thread, both for
// NewPipeline() and for every subsequent call to RenderFrame(). The Pipeline
// is not safe for concurrent use.
//
// In its default configuration the pipeline draws a triangle into an
// offscreen framebuffer, blurs it horizontally into a second offscreen
// framebuffer and then blurs that vertically onto the default framebuffer.
// The blur is a single-axis Gaussian, applied twice with orthogonal
// directions. The blur package contains a CPU version of the same kernel.
//
// With Options.Blur set to false the triangle is drawn directly to the
// default framebuffer and no offscreen resources are allocated.
//
// Errors returned by NewPipeline() are curated errors. The pattern can be
// tested with curated.Has(), for example:
//
//	if curated.Has(err, render.ShaderCompileError) {
//		...
//	}
package render
