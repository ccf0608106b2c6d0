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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a pattern and a list
// of values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that produce errors
// callers may want to react to export the pattern as a constant. For example,
// the render package exports ShaderCompileError:
//
//	const ShaderCompileError = "shader compile: %s: %s"
//
// and the caller can test for it with Is() or Has():
//
//	_, err := render.NewPipeline(api, opts)
//	if curated.Has(err, render.ShaderCompileError) {
//		...
//	}
//
// Is() checks only the outermost error. Has() checks the outermost error and
// every curated error found in its values.
//
// The Error() function normalises the message. Message parts are separated by
// the sub-string ": " and adjacent duplicate parts are removed. This means
// that a function can wrap an error with its own context without worrying
// whether the context has already been added further down the call chain:
//
//	curated.Errorf("render: %v", curated.Errorf("render: %v", err))
//
// produces "render: ..." and not "render: render: ...".
//
// Curated errors support the Unwrap() convention so the standard errors.Is()
// and errors.As() functions see through them to the first error value.
package curated
