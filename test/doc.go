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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf() and should be
// used when later parts of the test depend on the value being correct.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Note that a nil value is considered a success. This is because of how
// errors are usually returned (nil to indicate no error) and there is no way
// to distinguish an untyped nil from a nil error once it has been passed as
// an interface.
//
// CompareWriter implements io.Writer and can be used to capture output for
// later comparison with an expected string.
package test
