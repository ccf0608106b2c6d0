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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/glblur/test"
)

func TestLocal(t *testing.T) {
	inf := fromSettings("", nil)
	test.ExpectEquality(t, inf.Number, "local")
	test.ExpectEquality(t, inf.String(), "glblur local")
}

func TestUnreleased(t *testing.T) {
	inf := fromSettings("", []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123abcd"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectEquality(t, inf.Number, "unreleased")
	test.ExpectEquality(t, inf.Modified, true)
	test.ExpectEquality(t, inf.String(), "glblur unreleased (0123abcd+dirty)")
}

func TestNumbered(t *testing.T) {
	inf := fromSettings("v0.1.0", []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123abcd"},
		{Key: "vcs.modified", Value: "false"},
	})
	test.ExpectEquality(t, inf.Number, "v0.1.0")
	test.ExpectEquality(t, inf.String(), "glblur v0.1.0 (0123abcd)")
}
