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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jetsetilly/glblur/paths"
	"github.com/jetsetilly/glblur/test"
)

func TestResourcePath(t *testing.T) {
	// the test is run in the package directory, which does not contain a
	// .glblur directory
	cnf, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config directory: %v", err)
	}
	base := filepath.Join(cnf, "glblur")

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(base, "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(base, "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(base, "baz"))
	test.ExpectEquality(t, paths.ResourcePath("", ""), base)
}

func TestUniqueFilename(t *testing.T) {
	ts := regexp.MustCompile(`_\d{8}_\d{6}$`)

	fn := paths.UniqueFilename("glblur", " Blur ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "glblur_blur_"), fn)
	test.ExpectSuccess(t, ts.MatchString(fn), fn)

	fn = paths.UniqueFilename("glblur", "")
	test.ExpectSuccess(t, ts.MatchString(fn), fn)
	test.ExpectEquality(t, len(fn), len("glblur_YYYYMMDD_HHMMSS"))
}
