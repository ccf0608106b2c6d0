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

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/glblur/curated"
	"github.com/jetsetilly/glblur/prefs"
	"github.com/jetsetilly/glblur/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "glblur", "preferences.toml")
}

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get(), prefs.Value(false))
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get(), prefs.Value(true))

	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get(), prefs.Value(false))

	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectFailure(t, v.Set(10))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "false")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Get(), prefs.Value(0))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.String(), "10")

	// string conversion to int
	test.ExpectSuccess(t, v.Set(" 99"))
	test.ExpectEquality(t, v.Get(), prefs.Value(99))

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))

	// failed sets don't change the value
	test.ExpectEquality(t, v.Get(), prefs.Value(99))
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(float32(0.5)))
	test.ExpectEquality(t, v.String(), "0.5")

	test.ExpectSuccess(t, v.Set("0.75"))
	test.ExpectEquality(t, v.Get(), prefs.Value(0.75))

	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Get(), prefs.Value(2.0))

	test.ExpectFailure(t, v.Set("x"))
	test.ExpectFailure(t, v.Set(true))
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the update and the post hook is not called
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), prefs.Value(5))
	test.ExpectEquality(t, post, 5)
}

func TestDiskSaveAndLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var i prefs.Int
	var f prefs.Float
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectSuccess(t, dsk.Add("test.int", &i))
	test.ExpectSuccess(t, dsk.Add("test.float", &f))
	test.ExpectSuccess(t, dsk.Add("test.string", &s))

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, i.Set(640))
	test.ExpectSuccess(t, f.Set(0.25))
	test.ExpectSuccess(t, s.Set("hello world"))

	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, i.Get(), prefs.Value(0))

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
	test.ExpectEquality(t, i.Get(), prefs.Value(640))
	test.ExpectEquality(t, f.Get(), prefs.Value(0.25))
	test.ExpectEquality(t, s.Get(), prefs.Value("hello world"))
}

func TestDiskMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var i prefs.Int
	test.ExpectSuccess(t, i.Set(3))
	test.ExpectSuccess(t, dsk.Add("number", &i))

	// a missing file is not an error and values are unchanged
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get(), prefs.Value(3))
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestDiskPreservesOtherKeys(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// a third instance sees both values
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w prefs.Bool
	var r prefs.String
	test.ExpectSuccess(t, dsk.Add("test", &w))
	test.ExpectSuccess(t, dsk.Add("foo", &r))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, w.Get(), prefs.Value(true))
	test.ExpectEquality(t, r.String(), "bar")
}

func TestDiskKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))

	err = dsk.Add("test", &v)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.AddError))

	for _, k := range []string{"", "with space", "a::b", "a;b"} {
		err = dsk.Add(k, &v)
		test.ExpectSuccess(t, curated.Is(err, prefs.KeyError), k)
	}

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestDiskCommandLine(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("window.width", &i))
	test.ExpectSuccess(t, dsk.Add("blur.sigma", &f))
	test.ExpectSuccess(t, i.Set(100))
	test.ExpectSuccess(t, f.Set(0.5))
	test.DemandSuccess(t, dsk.Save())

	// the command line takes priority over the file
	prefs.PushCommandLineStack("blur.sigma::0.8; unknown::1")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get(), prefs.Value(100))
	test.ExpectEquality(t, f.Get(), prefs.Value(0.8))

	// unused values remain on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")
}

func TestDiskBadValue(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.MkdirAll(filepath.Dir(fn), 0o700))
	test.DemandSuccess(t, os.WriteFile(fn, []byte("number = 'ten'\nflag = 'true'\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("number", &i))
	test.ExpectSuccess(t, dsk.Add("flag", &b))

	// the bad value is reported but the good value is still loaded
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.LoadError))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
	test.ExpectEquality(t, i.Get(), prefs.Value(0))
}
