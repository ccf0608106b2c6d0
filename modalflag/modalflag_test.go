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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/glblur/modalflag"
	"github.com/jetsetilly/glblur/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectSuccess(t, md.IsSet("test"))
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModeSelection(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"triangle", "-width", "640", "file.png"})
	md.AddSubModes("BLUR", "TRIANGLE", "KERNEL")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "TRIANGLE")

	md.NewMode()
	width := md.AddInt("width", 320, "window width")
	height := md.AddInt("height", 240, "window height")

	p, err = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *width, 640)
	test.ExpectEquality(t, *height, 240)
	test.ExpectSuccess(t, md.IsSet("width"))
	test.ExpectFailure(t, md.IsSet("height"))
	test.ExpectEquality(t, md.GetArg(0), "file.png")
	test.ExpectEquality(t, md.Path(), "TRIANGLE")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-sigma", "0.75"})
	md.AddSubModes("BLUR", "TRIANGLE")

	// the unknown flag selects the default mode
	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "BLUR")

	md.NewMode()
	sigma := md.AddFloat64("sigma", 0.5, "blur sigma")

	p, err = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *sigma, 0.75)
}

func TestModeAfterFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "kernel", "-sigma", "2"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("BLUR", "KERNEL")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "KERNEL")

	md.NewMode()
	sigma := md.AddString("sigma", "", "blur sigma")

	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *sigma, "2")
}

type value struct {
	s string
}

func (v *value) String() string {
	return v.s
}

func (v *value) Set(s string) error {
	v.s = s
	return nil
}

func TestAddVar(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-clear", "1,0,0"})

	v := &value{s: "0,0,0"}
	md.AddVar(v, "clear", "clear colour")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v.s, "1,0,0")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("blur", "triangle", "kernel")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: BLUR, TRIANGLE, KERNEL\n" +
		"    default: BLUR\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B\n" +
		"    default: A\n" +
		"\n" +
		"more help\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpBanner(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"kernel", "-help"})
	md.AddSubModes("BLUR", "KERNEL")

	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available for KERNEL\n"), tw.String())
}
