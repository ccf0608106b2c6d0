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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and allows
// different flags for each mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Modes are
// added with AddSubModes(), the first of which is the default mode. If the
// first non-flag argument matches a mode (case insensitive) then that mode is
// selected, otherwise the default mode is selected and the argument is left
// for the next round of parsing. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("BLUR", "TRIANGLE", "KERNEL")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "BLUR":
//		md.NewMode()
//		sigma := md.AddFloat64("sigma", 0.5, "blur sigma")
//		...
//	}
//
// A call to NewMode() starts a new set of flags for the remaining arguments.
// The path of modes that have been selected is returned by Path().
//
// Help is printed to the Output writer if the -help flag is encountered. The
// help lists the flags for the current mode and the sub-modes that can be
// selected. Additional help can be added with AdditionalHelp().
package modalflag
