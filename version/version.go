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

// Package version reports the version of the program and the VCS revision it
// was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "glblur"

// set with -ldflags "-X github.com/jetsetilly/glblur/version.number=v0.1.0"
// for release builds. if it is empty the version is derived from the build
// information
var number string

// Info describes the build.
type Info struct {
	// the release number. "unreleased" if there is VCS information but no
	// release number and "local" if there is neither. the latter happens with
	// "go run ."
	Number string

	// VCS revision. empty if there is no VCS information
	Revision string

	// the source had uncommitted changes when it was built
	Modified bool
}

// Release is true if the build has a release number.
func (inf Info) Release() bool {
	return number != "" && inf.Number == number
}

func (inf Info) String() string {
	if inf.Revision == "" {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Number)
	}
	rev := inf.Revision
	if inf.Modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Number, rev)
}

// Version returns the Info for the running binary.
func Version() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fromSettings(number, nil)
	}
	return fromSettings(number, info.Settings)
}

func fromSettings(num string, settings []debug.BuildSetting) Info {
	var inf Info
	var vcs bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			inf.Revision = s.Value
		case "vcs.modified":
			inf.Modified = s.Value == "true"
		}
	}

	switch {
	case num != "":
		inf.Number = num
	case vcs:
		inf.Number = "unreleased"
	default:
		inf.Number = "local"
	}

	return inf
}
