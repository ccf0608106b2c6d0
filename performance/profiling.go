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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/glblur/curated"
	"github.com/jetsetilly/glblur/logger"
)

// Profile specifies which profiles to create.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileCPU Profile = 1 << iota
	ProfileMem

	ProfileNone Profile = 0
)

// Sentinel error patterns returned by performance functions.
const (
	ProfileError = "performance: %v"
)

// ParseProfileString parses a comma separated list of profile names. Valid
// names are CPU, MEM, ALL and NONE. Names are case insensitive.
func ParseProfileString(s string) (Profile, error) {
	var p Profile
	for _, n := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(n)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "ALL":
			p |= ProfileCPU | ProfileMem
		default:
			return ProfileNone, curated.Errorf(ProfileError, fmt.Sprintf("unknown profile: %s", n))
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function with the specified profilers
// running. The profile files are named with the filenameHeader prefix.
//
// The error returned by run() is returned in preference to any profiling
// error.
func RunProfiler(profile Profile, filenameHeader string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		fn := fmt.Sprintf("%s_cpu.profile", filenameHeader)
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
		logger.Logf(logger.Allow, "performance", "cpu profile: %s", fn)
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		memErr := memProfile(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err == nil {
			err = memErr
		}
	}

	return err
}

func memProfile(fn string) error {
	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	logger.Logf(logger.Allow, "performance", "mem profile: %s", fn)

	return nil
}
