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

// Package prefs facilitates the storage of preferential values in the program.
// The Bool, Int, Float and String types hold a single value and can have hook
// functions that are called just before and just after a change of value.
//
// Values are associated with a key and added to a Disk instance, which can
// load and save the values to a TOML file. Saving a Disk will not clobber
// values in the file that have been saved by another Disk instance using the
// same file.
//
//	var sigma prefs.Float
//	dsk, _ := prefs.NewDisk(paths.ResourcePath("preferences.toml"))
//	_ = dsk.Add("blur.sigma", &sigma)
//	_ = dsk.Load()
//
// Values can also be set from the command line with a string of the form
//
//	"blur.sigma::0.75; window.width::640"
//
// which is pushed onto the command line stack with PushCommandLineStack().
// Disk.Load() consumes command line values for the keys it knows about after
// the file has been loaded.
package prefs
