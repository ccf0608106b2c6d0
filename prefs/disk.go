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

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/glblur/curated"
	"github.com/jetsetilly/glblur/logger"
	"github.com/pelletier/go-toml/v2"
)

// WarningBoilerPlate is written at the top of every preferences file.
const WarningBoilerPlate = "# *** do not edit this file by hand while glblur is running ***"

// Sentinel error patterns returned by Disk functions.
const (
	KeyError  = "prefs: invalid key: %q"
	AddError  = "prefs: key already added: %s"
	LoadError = "prefs: load: %v"
	SaveError = "prefs: save: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(LoadError, "no path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk. Keys must
// not be empty or contain whitespace.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n:;") {
		return curated.Errorf(KeyError, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(AddError, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		err := p.Reset()
		if err != nil {
			return err
		}
	}
	return nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s = %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// read the preferences file. a missing file is not an error
func (dsk *Disk) read() (map[string]string, error) {
	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	values := make(map[string]string)
	err = toml.Unmarshal(data, &values)
	if err != nil {
		return nil, err
	}

	return values, nil
}

// Save current preference values to disk. Values in the file for keys that
// have not been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	var b bytes.Buffer
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n")

	err = toml.NewEncoder(&b).Encode(values)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	err = os.MkdirAll(filepath.Dir(dsk.path), 0o700)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	err = os.WriteFile(dsk.path, b.Bytes(), 0o600)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d values to %s", len(dsk.entries), dsk.path)

	return nil
}

// Load preference values from disk. Values on the command line stack (see
// PushCommandLineStack()) are applied after the file has been read.
//
// Values in the file that cannot be set are reported but do not prevent other
// values from being loaded.
func (dsk *Disk) Load() error {
	values, err := dsk.read()
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	var loadErr error

	for k, p := range dsk.entries {
		if v, ok := values[k]; ok {
			err := p.Set(v)
			if err != nil {
				logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
				if loadErr == nil {
					loadErr = curated.Errorf(LoadError, fmt.Errorf("%s: %w", k, err))
				}
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			err := p.Set(v)
			if err != nil {
				logger.Logf(logger.Allow, "prefs", "command line: %s: %v", k, err)
				if loadErr == nil {
					loadErr = curated.Errorf(LoadError, fmt.Errorf("%s: %w", k, err))
				}
			}
		}
	}

	return loadErr
}
