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

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/jetsetilly/glblur/blur"
	"github.com/jetsetilly/glblur/paths"
	"github.com/jetsetilly/glblur/prefs"
	"github.com/jetsetilly/glblur/render"
)

// list of window backends. values are the same as expected by the -backend
// flag and the backend preference
const (
	backendSDL  = "SDL"
	backendGLFW = "GLFW"
)

const prefsFile = "preferences.toml"

// preferences that can be specified on the command line and saved to disk. the
// keys in the preferences file are the same as the flag names
type preferences struct {
	dsk *prefs.Disk

	backend prefs.String
	width   prefs.Int
	height  prefs.Int
	title   prefs.String
	sigma   prefs.Float
	clear   prefs.String
}

func (p *preferences) String() string {
	return p.dsk.String()
}

// newPreferences creates the preferences and loads any values from the
// preferences file. values from the command line stack are applied after the
// file is read.
func newPreferences(path string) (*preferences, error) {
	p := &preferences{}
	p.setDefaults()

	p.backend.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(fmt.Sprintf("%v", v)) {
		case backendSDL, backendGLFW:
			return nil
		}
		return fmt.Errorf("unknown backend: %v", v)
	})
	p.width.SetHookPre(positive)
	p.height.SetHookPre(positive)
	p.sigma.SetHookPre(func(v prefs.Value) error {
		return checkSigma(v.(float64))
	})
	p.clear.SetHookPre(func(v prefs.Value) error {
		_, err := render.ParseColor(fmt.Sprintf("%v", v))
		return err
	})
	p.title.SetMaxLen(128)

	if path == "" {
		path = paths.ResourcePath(prefsFile)
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	entries := []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{"backend", &p.backend},
		{"width", &p.width},
		{"height", &p.height},
		{"title", &p.title},
		{"sigma", &p.sigma},
		{"clear", &p.clear},
	}
	for _, e := range entries {
		err = p.dsk.Add(e.key, e.p)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// hooks receive the value after conversion from a string
func positive(v prefs.Value) error {
	if v.(int) <= 0 {
		return fmt.Errorf("value must be greater than zero")
	}
	return nil
}

// checkSigma rejects negative and non-finite values
func checkSigma(sigma float64) error {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return fmt.Errorf("sigma must be a finite value not less than zero: %v", sigma)
	}
	return nil
}

// default window. GLFW is the default backend because it is the only backend
// that can request a transparent framebuffer
const (
	defaultBackend = backendGLFW
	defaultWidth   = 640
	defaultHeight  = 480
	defaultTitle   = "Hello world!"
)

func (p *preferences) setDefaults() {
	_ = p.backend.Set(defaultBackend)
	_ = p.width.Set(defaultWidth)
	_ = p.height.Set(defaultHeight)
	_ = p.title.Set(defaultTitle)
	_ = p.sigma.Set(float64(blur.DefaultSigma))
	_ = p.clear.Set(render.DefaultClear.String())
}

// load the preferences from disk again. used after a new group has been added
// to the command line stack
func (p *preferences) load() error {
	return p.dsk.Load()
}

func (p *preferences) save() error {
	return p.dsk.Save()
}

// clearColor returns the clear preference as a render.Color. the value has
// already been checked by the pre hook so any error is impossible
func (p *preferences) clearColor() render.Color {
	c, err := render.ParseColor(p.clear.String())
	if err != nil {
		return render.DefaultClear
	}
	return c
}
