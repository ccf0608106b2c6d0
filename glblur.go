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
	"image"
	"image/png"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jetsetilly/glblur/assert"
	"github.com/jetsetilly/glblur/blur"
	"github.com/jetsetilly/glblur/digest"
	"github.com/jetsetilly/glblur/glapi"
	"github.com/jetsetilly/glblur/glapi/gl32"
	"github.com/jetsetilly/glblur/gui"
	"github.com/jetsetilly/glblur/gui/glfwwindow"
	"github.com/jetsetilly/glblur/gui/sdlwindow"
	"github.com/jetsetilly/glblur/logger"
	"github.com/jetsetilly/glblur/modalflag"
	"github.com/jetsetilly/glblur/paths"
	"github.com/jetsetilly/glblur/performance"
	"github.com/jetsetilly/glblur/prefs"
	"github.com/jetsetilly/glblur/render"
	"github.com/jetsetilly/glblur/statsview"
	"github.com/jetsetilly/glblur/version"
)

// exit values
const (
	exitArgs = 10
	exitMode = 20
)

func init() {
	// the GL context and the window event queue must be serviced from the
	// #mainthread. main() is always called on the main thread but the
	// goroutine must be locked to it
	runtime.LockOSThread()
	assert.SetMainThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Stdout, os.Args[1:], ""))
}

// launch returns the value to use with os.Exit(). an empty prefsPath means
// that the default location of the preferences file is used
func launch(output io.Writer, args []string, prefsPath string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("BLUR", "TRIANGLE", "KERNEL", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "BLUR":
		err = show(output, md, true, prefsPath)
	case "TRIANGLE":
		err = show(output, md, false, prefsPath)
	case "KERNEL":
		err = kernel(output, md)
	case "VERSION":
		fmt.Fprintln(output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return 0
}

// colorFlag allows a render.Color to be specified on the command line
type colorFlag struct {
	col render.Color
}

func (f *colorFlag) String() string {
	return f.col.String()
}

func (f *colorFlag) Set(s string) error {
	c, err := render.ParseColor(s)
	if err != nil {
		return err
	}
	f.col = c
	return nil
}

// show the scene in a window. if blurOn is false the triangle is drawn
// directly to the window
func show(output io.Writer, md *modalflag.Modes, blurOn bool, prefsPath string) error {
	md.NewMode()

	prf, err := newPreferences(prefsPath)
	if err != nil {
		return err
	}

	backend := md.AddString("backend", prf.backend.String(), "window backend: SDL, GLFW")
	width := md.AddInt("width", prf.width.Get().(int), "width of window")
	height := md.AddInt("height", prf.height.Get().(int), "height of window")
	title := md.AddString("title", prf.title.String(), "window title")
	clearCol := &colorFlag{col: prf.clearColor()}
	md.AddVar(clearCol, "clear", "clear colour of scene as r,g,b[,a]")
	screenshot := md.AddString("screenshot", "", "save first frame to PNG file. 'auto' for a unique filename")
	showDigest := md.AddBool("digest", false, "print SHA-1 digest of first frame")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, ALL (comma separated)")
	echo := md.AddBool("log", false, "echo debugging log to stdout")
	savePrefs := md.AddBool("savePrefs", false, "save preferences to disk")
	cmdPrefs := md.AddString("prefs", "", "preferences for this run: key::value; key::value")

	var sigma *float64
	if blurOn {
		sigma = md.AddFloat64("sigma", prf.sigma.Get().(float64), "sigma value of gaussian blur")
	}

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp(fmt.Sprintf("preferences file: %s", prf.dsk.Path()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *echo {
		logger.SetEcho(output)
	}
	logger.Log(logger.Allow, "glblur", version.Version())

	if stats != nil && *stats {
		stop := statsview.Launch(output)
		defer stop()
	}

	// preferences on the command line take precedence over the preferences
	// file. explicit flags take precedence over both
	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		err = prf.load()
		unused := prefs.PopCommandLineStack()
		if err != nil {
			return err
		}
		if unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}

	flags := map[string]prefs.Value{
		"backend": *backend,
		"width":   *width,
		"height":  *height,
		"title":   *title,
		"clear":   clearCol.String(),
	}
	if sigma != nil {
		flags["sigma"] = *sigma
	}
	err = applyFlags(md, prf, flags)
	if err != nil {
		return err
	}

	if *savePrefs {
		err = prf.save()
		if err != nil {
			return err
		}
	}

	win, err := newWindow(prf)
	if err != nil {
		return err
	}
	defer func() {
		err := win.Destroy()
		if err != nil {
			logger.Log(logger.Allow, "gui", err)
		}
	}()

	api, err := gl32.NewGL32(win.ProcAddr)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "pixel format: %s\n", win.PixelFormat())
	fmt.Fprintf(output, "GL version: %s\n", api.GetString(glapi.Version))

	opts := render.DefaultOptions()
	opts.Blur = blurOn
	opts.Sigma = float32(prf.sigma.Get().(float64))

	pl, err := render.NewPipeline(api, opts)
	if err != nil {
		return err
	}
	defer pl.Destroy()

	var afterFirst func() error
	if *screenshot != "" || *showDigest {
		filename := *screenshot
		if filename == "auto" {
			filename = fmt.Sprintf("%s.png", paths.UniqueFilename("glblur", md.Mode()))
		}
		afterFirst = func() error {
			img := pl.Snapshot()
			if *showDigest {
				dig := digest.NewVideo()
				dig.NewFrame(img)
				fmt.Fprintf(output, "digest: %s\n", dig.Hash())
			}
			if filename != "" {
				err := saveImage(img, filename)
				if err != nil {
					return err
				}
				fmt.Fprintf(output, "screenshot saved to %s\n", filename)
			}
			return nil
		}
	}

	return performance.RunProfiler(prof, "glblur", func() error {
		return gui.Run(win, pl, prf.clearColor(), afterFirst)
	})
}

// applyFlags sets the preference value for every flag that has been set
// explicitly on the command line. the keys in the values map are flag names
func applyFlags(md *modalflag.Modes, prf *preferences, values map[string]prefs.Value) error {
	targets := map[string]interface{ Set(prefs.Value) error }{
		"backend": &prf.backend,
		"width":   &prf.width,
		"height":  &prf.height,
		"title":   &prf.title,
		"clear":   &prf.clear,
		"sigma":   &prf.sigma,
	}

	for name, v := range values {
		if !md.IsSet(name) {
			continue
		}
		err := targets[name].Set(v)
		if err != nil {
			return fmt.Errorf("-%s: %w", name, err)
		}
	}

	return nil
}

func newWindow(prf *preferences) (gui.Window, error) {
	title := prf.title.String()
	width := int32(prf.width.Get().(int))
	height := int32(prf.height.Get().(int))

	if strings.ToUpper(prf.backend.String()) == backendGLFW {
		win, err := glfwwindow.NewWindow(title, width, height)
		if err != nil {
			return nil, err
		}
		return win, nil
	}

	win, err := sdlwindow.NewWindow(title, width, height)
	if err != nil {
		return nil, err
	}
	return win, nil
}

func saveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("screenshot: %w", err)
	}

	return f.Close()
}

// kernel prints the weights used by the blur shader for a sigma value
func kernel(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	sigma := md.AddFloat64("sigma", float64(blur.DefaultSigma), "sigma value of gaussian blur")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = checkSigma(*sigma)
	if err != nil {
		return err
	}

	w := blur.Weights(float32(*sigma))

	fmt.Fprintf(output, "sigma %g: %d taps\n", *sigma, len(w))
	for i, v := range w {
		fmt.Fprintf(output, "%2d  %.5f  %.6f\n", i+1, float32(i+1)/blur.MaxTaps, v)
	}
	fmt.Fprintf(output, "sum: %.6f\n", blur.Sum(w))

	return nil
}
