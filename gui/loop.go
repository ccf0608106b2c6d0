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

package gui

import (
	"github.com/jetsetilly/glblur/assert"
	"github.com/jetsetilly/glblur/curated"
	"github.com/jetsetilly/glblur/logger"
	"github.com/jetsetilly/glblur/render"
)

// Run is the event loop. The frame is drawn with the clear colour whenever
// the window requests a redraw or is resized. Returns nil when the window is
// closed.
//
// The afterFirst function, if not nil, is called once, after the first frame
// has been drawn but before the buffers are swapped. An error from afterFirst
// ends the loop and the error is returned.
//
// MUST ONLY be called from the #mainthread
func Run(win Window, frame Renderer, clear render.Color, afterFirst func() error) error {
	if !assert.OnMainThread() {
		return curated.Errorf(ThreadError)
	}

	var frames int

	for {
		ev := win.WaitEvent()

		switch ev.ID {
		case EventClose:
			logger.Logf(logger.Allow, "gui", "close requested after %d frames", frames)
			return nil

		case EventResize:
			if d, ok := ev.Data.(EventDataResize); ok {
				logger.Logf(logger.Allow, "gui", "resized to %dx%d", d.Width, d.Height)
				if r, ok := frame.(Resizer); ok {
					r.Resize(d.Width, d.Height)
				}
			}

		case EventRedraw:

		default:
			continue
		}

		frame.RenderFrame(clear)
		frames++

		if frames == 1 && afterFirst != nil {
			err := afterFirst()
			if err != nil {
				return err
			}
		}

		win.SwapBuffers()
	}
}
