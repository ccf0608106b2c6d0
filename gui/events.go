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

import "fmt"

// EventID identifies the type of event.
type EventID int

// List of valid events.
const (
	EventNone EventID = iota
	EventClose
	EventRedraw
	EventResize
)

func (id EventID) String() string {
	switch id {
	case EventNone:
		return "none"
	case EventClose:
		return "close"
	case EventRedraw:
		return "redraw"
	case EventResize:
		return "resize"
	}
	return fmt.Sprintf("unknown event (%d)", int(id))
}

// EventData represents the data that is associated with an event.
type EventData interface{}

// Event is returned by Window.WaitEvent().
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataResize is the data that accompanies EventResize events. The size
// is the size of the drawable area in pixels, which might not be the same as
// the size of the window on high DPI displays.
type EventDataResize struct {
	Width  int32
	Height int32
}
