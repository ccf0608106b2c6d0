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

// Package assert contains checks that are only useful for catching
// programming errors.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// goroutine ID of the #mainthread. zero if SetMainThread() has not been called
var mainThread atomic.Uint64

// SetMainThread records the calling goroutine as the #mainthread. The goroutine
// should have been locked to the OS thread with runtime.LockOSThread().
func SetMainThread() {
	mainThread.Store(GetGoRoutineID())
}

// OnMainThread returns true if the calling goroutine is the one recorded by
// SetMainThread(). Always true if SetMainThread() has not been called.
func OnMainThread() bool {
	id := mainThread.Load()
	return id == 0 || id == GetGoRoutineID()
}
