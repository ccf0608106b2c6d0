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

package assert

import (
	"testing"

	"github.com/jetsetilly/glblur/test"
)

func TestGoRoutineID(t *testing.T) {
	id := GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, GetGoRoutineID(), id)

	other := make(chan uint64)
	go func() {
		other <- GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-other, id)
}

func TestMainThread(t *testing.T) {
	t.Cleanup(func() { mainThread.Store(0) })

	test.ExpectSuccess(t, OnMainThread())

	SetMainThread()
	test.ExpectSuccess(t, OnMainThread())

	other := make(chan bool)
	go func() {
		other <- OnMainThread()
	}()
	test.ExpectFailure(t, <-other)
}
