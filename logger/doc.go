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

// Package logger is the central log for the program. Log entries are tagged
// with a short string indicating the source of the entry. For example:
//
//	logger.Logf(logger.Allow, "render", "viewport %dx%d", w, h)
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. The number of entries is capped and the oldest
// entries are dropped when the cap is reached.
//
// Entries can be echoed to an io.Writer as they are created with SetEcho().
// This is how the -log command line option is implemented.
//
// The Permission interface allows the caller to decide at the point of logging
// whether the entry should be made. The Allow value permits every entry.
//
// The package level functions use a single central instance. The Logger type
// can be instantiated separately with NewLogger(), which is useful for testing.
package logger
