// This file is part of mdoutput.
//
// mdoutput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdoutput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdoutput.  If not, see <https://www.gnu.org/licenses/>.

// Package ringbuffer implements a fixed capacity circular byte buffer. It is
// used to decouple a producer working at one rate from a consumer working at
// another.
//
// Writing more data than there is free space overwrites the oldest unread
// data. Reading more data than is available returns only what is available.
// It is up to the caller to decide what to do with the shortfall.
//
// The Ring type is not safe for concurrent use. Callers sharing a Ring between
// goroutines must provide their own locking. See the sound package for an
// example.
package ringbuffer
