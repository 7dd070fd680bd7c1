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

// Package userinput handles input from the host display that the user is
// using to control the presentation of the emulation.
//
// It can be thought of as a translation layer between the display backend
// and the playmode package. Backends translate their own events into the
// Event types defined here and send them over a channel. The receiver then
// passes them to HandleUserInput(), which decides which Action the event
// represents.
//
// The display backend in use during development was SDL and so there will be
// a bias towards that system in the naming of keys.
package userinput
