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

package sound

// Device is implemented by audio backends that consume samples from a Bridge.
// Backends open the Bridge with the Spec negotiated with the host device and
// close it again when the Device is closed.
type Device interface {
	// Spec returns the specification obtained from the host device. It may
	// differ from the requested specification
	Spec() Spec

	// SetHz reopens the Bridge for a new emulation frame rate. The host device
	// is left running
	SetHz(hz int) error

	// Close stops the device and closes the Bridge
	Close() error
}
