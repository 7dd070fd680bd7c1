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

package display

import (
	"github.com/jetsetilly/mdoutput/filters"
)

// Surface is the host display.
type Surface interface {
	// the pixel data returned by Region() should only be accessed while
	// the Surface is locked
	filters.Locker

	// Resize the Surface. The depth argument is a request and the Surface may
	// choose a different depth, which will be returned by Depth(). If an error
	// is returned the Surface must be unchanged
	Resize(width, height, depth int) error

	// Region returns the pixel data of the Surface. The Region is valid
	// until the next call to Resize()
	Region() filters.Region

	// Depth returns the bits per pixel of the Surface. A Surface using 15 bit
	// colour may report 16 bits.
	Depth() int

	// Present the contents of the Surface to the user
	Present() error
}

// Overlay is implemented by backends that can draw diagnostic information on
// top of the Surface.
type Overlay interface {
	SetOverlay(show bool)
	Overlay() bool
}
