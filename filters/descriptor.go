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

package filters

import "fmt"

// Source identifies the memory a Descriptor aliases.
type Source int

// List of valid Source values.
const (
	SourceFrame Source = iota
	SourceDisplay
	SourceScratch0
	SourceScratch1
)

func (s Source) String() string {
	switch s {
	case SourceFrame:
		return "frame"
	case SourceDisplay:
		return "display"
	case SourceScratch0:
		return "scratch0"
	case SourceScratch1:
		return "scratch1"
	}
	return "unknown"
}

// Region is an area of pixel data. Buf starts at the first pixel of the area.
type Region struct {
	Buf    []byte
	Width  int
	Height int
	Pitch  int
}

// Descriptor is the input or output of a stage in the Stack.
type Descriptor struct {
	Region
	Source Source

	// the filter has adjusted the descriptor to match its output
	updated bool

	// the filter can not process its input and is using the fallback
	failed bool

	// filter specific data. created when the descriptor is first updated
	data any
}

// Updated returns true if the filter writing to the descriptor has adjusted
// it to match its output.
func (d *Descriptor) Updated() bool {
	return d.updated
}

// Failed returns true if the filter writing to the descriptor is using the
// fallback.
func (d *Descriptor) Failed() bool {
	return d.failed
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s %dx%d (pitch %d)", d.Source, d.Width, d.Height, d.Pitch)
}

// reset clears the filter state of the descriptor
func (d *Descriptor) reset() {
	d.updated = false
	d.failed = false
	d.data = nil
}

// sameBase returns true if both slices start at the same address. Empty
// slices are treated as the same because there is nothing to copy between
// them.
func sameBase(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

// center moves the start of the descriptor so that an area of width by height
// pixels is in the middle of the original area. The descriptor's dimensions
// are changed to match.
func (d *Descriptor) center(width, height, bpp int) {
	x := (d.Width - width) / 2
	y := (d.Height - height) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	d.Buf = d.Buf[x*bpp+y*d.Pitch:]
	d.Width = width
	d.Height = height
}
