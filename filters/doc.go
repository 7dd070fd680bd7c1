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

// Package filters transforms the frame drawn by the emulation into the display
// surface. Transforms are arranged in a Stack and applied in order every frame.
//
// Each stage of the Stack reads from one Descriptor and writes to the next.
// The first Descriptor aliases the visible area of the emulation's frame and
// the last Descriptor aliases the display surface. Stages in between write to
// one of two scratch buffers owned by the Stack. Filters that are "safe" write
// in place and so do not need a scratch buffer of their own.
//
// The Stack is never empty. When there are no filters in the Stack the "off"
// filter is added automatically. The "off" filter copies the input to the
// output, centering or truncating as required. It is also the fallback for the
// other filters when they can not process the input they are given. For
// example, the scale filter falls back to "off" if the output is not large
// enough to scale the input by at least a factor of two on either axis.
//
// Every structural change to the Stack causes a rebuild. A rebuild allocates
// the scratch buffers and reassigns Descriptors. If a scratch buffer can not
// be allocated then the first unsafe filter is removed from the Stack and the
// rebuild is tried again. This continues until the rebuild succeeds, which it
// always does eventually because the "off" filter requires no allocation.
package filters
