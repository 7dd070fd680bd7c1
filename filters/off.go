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

// off copies the input to the output unchanged. the input is centered if it
// is smaller than the output and truncated if it is larger. there is no
// fallback for this filter because it can not fail
func (s *Stack) off(in, out *Descriptor) {
	// nothing to do if the output is the input
	if sameBase(in.Buf, out.Buf) {
		return
	}

	height := min(in.Height, out.Height)

	if !out.updated {
		width := out.Width
		if in.Width <= out.Width {
			width = in.Width
		}
		out.center(width, height, s.format.Bpp)
		out.updated = true
	}

	n := out.Width * s.format.Bpp
	for y := range height {
		o := y * out.Pitch
		copy(out.Buf[o:o+n], in.Buf[y*in.Pitch:])
	}
}
