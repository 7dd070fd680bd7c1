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

// Package framebuffer describes the pixel formats understood by the
// presentation layer and the raw frame region the emulation draws into.
//
// Pixels are stored in little-endian byte order. The supported depths are:
//
//	8	RGB 3:3:2
//	15	RGB 5:5:5 (top bit unused)
//	16	RGB 5:6:5
//	24	RGB 8:8:8 packed in three bytes
//	32	RGB 8:8:8 in four bytes (top byte unused)
//
// The Frame type is the region the emulation draws into. It has a border of
// eight lines above and below the visible area and eight pixels either side.
// The visible area starts Offset bytes into the frame.
package framebuffer
