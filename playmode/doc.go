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

// Package playmode runs the presentation loop. Every call to Step() asks the
// emulation engine to draw one frame into the display driver's framebuffer and
// to fill the sound bridge's batch. The frame is then sent through the filter
// stack and presented, the batch is committed to the ring buffer and the loop
// waits for the next frame at the video mode's frame rate.
//
// User input from the display backends is serviced at the start of each
// Step(). The hotkeys are described by the userinput package.
//
// Changes to the video mode, whether requested with SetFeature() or by the
// region hotkey, are applied between frames. A mode that the display can not
// accommodate leaves the previous mode in place.
package playmode
