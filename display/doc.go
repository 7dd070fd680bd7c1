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

// Package display drives the presentation of emulated video frames. Every
// frame the emulation draws into the Frame owned by the Driver. Calling
// Update() then sends the frame through the filter stack and onto the host
// display Surface.
//
// The Surface is an abstraction of the host display. Implementations are
// found in the sdldisplay, ebitendisplay and headless sub-packages.
//
// Initialisation of the Driver mirrors the way a windowing system sets a
// video mode. If the Surface can not be changed to the requested size the
// Driver remains in its previous state and the error returned by Init() or
// Reinit() will satisfy curated.Is(err, display.PreviousState). If the
// Surface has changed but the Driver can not use it, the error will satisfy
// curated.Is(err, display.Unusable) and the Driver should not be used until a
// successful call to Init().
package display
