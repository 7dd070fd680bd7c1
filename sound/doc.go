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

// Package sound bridges the fixed rate at which the emulation produces audio
// samples and the independent rate at which the audio device consumes them.
//
// The emulation fills a batch of interleaved stereo samples once per frame
// and commits it to the Bridge. The audio device, from its own goroutine,
// reads from the Bridge whenever it needs more data. The Bridge never blocks
// the emulation: if the device falls behind then the oldest samples are
// overwritten and if the emulation falls behind then the device receives
// silence.
//
// Samples are signed 16 bit little-endian. Cursor positions reported by the
// Bridge are measured in stereo frames, a stereo frame being four bytes.
//
// Audio backends that drive a device from a Bridge can be found in the
// sdlaudio, otoaudio and nullaudio sub-packages.
package sound
