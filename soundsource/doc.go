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

// Package soundsource loads audio files into memory as interleaved stereo
// 16 bit samples, suitable for feeding to a sound.Bridge.
//
// WAV, MP3 and Ogg Vorbis files are supported. The file type is decided by the
// file extension.
//
// No resampling is performed. If the rate of the Source differs from the rate
// of the audio device the sound will play at the wrong speed. Callers should
// check Source.Rate and decide what to do.
package soundsource
