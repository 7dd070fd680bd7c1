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

// Package digest is used to create mathematical hashes of the presented
// display and of the committed sound. The hashes are chained so that the
// final value represents every frame since the digest was reset.
//
// The Video type wraps a display.Surface and hashes the surface every time it
// is presented. The Audio type is a sound.Tap and hashes every batch of
// samples committed to the sound bridge.
//
// Note that the use of sha1 is fine for this application because this is not
// a cryptographic task.
package digest

// Digest implementations compute a hash of the emulation's output.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Sentinal error patterns for the digest package.
const (
	VideoDigest = "digest: video: %v"
	AudioDigest = "digest: audio: %v"
)
