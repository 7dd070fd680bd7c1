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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"sync"
)

// length of the buffer used to calculate the digest. the digest is updated
// every time the buffer is full.
const audioBufferLength = 1024 * 1024

// the number of bytes at the start of the buffer reserved for the previous
// digest
const audioBufferStart = sha1.Size

// Audio is an implementation of the sound.Tap interface.
type Audio struct {
	crit     sync.Mutex
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements digest.Digest interface. Any samples still in the buffer
// are included in the hash.
func (dig *Audio) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Audio) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// Samples implements the sound.Tap interface
func (dig *Audio) Samples(_ int, samples []int16) error {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	for _, s := range samples {
		binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], uint16(s))
		dig.bufferCt += 2
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}

	return nil
}

// hash the buffer and chain the new digest to the start of the buffer
func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
