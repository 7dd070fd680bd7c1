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

package sound

import (
	"encoding/binary"
	"sync"

	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/ringbuffer"
)

// Tap receives a copy of every batch of samples committed to the Bridge. The
// samples slice must not be retained after the function returns.
type Tap interface {
	Samples(rate int, samples []int16) error
}

// Bridge owns the ring buffer shared between the emulation and the audio
// device. All access to the ring goes through the Bridge's critical section.
type Bridge struct {
	crit sync.Mutex

	spec Spec
	ring *ringbuffer.Ring

	// the batch of interleaved samples filled by the emulation every frame
	batch []int16

	// conversion buffer for writing samples to the ring
	raw []byte

	// number of reads that could not be satisfied completely
	underruns int

	taps []Tap
}

// NewBridge is the preferred method of initialisation for the Bridge type.
// The Bridge is closed until Open() is called.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Open sizes the ring buffer according to the Spec. Any data from a previous
// Open() is discarded.
func (b *Bridge) Open(spec Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	b.crit.Lock()
	defer b.crit.Unlock()

	b.spec = spec
	b.ring = ringbuffer.NewRing(spec.Capacity())
	b.batch = make([]int16, spec.SamplesPerFrame()*Channels)
	b.raw = make([]byte, len(b.batch)*BytesPerSample)
	b.underruns = 0

	logger.Logf(logger.Allow, "sound", "bridge open: %dHz, %d samples per frame, %d bytes", spec.Rate, spec.SamplesPerFrame(), b.ring.Cap())

	return nil
}

// Close releases the ring buffer. Writes to a closed Bridge are ignored and
// reads return silence.
func (b *Bridge) Close() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.ring = nil
	b.batch = nil
	b.raw = nil
}

// IsOpen returns true if the Bridge has been opened and not closed.
func (b *Bridge) IsOpen() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.ring != nil
}

// Spec returns the Spec used to open the Bridge.
func (b *Bridge) Spec() Spec {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.spec
}

// Batch returns the slice to be filled by the emulation with one frame of
// interleaved stereo samples. The slice is owned by the Bridge and is only
// valid until the next call to Open(). Returns nil if the Bridge is closed.
func (b *Bridge) Batch() []int16 {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.batch
}

// Commit writes the current batch to the ring buffer and forwards it to any
// taps. Returns the number of bytes written.
func (b *Bridge) Commit() int {
	b.crit.Lock()
	batch := b.batch
	b.crit.Unlock()

	if batch == nil {
		return 0
	}

	return b.Write(batch)
}

// Write converts the interleaved samples to little-endian bytes and writes
// them to the ring buffer, overwriting the oldest data if necessary. The
// samples are also forwarded to any taps. Returns the number of bytes written.
func (b *Bridge) Write(samples []int16) int {
	b.crit.Lock()

	if b.ring == nil {
		b.crit.Unlock()
		return 0
	}

	sz := len(samples) * BytesPerSample
	if cap(b.raw) < sz {
		b.raw = make([]byte, sz)
	}
	raw := b.raw[:sz]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(raw[i*BytesPerSample:], uint16(s))
	}

	n := b.ring.Write(raw)
	rate := b.spec.Rate
	taps := b.taps

	b.crit.Unlock()

	for i := len(taps) - 1; i >= 0; i-- {
		if err := taps[i].Samples(rate, samples); err != nil {
			logger.Logf(logger.Allow, "sound", "removing tap: %v", err)
			b.RemoveTap(taps[i])
		}
	}

	return n
}

// Read implements the io.Reader interface. It is intended to be called by the
// audio device. The whole of p is always filled, with silence used to make up
// for any shortfall in the ring buffer. As such, the error is always nil.
func (b *Bridge) Read(p []byte) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := 0
	if b.ring != nil {
		n = b.ring.Read(p)
		if n < len(p) {
			b.underruns++
		}
	}

	clear(p[n:])

	return len(p), nil
}

// Buffered returns the number of unread bytes in the ring buffer.
func (b *Bridge) Buffered() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.ring == nil {
		return 0
	}
	return b.ring.Len()
}

// ReadCursor returns the position of the read cursor in stereo frames. Returns
// zero if the Bridge is closed.
func (b *Bridge) ReadCursor() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.ring == nil {
		return 0
	}
	return b.ring.ReadCursor() / FrameSize
}

// WriteCursor returns the position of the write cursor in stereo frames.
// Returns zero if the Bridge is closed.
func (b *Bridge) WriteCursor() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.ring == nil {
		return 0
	}
	return b.ring.WriteCursor() / FrameSize
}

// Underruns returns the number of reads that had to be padded with silence
// since the Bridge was opened.
func (b *Bridge) Underruns() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.underruns
}

// AddTap adds a Tap to the Bridge. The same Tap can not be added twice.
func (b *Bridge) AddTap(t Tap) {
	b.crit.Lock()
	defer b.crit.Unlock()
	for _, u := range b.taps {
		if u == t {
			return
		}
	}

	// taps is replaced rather than appended to in place so that Write() can
	// range over its copy outside of the critical section
	taps := make([]Tap, len(b.taps), len(b.taps)+1)
	copy(taps, b.taps)
	b.taps = append(taps, t)
}

// RemoveTap removes a Tap from the Bridge.
func (b *Bridge) RemoveTap(t Tap) {
	b.crit.Lock()
	defer b.crit.Unlock()
	taps := make([]Tap, 0, len(b.taps))
	for _, u := range b.taps {
		if u != t {
			taps = append(taps, u)
		}
	}
	b.taps = taps
}
