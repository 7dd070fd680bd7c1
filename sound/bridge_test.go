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

package sound_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/sound"
	"github.com/jetsetilly/mdoutput/test"
)

// a small spec that makes the ring capacity easy to reason about. 4 samples per
// frame, 2 segments and a device buffer of 2 samples gives a capacity of
// (2*4+2)*4 = 40 bytes
var smallSpec = sound.Spec{
	Rate:          240,
	DeviceSamples: 2,
	Segments:      2,
	Hz:            60,
}

func TestSpec(t *testing.T) {
	test.ExpectEquality(t, smallSpec.SamplesPerFrame(), 4)
	test.ExpectEquality(t, smallSpec.Capacity(), 40)
	test.ExpectSuccess(t, smallSpec.Validate())

	spec := smallSpec
	spec.Hz = 0
	test.ExpectSuccess(t, curated.Is(spec.Validate(), sound.InvalidSpec))
	spec.Hz = 1001
	test.ExpectFailure(t, spec.Validate())

	spec = smallSpec
	spec.Rate = 30
	test.ExpectFailure(t, spec.Validate())

	spec = smallSpec
	spec.DeviceSamples = sound.MaxDeviceSamples + 1
	test.ExpectSuccess(t, curated.Is(spec.Validate(), sound.InvalidSpec))
}

func TestClosedBridge(t *testing.T) {
	b := sound.NewBridge()
	test.ExpectFailure(t, b.IsOpen())
	test.ExpectEquality(t, b.Write([]int16{1, 2}), 0)
	test.ExpectEquality(t, b.Commit(), 0)
	test.ExpectEquality(t, b.ReadCursor(), 0)
	test.ExpectEquality(t, b.WriteCursor(), 0)

	// reading from a closed bridge is silence
	p := []byte{1, 2, 3, 4}
	n, err := b.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, string(p), string([]byte{0, 0, 0, 0}))
}

func TestCommit(t *testing.T) {
	b := sound.NewBridge()
	test.DemandSuccess(t, b.Open(smallSpec))
	test.ExpectSuccess(t, b.IsOpen())

	batch := b.Batch()
	test.DemandEquality(t, len(batch), 8)
	for i := range batch {
		batch[i] = int16(i - 4)
	}

	n := b.Commit()
	test.ExpectEquality(t, n, 16)
	test.ExpectEquality(t, b.Buffered(), 16)
	test.ExpectEquality(t, b.ReadCursor(), 0)
	test.ExpectEquality(t, b.WriteCursor(), 4)

	// samples are stored as little-endian
	p := make([]byte, 4)
	b.Read(p)
	test.ExpectEquality(t, string(p), string([]byte{0xfc, 0xff, 0xfd, 0xff}))
	test.ExpectEquality(t, b.ReadCursor(), 1)
	test.ExpectEquality(t, b.Underruns(), 0)
}

// an underrun pads the remainder of the destination with silence
func TestUnderrun(t *testing.T) {
	b := sound.NewBridge()
	test.DemandSuccess(t, b.Open(smallSpec))

	b.Write([]int16{0x0102, 0x0304})

	p := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	n, err := b.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 8)
	test.ExpectEquality(t, string(p), string([]byte{0x02, 0x01, 0x04, 0x03, 0, 0, 0, 0}))
	test.ExpectEquality(t, b.Underruns(), 1)
}

// writing more than the capacity of the bridge overwrites the oldest data
func TestOverrun(t *testing.T) {
	b := sound.NewBridge()
	test.DemandSuccess(t, b.Open(smallSpec))

	// capacity is 40 bytes, which is 20 samples
	s := make([]int16, 24)
	for i := range s {
		s[i] = int16(i)
	}
	n := b.Write(s)
	test.ExpectEquality(t, n, 40)
	test.ExpectEquality(t, b.Buffered(), 40)

	p := make([]byte, 2)
	b.Read(p)
	test.ExpectEquality(t, string(p), string([]byte{4, 0}))
}

// reopening the bridge discards old data
func TestReopen(t *testing.T) {
	b := sound.NewBridge()
	test.DemandSuccess(t, b.Open(smallSpec))
	b.Write([]int16{1, 2, 3, 4})

	spec := smallSpec
	spec.Segments = 4
	test.DemandSuccess(t, b.Open(spec))
	test.ExpectEquality(t, b.Buffered(), 0)
	test.ExpectEquality(t, b.Spec().Capacity(), 72)

	b.Close()
	test.ExpectFailure(t, b.IsOpen())
	test.ExpectEquality(t, len(b.Batch()), 0)
}

type countingTap struct {
	samples int
	fail    bool
}

func (c *countingTap) Samples(rate int, samples []int16) error {
	if c.fail {
		return errors.New("tap failure")
	}
	c.samples += len(samples)
	return nil
}

func TestTaps(t *testing.T) {
	b := sound.NewBridge()
	test.DemandSuccess(t, b.Open(smallSpec))

	good := &countingTap{}
	bad := &countingTap{fail: true}
	b.AddTap(good)
	b.AddTap(good)
	b.AddTap(bad)

	b.Commit()
	test.ExpectEquality(t, good.samples, 8)

	// the failed tap has been removed so making it succeed now will have no
	// effect
	bad.fail = false
	b.Commit()
	test.ExpectEquality(t, good.samples, 16)
	test.ExpectEquality(t, bad.samples, 0)

	b.RemoveTap(good)
	b.Commit()
	test.ExpectEquality(t, good.samples, 16)
}

// the producer and consumer run in different goroutines. run with the race
// detector to be useful
func TestConcurrentAccess(t *testing.T) {
	b := sound.NewBridge()
	test.DemandSuccess(t, b.Open(smallSpec))

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for range 1000 {
			b.Commit()
		}
	}()

	go func() {
		defer wg.Done()
		p := make([]byte, 16)
		for range 1000 {
			n, _ := b.Read(p)
			if n != len(p) {
				t.Errorf("short read: %d", n)
			}
		}
	}()

	wg.Wait()
	test.ExpectSuccess(t, b.Buffered() <= smallSpec.Capacity())
}
