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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/mdoutput/sound"
	"github.com/jetsetilly/mdoutput/test"
	"github.com/jetsetilly/mdoutput/wavwriter"
)

var _ sound.Tap = (*wavwriter.WavWriter)(nil)

func TestRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "recording.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	// the wav writer is used as a tap on a sound bridge
	b := sound.NewBridge()
	test.DemandSuccess(t, b.Open(sound.Spec{Rate: 240, DeviceSamples: 2, Segments: 2, Hz: 60}))
	b.AddTap(aw)

	batch := b.Batch()
	for i := range batch {
		batch[i] = int16(i * 100)
	}
	b.Commit()
	b.Commit()

	test.DemandSuccess(t, aw.Close())

	// writing after the writer has closed fails and so the bridge will remove
	// the tap
	test.ExpectFailure(t, aw.Samples(240, batch))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, buf.Format.SampleRate, 240)
	test.ExpectEquality(t, buf.Format.NumChannels, 2)
	test.ExpectEquality(t, len(buf.Data), len(batch)*2)
	test.ExpectEquality(t, buf.Data[3], 300)
	test.ExpectEquality(t, buf.Data[len(batch)+1], 100)
}

func TestEmptyRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, aw.Close())

	// nothing is written if nothing was recorded
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)
}
