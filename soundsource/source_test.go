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

package soundsource_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/soundsource"
	"github.com/jetsetilly/mdoutput/test"
)

func writeWAV(t *testing.T, fn string, channels int, data []int) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 22050, 16, channels, 1)
	test.DemandSuccess(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: 22050},
		Data:           data,
		SourceBitDepth: 16,
	}))
	test.DemandSuccess(t, enc.Close())
}

func TestWAVStereo(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stereo.wav")
	writeWAV(t, fn, 2, []int{100, -100, 200, -200, 300, -300})

	src, err := soundsource.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, src.Rate, 22050)
	test.ExpectEquality(t, src.Frames(), 3)
	test.ExpectEquality(t, src.Data[0], int16(100))
	test.ExpectEquality(t, src.Data[5], int16(-300))
}

func TestWAVMono(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mono.wav")
	writeWAV(t, fn, 1, []int{1, 2, 3})

	// mono data is duplicated into both channels
	src, err := soundsource.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, src.Frames(), 3)
	test.ExpectEquality(t, src.Data[2], int16(2))
	test.ExpectEquality(t, src.Data[3], int16(2))
}

func TestFill(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "loop.wav")
	writeWAV(t, fn, 2, []int{1, 1, 2, 2, 3, 3})

	src, err := soundsource.Load(fn)
	test.DemandSuccess(t, err)

	// filling more than the length of the source loops back to the start
	batch := make([]int16, 8)
	src.Fill(batch)
	test.ExpectEquality(t, batch[0], int16(1))
	test.ExpectEquality(t, batch[4], int16(3))
	test.ExpectEquality(t, batch[6], int16(1))

	// the next fill continues from where the previous fill finished
	src.Fill(batch[:2])
	test.ExpectEquality(t, batch[0], int16(2))

	src.Rewind()
	src.Fill(batch[:2])
	test.ExpectEquality(t, batch[0], int16(1))

	// an empty source fills with silence
	empty := &soundsource.Source{}
	empty.Fill(batch)
	for _, v := range batch {
		test.ExpectEquality(t, v, int16(0))
	}
}

func TestUnsupported(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sound.flac")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0}, 0o600))

	_, err := soundsource.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, soundsource.UnsupportedFile))

	// missing files and bad files are decode errors
	_, err = soundsource.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, soundsource.DecodeError))

	fn = filepath.Join(t.TempDir(), "bad.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a wav file"), 0o600))
	_, err = soundsource.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, soundsource.DecodeError))
}
