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

package nullaudio_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/mdoutput/sound"
	"github.com/jetsetilly/mdoutput/sound/nullaudio"
	"github.com/jetsetilly/mdoutput/test"
)

var _ sound.Device = (*nullaudio.Audio)(nil)

func TestDrain(t *testing.T) {
	bridge := sound.NewBridge()

	spec := sound.Spec{
		Rate:          48000,
		DeviceSamples: 480,
		Segments:      4,
		Hz:            60,
	}

	aud, err := nullaudio.NewAudio(bridge, spec)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bridge.IsOpen())

	n := bridge.Commit()
	test.ExpectEquality(t, n, 800*sound.FrameSize)

	// the device period is 10ms. the single committed batch is 800 samples
	// so it will take two periods to drain
	deadline := time.Now().Add(time.Second)
	for bridge.Buffered() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	test.ExpectEquality(t, bridge.Buffered(), 0)

	// changing the frame rate reopens the bridge
	test.ExpectSuccess(t, aud.SetHz(50))
	test.ExpectEquality(t, aud.Spec().Hz, 50)
	test.ExpectEquality(t, len(bridge.Batch()), 960*sound.Channels)

	test.ExpectSuccess(t, aud.Close())
	test.ExpectFailure(t, bridge.IsOpen())
}
