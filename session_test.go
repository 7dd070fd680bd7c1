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

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/mdoutput/emulation"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/prefs"
	"github.com/jetsetilly/mdoutput/test"
)

func TestOptionsVideo(t *testing.T) {
	v, err := options{}.video()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, emulation.NTSC)

	v, err = options{pal: true, hz: 60}.video()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Height, 240)
	test.ExpectEquality(t, v.Hz, 60)

	_, err = options{hz: 1001}.video()
	test.ExpectFailure(t, err)
}

func TestHeadlessSession(t *testing.T) {
	t.Chdir(t.TempDir())

	prefs.PushCommandLineStack("sound.backend::null; display.filters::scale")

	ses, err := newSession(options{
		display: displayHeadless,
		pal:     true,
		wav:     "out.wav",
		digest:  true,
	})
	test.DemandSuccess(t, err)
	ses.pm.SetUncapped(true)

	// the command line preferences have been consumed
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, ses.dprefs.Filters.String(), "scale")
	test.ExpectEquality(t, ses.sprefs.Backend.String(), "null")

	test.ExpectSuccess(t, ses.run(5))
	test.ExpectEquality(t, ses.engine.FrameNum(), 5)
	test.ExpectEquality(t, ses.drv.Video(), emulation.PAL)

	// the presentation during initialisation is included in the digest
	test.ExpectEquality(t, ses.videoDigest.Frames(), 6)

	ses.destroy()

	// the recording is written when the session is destroyed
	_, err = os.Stat("out.wav")
	test.ExpectSuccess(t, err)
}

// preferences on the command line that no preference group recognises are
// reported through the log
func TestUnusedPreferences(t *testing.T) {
	t.Chdir(t.TempDir())

	echo, err := test.NewCappedWriter(4096)
	test.DemandSuccess(t, err)
	logger.SetEcho(echo, false)
	t.Cleanup(func() {
		logger.SetEcho(nil, false)
	})

	prefs.PushCommandLineStack("sound.backend::null; display.bogus::1")

	ses, err := newSession(options{
		display: displayHeadless,
	})
	test.DemandSuccess(t, err)
	defer ses.destroy()

	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectSuccess(t, strings.Contains(echo.String(), "prefs: unused command line preferences: display.bogus::1"))
}

func TestBadFilters(t *testing.T) {
	t.Chdir(t.TempDir())

	prefs.PushCommandLineStack("sound.backend::null")

	_, err := newSession(options{
		display: displayHeadless,
		filters: "scale,blur",
	})
	test.ExpectFailure(t, err)
}
