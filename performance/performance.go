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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mdoutput/curated"
)

// Sentinal error patterns for the performance package.
const (
	PerformanceError = "performance: %v"
	timedOut         = "performance: timed out"
)

// Emulation is the interface to the loop being measured by Check().
type Emulation interface {
	// Step runs a single frame. Returns false if the loop should end
	Step() (bool, error)

	// the number of frames presented so far
	Frames() int

	// the requested frame rate
	Hz() int
}

// the time allowed for the frame rate to settle before measurement starts
const leadTime = 2 * time.Second

// Check the performance of the emulation loop.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, emulation Emulation, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	var startFrame int
	var endFrame int
	var startTime time.Time
	var elapsed time.Duration

	runner := func() error {
		// the lead time puts false on the timerChan. the conclusion of the
		// measurement period puts true on the timerChan
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		startFrame = emulation.Frames()
		startTime = time.Now()

		for {
			select {
			case v := <-timerChan:
				if v {
					endFrame = emulation.Frames()
					elapsed = time.Since(startTime)
					return curated.Errorf(timedOut)
				}
				startFrame = emulation.Frames()
				startTime = time.Now()
			default:
			}

			running, err := emulation.Step()
			if err != nil {
				return err
			}
			if !running {
				endFrame = emulation.Frames()
				elapsed = time.Since(startTime)
				return nil
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, elapsed.Seconds(), emulation.Hz())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)))

	return nil
}
