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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/performance/limiter"
	"github.com/jetsetilly/mdoutput/test"
)

func TestInvalidLimit(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidLimit))

	_, err = limiter.NewFPSLimiter(1001)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(60)
	test.DemandSuccess(t, err)
	defer lim.Close()

	test.ExpectFailure(t, lim.SetLimit(-1))
	test.ExpectEquality(t, lim.Limit(), 60)
	test.ExpectSuccess(t, lim.SetLimit(50))
	test.ExpectEquality(t, lim.Limit(), 50)
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Close()

	// the first tick is immediate. nineteen more ticks at 100fps should take
	// at least 150ms even allowing for the rough nature of the limiter
	start := time.Now()
	for range 20 {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 150*time.Millisecond)
}

func TestInactive(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(1)
	test.DemandSuccess(t, err)
	defer lim.Close()

	lim.SetActive(false)

	start := time.Now()
	for range 10 {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)
}

func TestClose(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(1)
	test.DemandSuccess(t, err)

	lim.Wait()
	lim.Close()

	// waiting on a closed limiter returns immediately
	start := time.Now()
	lim.Wait()
	test.ExpectSuccess(t, time.Since(start) < time.Second)

	// closing twice is safe
	lim.Close()
}
