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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
//
// The limit can be changed at any time with SetLimit(). The FpsLimiter should
// be stopped with Close() when it is no longer required.
package limiter

import (
	"sync"
	"time"

	"github.com/jetsetilly/mdoutput/curated"
)

// Sentinal error patterns for the limiter package.
const (
	InvalidLimit = "limiter: invalid limit: %v"
)

// the range of acceptable values for the limit. the same range as for the
// emulation frame rate
const (
	minLimit = 1
	maxLimit = 1000
)

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	crit            sync.Mutex
	framesPerSecond int
	secondsPerFrame time.Duration
	active          bool

	tick chan bool
	quit chan bool
	done chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		active: true,
		tick:   make(chan bool),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	go lim.run()

	return lim, nil
}

// this is a really rough attempt at frame rate limiting. probably only any
// good if base performance of the machine is well above the required rate
func (lim *FpsLimiter) run() {
	defer close(lim.done)

	period := lim.period()
	adjusted := period
	t := time.Now()

	for {
		select {
		case lim.tick <- true:
		case <-lim.quit:
			return
		}

		// start again if the limit has changed since the last tick
		if p := lim.period(); p != period {
			period = p
			adjusted = p
			t = time.Now()
		}

		time.Sleep(adjusted)
		nt := time.Now()
		adjusted -= nt.Sub(t) - period
		t = nt

		// the adjustment is clamped so that a long stall in the consumer
		// doesn't produce a burst of ticks or a long sleep
		if adjusted < 0 {
			adjusted = 0
		} else if adjusted > period*2 {
			adjusted = period * 2
		}
	}
}

func (lim *FpsLimiter) period() time.Duration {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.secondsPerFrame
}

// SetLimit changes the limit at which the FpsLimiter waits
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond < minLimit || framesPerSecond > maxLimit {
		return curated.Errorf(InvalidLimit, framesPerSecond)
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)

	return nil
}

// Limit returns the current limit in frames per second
func (lim *FpsLimiter) Limit() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.framesPerSecond
}

// SetActive turns limiting on or off. When inactive Wait() returns
// immediately
func (lim *FpsLimiter) SetActive(active bool) {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.active = active
}

// Wait will block until trigger
func (lim *FpsLimiter) Wait() {
	lim.crit.Lock()
	active := lim.active
	lim.crit.Unlock()

	if !active {
		return
	}

	select {
	case <-lim.tick:
	case <-lim.done:
	}
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Close stops the limiter. Calls to Wait() will no longer block
func (lim *FpsLimiter) Close() {
	select {
	case <-lim.done:
		return
	default:
	}
	close(lim.quit)
	<-lim.done
}
