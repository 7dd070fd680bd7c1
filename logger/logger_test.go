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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/test"
)

// repeated entries are collapsed into a single entry
func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "sound", "underrun")
	log.Log(logger.Allow, "sound", "underrun")
	log.Log(logger.Allow, "sound", "underrun")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "sound: underrun (repeat x3)\n")

	// a different tag is a different entry
	w.Reset()
	log.Log(logger.Allow, "filters", "underrun")
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "filters: underrun\n")
}

// the logger never holds more than the maximum number of entries
func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	for _, d := range []string{"a", "b", "c", "d", "e"} {
		log.Log(logger.Allow, "tag", d)
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: c\ntag: d\ntag: e\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "a")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: a\n")

	w.Reset()
	log.Log(logger.Allow, "tag", "b")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: b\n")

	// nothing new since last call
	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "before echo")
	log.SetEcho(w, true)
	log.Log(logger.Allow, "tag", "after echo")
	test.ExpectEquality(t, w.String(), "tag: before echo\ntag: after echo\n")

	// echo turned off
	log.SetEcho(nil, false)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, w.String(), "tag: before echo\ntag: after echo\n")
}

// echoing into a bounded writer keeps only the most recent entries
func TestEchoTail(t *testing.T) {
	log := logger.NewLogger(100)
	w, err := test.NewRingWriter(len("tag: 10\ntag: 11\n"))
	test.DemandSuccess(t, err)

	log.SetEcho(w, false)
	for i := range 12 {
		log.Logf(logger.Allow, "tag", "%d", i)
	}
	test.ExpectEquality(t, w.String(), "tag: 10\ntag: 11\n")

	// the first entries echoed are kept by a capped writer
	c, err := test.NewCappedWriter(len("tag: a\n"))
	test.DemandSuccess(t, err)
	log.SetEcho(c, false)
	log.Log(logger.Allow, "tag", "a")
	log.Log(logger.Allow, "tag", "b")
	test.ExpectEquality(t, c.String(), "tag: a\n")
	test.ExpectSuccess(t, c.Full())
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	c.Write([]byte("single line"))
	test.ExpectEquality(t, w.String(), "single line\n")

	w.Reset()
	c.Write([]byte("first\nsecond"))
	test.ExpectEquality(t, w.String(), "first\n\033[2;31msecond\n\033[0m")
}
