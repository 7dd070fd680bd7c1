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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when the WavWriter is closed. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/logger"
	"github.com/jetsetilly/mdoutput/sound"
)

// Sentinal error patterns
const (
	WavWriterError = "wavwriter: %v"
)

// WavWriter implements the sound.Tap interface.
type WavWriter struct {
	crit sync.Mutex

	filename string
	rate     int
	buffer   []int
	closed   bool
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// Samples implements the sound.Tap interface.
func (aw *WavWriter) Samples(rate int, samples []int16) error {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	if aw.closed {
		return curated.Errorf(WavWriterError, "writer has been closed")
	}

	// a change of rate part way through a recording can't be represented in
	// a single wav file. the new samples are still recorded but will play at
	// the wrong speed
	if aw.rate == 0 {
		aw.rate = rate
	} else if aw.rate != rate {
		logger.Logf(logger.Allow, "wavwriter", "sample rate changed from %dHz to %dHz", aw.rate, rate)
		aw.rate = rate
	}

	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}

	return nil
}

// Close writes the buffered audio to disk. The WavWriter should not be used
// after Close() has been called.
func (aw *WavWriter) Close() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	if aw.closed {
		return nil
	}
	aw.closed = true

	if aw.rate == 0 {
		logger.Logf(logger.Allow, "wavwriter", "no audio recorded. not writing %s", aw.filename)
		return nil
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewEncoder(f, aw.rate, sound.BytesPerSample*8, sound.Channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: sound.Channels,
			SampleRate:  aw.rate,
		},
		Data:           aw.buffer,
		SourceBitDepth: sound.BytesPerSample * 8,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	// closing the encoder finalises the wav header
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}
