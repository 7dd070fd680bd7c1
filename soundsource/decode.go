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

package soundsource

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/jetsetilly/mdoutput/curated"
)

func (src *Source) decodeWAV(f *os.File) error {
	name := filepath.Base(f.Name())

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return curated.Errorf(DecodeError, name, "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return curated.Errorf(DecodeError, name, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return curated.Errorf(DecodeError, name, "no audio channels")
	}

	// scale samples of any bit depth to 16 bits
	shift := int(dec.BitDepth) - 16

	src.Rate = buf.Format.SampleRate
	src.Data = make([]int16, 0, len(buf.Data)/channels*2)

	frame := make([]int16, channels)
	for i := 0; i+channels <= len(buf.Data); i += channels {
		for c := range channels {
			v := buf.Data[i+c]
			switch {
			case dec.BitDepth == 8:
				// 8 bit wav data is unsigned
				v = (v - 128) << 8
			case shift > 0:
				v >>= shift
			case shift < 0:
				v <<= -shift
			}
			frame[c] = int16(v)
		}
		l, r := stereo(frame, channels)
		src.Data = append(src.Data, l, r)
	}

	return nil
}

func (src *Source) decodeMP3(f *os.File) error {
	name := filepath.Base(f.Name())

	dec, err := mp3.NewDecoder(bufio.NewReader(f))
	if err != nil {
		return curated.Errorf(DecodeError, name, err)
	}

	// the decoded stream is always 16 bit little-endian stereo, even if the
	// source is mono
	src.Rate = dec.SampleRate()

	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 2 {
			src.Data = append(src.Data, int16(binary.LittleEndian.Uint16(chunk[i:])))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return curated.Errorf(DecodeError, name, err)
		}
	}

	// a short read might leave a half frame at the end of the data
	src.Data = src.Data[:len(src.Data)&^1]

	return nil
}

func (src *Source) decodeOgg(f *os.File) error {
	name := filepath.Base(f.Name())

	dec, err := oggvorbis.NewReader(bufio.NewReader(f))
	if err != nil {
		return curated.Errorf(DecodeError, name, err)
	}

	channels := dec.Channels()
	if channels < 1 {
		return curated.Errorf(DecodeError, name, "no audio channels")
	}
	src.Rate = dec.SampleRate()

	// the number of values returned by Read() is always a multiple of the
	// number of channels
	buf := make([]float32, 1024*channels)
	frame := make([]int16, channels)

	for {
		n, err := dec.Read(buf)

		for i := 0; i+channels <= n; i += channels {
			for c := range channels {
				frame[c] = floatToInt16(buf[i+c])
			}
			l, r := stereo(frame, channels)
			src.Data = append(src.Data, l, r)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return curated.Errorf(DecodeError, name, err)
		}
	}

	return nil
}

func floatToInt16(v float32) int16 {
	v = float32(math.Max(-1, math.Min(1, float64(v))))
	return int16(v * math.MaxInt16)
}
