package wav

import (
	"bytes"
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audspat/audio"
)

// wavReader is an interface for gowav.Decoder to allow testing
type wavReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
	Duration() (time.Duration, error)
}

type wavSource struct {
	dec        wavReader
	rs         io.ReadSeeker // underlying data, kept for rewinds
	sampleRate int
	channels   int
	bitDepth   int
	pos        int64 // frames handed out so far
	intBuf     *goaudio.IntBuffer
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *wavSource) TotalDuration() (time.Duration, bool) {
	d, err := s.dec.Duration()
	if err != nil {
		return 0, false
	}

	return d, true
}

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	scale := 1.0 / pcmMaxValue(s.bitDepth)
	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) * scale
	}

	s.pos += int64(n / s.channels)

	// A short read with no error means the data chunk is exhausted
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// Seek repositions to pos. The decoder only reads forward, so seeking
// backwards rewinds the underlying reader and re-decodes from the start
// before skipping ahead.
func (s *wavSource) Seek(pos time.Duration) error {
	if pos < 0 {
		return audio.ErrSeekOutOfRange
	}
	if total, ok := s.TotalDuration(); ok && pos > total {
		return audio.ErrSeekOutOfRange
	}
	if s.rs == nil {
		return audio.ErrSeekNotSupported
	}

	frame := int64(pos.Seconds() * float64(s.sampleRate))

	if frame < s.pos {
		if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("%w", err)
		}

		dec := gowav.NewDecoder(s.rs)
		if !dec.IsValidFile() {
			return ErrNotWavFile
		}
		dec.ReadInfo()
		s.dec = dec
		s.pos = 0
	}

	return s.skipFrames(frame - s.pos)
}

func (s *wavSource) skipFrames(frames int64) error {
	scratch := make([]float32, 4096-4096%s.channels)

	for frames > 0 {
		want := int64(len(scratch)) / int64(s.channels)
		if want > frames {
			want = frames
		}

		n, err := s.ReadSamples(scratch[:want*int64(s.channels)])
		if n == 0 {
			if err == io.EOF || err == nil {
				return audio.ErrSeekOutOfRange
			}
			return err
		}
		frames -= int64(n / s.channels)

		if err != nil && err != io.EOF {
			return err
		}
	}

	return nil
}

func pcmMaxValue(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker; buffer non-seekable input
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	return &wavSource{
		dec:        dec,
		rs:         rs,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
	}, nil
}
