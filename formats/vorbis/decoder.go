package vorbis

import (
	"fmt"
	"io"
	"time"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audspat/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
	Length() int64
	SetPosition(pos int64) error
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	bufSize    int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

// TotalDuration is known when the underlying reader is seekable.
func (s *source) TotalDuration() (time.Duration, bool) {
	length := s.dec.Length()
	if length <= 0 {
		return 0, false
	}

	return time.Duration(length) * time.Second / time.Duration(s.sampleRate), true
}

// Seek repositions the decoder to the frame at pos.
func (s *source) Seek(pos time.Duration) error {
	if pos < 0 {
		return audio.ErrSeekOutOfRange
	}

	frame := int64(pos.Seconds() * float64(s.sampleRate))
	if length := s.dec.Length(); length > 0 && frame > length {
		return audio.ErrSeekOutOfRange
	}

	if err := s.dec.SetPosition(frame); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis.Reader.Read fills dst with interleaved float32 values and
	// returns the number of values written, always a whole number of frames.
	return s.dec.Read(dst)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		bufSize:    4096,
	}, nil
}
