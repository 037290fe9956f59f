// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"time"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). Sources must
	// write whole frames, so n is always a multiple of Channels(); consumers
	// such as MonoMixer rely on this. When n == 0 with err == io.EOF, the
	// stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the preferred read size in samples.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Seeker is implemented by sources that can reposition to a time offset.
type Seeker interface {
	Seek(pos time.Duration) error
}

// Durationer is implemented by sources that know their total length.
type Durationer interface {
	TotalDuration() (time.Duration, bool)
}

// Seek repositions src to pos when it supports seeking.
// It returns ErrSeekNotSupported when src does not implement Seeker;
// any other error comes from the source itself, unwrapped.
func Seek(src Source, pos time.Duration) error {
	s, ok := src.(Seeker)
	if !ok {
		return ErrSeekNotSupported
	}

	return s.Seek(pos)
}

// TotalDuration reports the total length of src when it is known.
func TotalDuration(src Source) (time.Duration, bool) {
	d, ok := src.(Durationer)
	if !ok {
		return 0, false
	}

	return d.TotalDuration()
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
