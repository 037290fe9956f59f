package audio

import (
	"fmt"
	"time"
)

// MonoMixer folds a multi-channel source down to mono by averaging the
// channels of every frame. Mono input passes through untouched.
type MonoMixer struct {
	src Source
	buf []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		buf: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Seek repositions the wrapped source. Folding is stateless, so there is
// nothing to reset here.
func (m *MonoMixer) Seek(pos time.Duration) error {
	return Seek(m.src, pos)
}

func (m *MonoMixer) TotalDuration() (time.Duration, bool) {
	return TotalDuration(m.src)
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.src.Channels() == 1 {
		// Pass-through: read mono directly
		return m.src.ReadSamples(dst)
	}

	channels := m.src.Channels()
	samplesNeeded := len(dst) * channels

	// Grow the scratch buffer if needed (never shrink, to avoid thrashing)
	if cap(m.buf) < samplesNeeded {
		m.buf = make([]float32, max(samplesNeeded, 8192))
	}
	m.buf = m.buf[:samplesNeeded]

	n, err := m.src.ReadSamples(m.buf)
	if n == 0 {
		return 0, err
	}
	// Sources deliver whole frames, so n divides evenly
	frames := n / channels

	invChannels := float32(1.0) / float32(channels)

	switch channels {
	case 2: // Stereo (most common)
		for f := 0; f < frames; f++ {
			idx := f << 1
			dst[f] = (m.buf[idx] + m.buf[idx+1]) * 0.5
		}
	default:
		for f := 0; f < frames; f++ {
			sum := float32(0)
			base := f * channels
			for c := 0; c < channels; c++ {
				sum += m.buf[base+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return frames, err
}
