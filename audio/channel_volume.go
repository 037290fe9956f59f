// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// ChannelVolume fans a mono source out to a fixed number of output channels,
// scaling each channel by its own volume. Multi-channel input is folded to
// mono first via MonoMixer, so every output frame carries the same signal at
// per-channel loudness.
//
// Volumes are plain multipliers and are not clamped here; producers of the
// values (such as Spatial) are responsible for keeping them in [0,1].
type ChannelVolume struct {
	src     Source // always mono
	volumes []float32
	buf     []float32
}

// NewChannelVolume wraps src with the given per-channel volumes. The output
// channel count equals len(volumes), which must be at least 1.
func NewChannelVolume(src Source, volumes []float32) *ChannelVolume {
	if len(volumes) == 0 {
		panic("audio: ChannelVolume needs at least one channel")
	}
	if src.Channels() != 1 {
		src = NewMonoMixer(src)
	}

	vols := make([]float32, len(volumes))
	copy(vols, volumes)

	return &ChannelVolume{
		src:     src,
		volumes: vols,
		buf:     make([]float32, 4096),
	}
}

// Volume returns the current multiplier for channel ch.
func (cv *ChannelVolume) Volume(ch int) float32 {
	return cv.volumes[ch]
}

// SetVolume sets the multiplier for channel ch, taking effect on the next
// ReadSamples call.
func (cv *ChannelVolume) SetVolume(ch int, v float32) {
	cv.volumes[ch] = v
}

func (cv *ChannelVolume) SampleRate() int { return cv.src.SampleRate() }
func (cv *ChannelVolume) Channels() int   { return len(cv.volumes) }
func (cv *ChannelVolume) BufSize() int    { return cv.src.BufSize() }

func (cv *ChannelVolume) Close() error {
	err := cv.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (cv *ChannelVolume) Seek(pos time.Duration) error {
	return Seek(cv.src, pos)
}

func (cv *ChannelVolume) TotalDuration() (time.Duration, bool) {
	return TotalDuration(cv.src)
}

// ReadSamples fills dst with interleaved frames; each mono input sample
// becomes Channels() output samples scaled by the per-channel volumes.
// len(dst) must be a multiple of Channels().
func (cv *ChannelVolume) ReadSamples(dst []float32) (int, error) {
	channels := len(cv.volumes)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	frames := len(dst) / channels
	if cap(cv.buf) < frames {
		cv.buf = make([]float32, max(frames, 4096))
	}
	cv.buf = cv.buf[:frames]

	n, err := cv.src.ReadSamples(cv.buf)
	if n == 0 {
		return 0, err
	}

	for f := 0; f < n; f++ {
		s := cv.buf[f]
		base := f * channels
		for c, vol := range cv.volumes {
			dst[base+c] = s * vol
		}
	}

	return n * channels, err
}
