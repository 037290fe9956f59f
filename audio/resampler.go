// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/audspat/utils"
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	ratio    float64 // srcRate / dstRate - how many source samples per output sample
	channels int

	// Sliding window of 4 frames for cubic interpolation
	// win[0] = t-1, win[1] = t0, win[2] = t+1, win[3] = t+2
	win  [4][]float32
	have [4]bool

	// Position within the current output stream (in source samples)
	pos float64

	srcBuf []float32
	eof    bool

	// One-pole low-pass state for anti-aliasing (when downsampling)
	filterState []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	// Enable simple low-pass filter when downsampling
	useFilter := ratio > 1.0
	var filterAlpha float32
	if useFilter {
		// Cutoff near the Nyquist frequency of the destination rate.
		// A proper FIR filter would do better; this keeps latency at zero.
		filterAlpha = 0.5
	}

	r := &Resampler{
		src:         src,
		srcRate:     float64(src.SampleRate()),
		dstRate:     float64(dstRate),
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, 4096),
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
		filterState: make([]float32, channels),
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Seek repositions the wrapped source and discards the interpolation window,
// so the next read starts fresh at the new offset. Resampling does not change
// the time axis, so pos needs no translation.
func (r *Resampler) Seek(pos time.Duration) error {
	if err := Seek(r.src, pos); err != nil {
		return err
	}

	r.pos = 0
	r.eof = false
	r.have = [4]bool{}
	for i := range r.filterState {
		r.filterState[i] = 0
	}

	return nil
}

func (r *Resampler) TotalDuration() (time.Duration, bool) {
	return TotalDuration(r.src)
}

// advance reads the next frame from source and shifts the window
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	// Shift window: [0,1,2,3] -> [1,2,3,?]
	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	r.have[0] = r.have[1]
	r.have[1] = r.have[2]
	r.have[2] = r.have[3]

	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	if n > 0 {
		copy(r.win[3], r.srcBuf[:n])
		r.have[3] = true

		if r.useFilter {
			for c := 0; c < r.channels; c++ {
				// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
				r.win[3][c] = r.filterAlpha*r.win[3][c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = r.win[3][c]
			}
		}
	} else {
		r.have[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.have[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// fill loads the initial 4 frames of the window.
func (r *Resampler) fill() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
		if n > 0 {
			copy(r.win[i], r.srcBuf[:n])
			r.have[i] = true

			// Prime the filter with the first frame to avoid warm-up transients
			if i == 0 && r.useFilter {
				copy(r.filterState, r.srcBuf[:n])
			}
		}
		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			// Duplicate last valid frame for remaining slots
			for j := i; j < 4; j++ {
				copy(r.win[j], r.win[i-1])
				r.have[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// ReadSamples produces dst samples at r.dstRate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.have[1] {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		// Keep pos in [0,1) so interpolation runs between win[1] and win[2]
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)

		for c := 0; c < r.channels; c++ {
			var y0, y1, y2, y3 float32

			// Duplicate edge frames when the window is short
			if r.have[0] {
				y0 = r.win[0][c]
			} else {
				y0 = r.win[1][c]
			}

			y1 = r.win[1][c]
			y2 = r.win[2][c]

			if r.have[3] {
				y3 = r.win[3][c]
			} else {
				y3 = r.win[2][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
