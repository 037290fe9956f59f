// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"
)

func TestChannelVolume_VolumeAccessors(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	cv := NewChannelVolume(src, []float32{0.25, 0.75})

	if cv.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", cv.Channels())
	}
	if cv.Volume(0) != 0.25 || cv.Volume(1) != 0.75 {
		t.Errorf("volumes = (%v, %v), want (0.25, 0.75)", cv.Volume(0), cv.Volume(1))
	}

	cv.SetVolume(0, 1.0)
	if cv.Volume(0) != 1.0 {
		t.Errorf("Volume(0) after set = %v, want 1.0", cv.Volume(0))
	}
}

func TestChannelVolume_InitialVolumesCopied(t *testing.T) {
	t.Parallel()

	vols := []float32{0.5, 0.5}
	src := newConstantSource(8000, 1, 100, 0.5)
	cv := NewChannelVolume(src, vols)

	vols[0] = 0 // caller keeps ownership of its slice
	if cv.Volume(0) != 0.5 {
		t.Errorf("Volume(0) = %v, want 0.5", cv.Volume(0))
	}
}

func TestChannelVolume_AppliesGains(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	cv := NewChannelVolume(src, []float32{0.4, 0.8})

	buf := make([]float32, 10)
	n, err := cv.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}

	for f := 0; f < n/2; f++ {
		left := buf[f*2]
		right := buf[f*2+1]

		if diff := math.Abs(float64(left - 0.2)); diff > 0.001 {
			t.Errorf("frame %d left = %v, want 0.2", f, left)
		}
		if diff := math.Abs(float64(right - 0.4)); diff > 0.001 {
			t.Errorf("frame %d right = %v, want 0.4", f, right)
		}
	}
}

func TestChannelVolume_FoldsMultiChannelInput(t *testing.T) {
	t.Parallel()

	// Stereo input is folded to mono before the fan-out, so both output
	// channels carry the channel average scaled by their volume.
	src := newMockSource(8000, 2, 100, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})
	cv := NewChannelVolume(src, []float32{1.0, 0.5})

	buf := make([]float32, 8)
	n, err := cv.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8 {
		t.Fatalf("ReadSamples() n = %d, want 8", n)
	}

	for f := 0; f < n/2; f++ {
		if diff := math.Abs(float64(buf[f*2] - 0.5)); diff > 0.001 {
			t.Errorf("frame %d left = %v, want 0.5", f, buf[f*2])
		}
		if diff := math.Abs(float64(buf[f*2+1] - 0.25)); diff > 0.001 {
			t.Errorf("frame %d right = %v, want 0.25", f, buf[f*2+1])
		}
	}
}

func TestChannelVolume_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	cv := NewChannelVolume(src, []float32{1, 1})

	buf := make([]float32, 7) // not a multiple of 2
	if _, err := cv.ReadSamples(buf); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestChannelVolume_EOF(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 3, 0.5)
	cv := NewChannelVolume(src, []float32{1, 1})

	buf := make([]float32, 10)
	n, err := cv.ReadSamples(buf)

	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}

	n, err = cv.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestChannelVolume_SeekAndDurationPassThrough(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 16000) // 2 seconds
	cv := NewChannelVolume(src, []float32{1, 1})

	total, ok := cv.TotalDuration()
	if !ok || total != 2*time.Second {
		t.Errorf("TotalDuration() = (%v, %v), want (2s, true)", total, ok)
	}

	if err := cv.Seek(time.Second); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}

	if err := cv.Seek(5 * time.Second); err == nil {
		t.Error("Seek() past the end succeeded")
	}
}
