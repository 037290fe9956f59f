// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audspat/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	bitDepth     int
	samples      []int
	offset       int
	returnErrors bool
	durationErr  error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) Duration() (time.Duration, error) {
	if m.durationErr != nil {
		return 0, m.durationErr
	}

	frames := len(m.samples) / m.channels
	return time.Duration(frames) * time.Second / time.Duration(m.sampleRate), nil
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := len(buf.Data)
	if samplesToRead > len(m.samples)-m.offset {
		samplesToRead = len(m.samples) - m.offset
	}

	copy(buf.Data, m.samples[m.offset:m.offset+samplesToRead])
	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead, io.EOF
	}

	return samplesToRead, nil
}

func newMockAiffSource(sampleRate, channels, bitDepth int, samples []int) *source {
	return &source{
		dec: &mockAiffReader{
			sampleRate: sampleRate,
			channels:   channels,
			bitDepth:   bitDepth,
			samples:    samples,
		},
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not AIFF data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newMockAiffSource(44100, 2, 16, make([]int, 100))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive value", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, 32767, -16384, -32768}
	src := newMockAiffSource(8000, 1, 16, samples)

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	// Verify 16-bit normalization
	expected := []float32{0.0, 0.5, 1.0, -0.5, -1.0}
	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-expected[i])) > 0.01 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newMockAiffSource(8000, 1, 16, make([]int, 100))

	dst := make([]float32, 0)
	n, err := src.ReadSamples(dst)

	if err != nil {
		t.Errorf("ReadSamples() with empty buffer error = %v, want nil", err)
	}

	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newMockAiffSource(8000, 1, 16, []int{100, 200, 300})

	dst := make([]float32, 3)
	n1, err1 := src.ReadSamples(dst)

	if err1 != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err1)
	}
	if n1 != 3 {
		t.Errorf("ReadSamples() n = %d, want 3", n1)
	}

	n2, err2 := src.ReadSamples(dst)
	if err2 != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err2)
	}
	if n2 != 0 {
		t.Errorf("Second ReadSamples() n = %d, want 0", n2)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newMockAiffSource(8000, 1, 16, make([]int, 100))
	src.dec.(*mockAiffReader).returnErrors = true

	dst := make([]float32, 4)
	_, err := src.ReadSamples(dst)

	if err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_TotalDuration(t *testing.T) {
	t.Parallel()

	// 16000 stereo samples = 8000 frames at 8kHz = 1 second
	src := newMockAiffSource(8000, 2, 16, make([]int, 16000))

	total, ok := src.TotalDuration()
	if !ok {
		t.Fatal("TotalDuration() ok = false, want true")
	}
	if total != time.Second {
		t.Errorf("TotalDuration() = %v, want 1s", total)
	}
}

func TestSource_TotalDuration_Unknown(t *testing.T) {
	t.Parallel()

	src := newMockAiffSource(8000, 2, 16, make([]int, 16000))
	src.dec.(*mockAiffReader).durationErr = errors.New("missing COMM chunk")

	if _, ok := src.TotalDuration(); ok {
		t.Error("TotalDuration() ok = true, want false when the decoder cannot report it")
	}
}

func TestSource_SeekNotSupported(t *testing.T) {
	t.Parallel()

	src := newMockAiffSource(8000, 1, 16, make([]int, 100))

	if err := audio.Seek(src, time.Second); !errors.Is(err, audio.ErrSeekNotSupported) {
		t.Errorf("Seek() error = %v, want ErrSeekNotSupported", err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := newMockAiffSource(8000, 1, 16, make([]int, 100))

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestErrors_AreErrors(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotAiffFile, ErrOnlyPCM16bitSupported, ErrUnsupportedAiffLayout}
	for _, err := range errs {
		if err == nil {
			t.Error("sentinel error is nil")
		}
		if err.Error() == "" {
			t.Error("sentinel error has empty message")
		}
	}
}

func TestErrors_IsComparison(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrNotAiffFile, ErrNotAiffFile) {
		t.Error("errors.Is() failed for ErrNotAiffFile")
	}

	if errors.Is(ErrNotAiffFile, ErrOnlyPCM16bitSupported) {
		t.Error("errors.Is() matched two distinct sentinel errors")
	}
}
