// SPDX-License-Identifier: EPL-2.0

package audspat

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/audspat/audio"
	"github.com/ik5/audspat/utils"
)

// SpatializeToStereo16 is a high-level convenience function that resamples
// audio to a target sample rate, places it at a fixed point in 3D space and
// collects the stereo result as 16-bit PCM data.
//
// This function creates a processing pipeline:
//  1. Resamples the source audio to targetRate using cubic interpolation
//  2. Folds the audio to mono and fans it back out to stereo, with each
//     channel's gain derived from the emitter/ear geometry
//  3. Reads all samples from the pipeline
//  4. Converts float32 samples to int16 PCM format
//
// Parameters:
//   - src: The audio source to process (implements Source interface)
//   - targetRate: Target sample rate in Hz (e.g., 8000, 16000, 44100, 48000)
//   - bufferSize: Size of the buffer for reading samples (e.g., 4096);
//     must be even, since output frames are stereo pairs
//   - emitter, leftEar, rightEar: positions in world space; the two ears
//     must not coincide
//
// Returns:
//   - []int16: Collected interleaved stereo PCM samples
//   - int: The output sample rate (same as targetRate)
//   - error: Any error encountered during processing
//
// Note: The gains ramp in from silence over the first blocks, the same way
// they do during position changes. For a moving emitter use
// SpatializeMoving16, or drive audio.Spatial directly.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm16, rate, err := audspat.SpatializeToStereo16(src, 44100, 4096,
//	    audio.Position{2, 0, 1},  // emitter
//	    audio.Position{-1, 0, 0}, // left ear
//	    audio.Position{1, 0, 0},  // right ear
//	)
//	if err != nil {
//	    panic(err)
//	}
//	// pcm16 now contains interleaved stereo 16-bit PCM at 44.1kHz
func SpatializeToStereo16(
	src audio.Source,
	targetRate, bufferSize int,
	emitter, leftEar, rightEar audio.Position,
) ([]int16, int, error) {
	return SpatializeMoving16(src, targetRate, bufferSize,
		func(time.Duration) (audio.Position, audio.Position, audio.Position) {
			return emitter, leftEar, rightEar
		})
}

// SpatializeMoving16 is SpatializeToStereo16 for emitters or listeners in
// motion. Before every block it asks at for the positions at the elapsed
// stream time and feeds them to the positioner, so gains ramp smoothly along
// the path. The block size (bufferSize) therefore sets the position update
// rate: 4096 samples at 44.1kHz updates roughly every 46ms.
func SpatializeMoving16(
	src audio.Source,
	targetRate, bufferSize int,
	at func(elapsed time.Duration) (emitter, leftEar, rightEar audio.Position),
) ([]int16, int, error) {
	if bufferSize%2 != 0 {
		return nil, targetRate, audio.ErrInvalidDstSize
	}

	emitter, leftEar, rightEar := at(0)

	// Pipeline: resample -> spatialize (mono fold + stereo fan-out)
	resampler := audio.NewResampler(src, targetRate)
	sp := audio.NewSpatial(resampler, emitter, leftEar, rightEar)

	var pcm16 []int16
	buf := make([]float32, bufferSize)
	frames := 0

	for {
		elapsed := time.Duration(frames) * time.Second / time.Duration(targetRate)
		sp.SetPositions(at(elapsed))

		n, err := sp.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
			}
			frames += n / 2
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
