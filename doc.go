// SPDX-License-Identifier: EPL-2.0

// Package audspat places mono audio sources in 3D space and renders them to
// stereo for Go applications.
//
// This package offers convenient functions on top of the audio subpackage's
// building blocks: a spatial positioner, per-channel volume control, channel
// folding, resampling and decoders for common audio formats.
//
// # Supported Formats
//
// The package supports decoding the following audio formats:
//   - WAV via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to place a source in space is SpatializeToStereo16:
//
//	// Decode an audio file
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	// Render it as heard from two ears on the x axis,
//	// with the emitter two units to the right
//	pcm16, rate, _ := audspat.SpatializeToStereo16(src, 44100, 4096,
//	    audio.Position{2, 0, 0},
//	    audio.Position{-1, 0, 0},
//	    audio.Position{1, 0, 0},
//	)
//
//	// pcm16 is interleaved stereo 16-bit PCM at 44.1kHz
//
// For emitters in motion, SpatializeMoving16 takes a callback that reports
// positions over stream time and ramps the channel gains smoothly along the
// path.
//
// # Audio Processing Pipeline
//
// For more control, build the pipeline from the audio subpackage directly:
//
//	// Resample, then position in space
//	resampler := audio.NewResampler(source, 44100)
//	sp := audio.NewSpatial(resampler, emitter, leftEar, rightEar)
//
//	// Move the emitter as the stream plays
//	sp.SetPositions(newEmitter, leftEar, rightEar)
//
//	// Read interleaved stereo samples
//	buf := make([]float32, 4096)
//	n, err := sp.ReadSamples(buf)
//
// Every stage implements audio.Source, so stages compose freely, and seek
// and duration queries pass through the whole chain via audio.Seek and
// audio.TotalDuration.
//
// # Format Decoders
//
// Each format has its own decoder:
//
//	// WAV
//	wavDecoder := wav.Decoder{}
//	src, _ := wavDecoder.Decode(reader)
//
//	// MP3
//	mp3Decoder := mp3.Decoder{}
//	src, _ := mp3Decoder.Decode(reader)
//
//	// Vorbis
//	vorbisDecoder := vorbis.Decoder{}
//	src, _ := vorbisDecoder.Decode(reader)
//
//	// AIFF
//	aiffDecoder := aiff.Decoder{}
//	src, _ := aiffDecoder.Decode(reader)
//
// All decoders return an audio.Source which can be used with the audio
// processing functions.
//
// # Writing WAV Files
//
// The package can write PCM WAV files, including the spatializer's stereo
// output:
//
//	stereo := []int16{100, 80, -100, -80}
//	file, _ := os.Create("output.wav")
//	wav.WriteWAV16(file, 44100, 2, stereo)
//
// # Performance
//
// The package is optimized for performance with minimal allocations:
//   - Gain math is a handful of float operations per position update
//   - Buffer reuse minimizes GC pressure
//   - Batch conversions reduce per-sample overhead
//
// See the individual subpackages for more detailed documentation.
package audspat
