// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core audio processing building blocks:
//   - Source interface for audio input
//   - Spatial for placing a mono source in 3D space, rendered to stereo
//   - ChannelVolume for per-channel volume control
//   - MonoMixer for channel mixing
//   - Resampler for sample rate conversion
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// Sources that can do more implement the optional Seeker and Durationer
// interfaces. The package-level Seek and TotalDuration helpers probe for
// them, and every wrapper in this package forwards both capabilities to
// the source it wraps:
//
//	if err := audio.Seek(src, 30*time.Second); err != nil {
//	    // errors.Is(err, audio.ErrSeekNotSupported) when src cannot seek
//	}
//
// # Spatial Positioning
//
// Spatial renders a mono source as if it played from a point in 3D space,
// given the positions of the emitter and of the listener's two ears:
//
//	sp := audio.NewSpatial(src,
//	    audio.Position{0, 0, 0},  // emitter
//	    audio.Position{-1, 0, 0}, // left ear
//	    audio.Position{1, 0, 0},  // right ear
//	)
//
//	// as the emitter or listener moves:
//	sp.SetPositions(emitter, leftEar, rightEar)
//
// Each SetPositions call moves the channel gains one step of a fixed ramp
// toward the newly computed targets; a full transition takes 8 calls. Call
// ResetLerp before an intentional teleport so the ramp restarts from the
// currently applied gains.
//
// # Per-Channel Volume
//
// ChannelVolume is the building block underneath Spatial: it fans a mono
// source out to N channels, each scaled by its own volume:
//
//	cv := audio.NewChannelVolume(src, []float32{0.8, 0.2})
//	cv.SetVolume(1, 0.5)
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling with high quality.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for applications that need to support multiple formats.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
//
// # Error Handling
//
// Audio processing functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
