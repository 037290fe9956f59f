// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"time"

	"github.com/ik5/audspat/utils"
)

// Position is a point in an arbitrary Euclidean world-space unit.
type Position [3]float32

func distanceSq(a, b Position) float32 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]

	return dx*dx + dy*dy + dz*dz
}

// Falloff selects how loudness decays with the distance between the emitter
// and an ear.
type Falloff int

const (
	// FalloffInverseSquare attenuates with the square of the distance,
	// matching physical sound intensity.
	FalloffInverseSquare Falloff = iota
	// FalloffInverse attenuates linearly with distance. It decays slower
	// than the physical law, which keeps distant emitters audible in
	// small scenes.
	FalloffInverse
)

// The gain ramp advances by this much per position update, so a full
// transition from start to target takes exactly 8 updates.
const lerpStep = 0.125

// Spatial places a mono source at a point in 3D space and renders it to
// stereo. The volume of each output channel depends on the distance between
// the emitter and that channel's ear: the closer ear hears the source louder,
// the farther one quieter.
//
// Channel volumes do not jump to freshly computed values. Each SetPositions
// call moves them one ramp step from the gains captured at the start of the
// current transition toward the new targets, which keeps volume changes free
// of audible clicks while the emitter or the listener moves.
//
// Spatial is not safe for concurrent use; drive position updates and sample
// reads from the same goroutine or serialize them externally.
type Spatial struct {
	input   *ChannelVolume
	falloff Falloff

	leftTarget  float32
	rightTarget float32

	// Ramp state: progress runs from 0 to 1 in lerpStep increments, and
	// startLeft/startRight hold the gains the current transition began at.
	progress   float32
	startLeft  float32
	startRight float32
}

// NewSpatial wraps src for playback at emitter as heard from leftEar and
// rightEar, using the inverse-square falloff. The constructor performs the
// first position update, so gains begin ramping up from silence.
func NewSpatial(src Source, emitter, leftEar, rightEar Position) *Spatial {
	return NewSpatialFalloff(src, emitter, leftEar, rightEar, FalloffInverseSquare)
}

// NewSpatialFalloff is NewSpatial with an explicit falloff policy.
func NewSpatialFalloff(src Source, emitter, leftEar, rightEar Position, falloff Falloff) *Spatial {
	s := &Spatial{
		input:   NewChannelVolume(src, []float32{0, 0}),
		falloff: falloff,
	}
	s.SetPositions(emitter, leftEar, rightEar)

	return s
}

// SetPositions updates the emitter and ear positions, recomputes the target
// channel gains and advances the gain ramp one step toward them.
//
// leftEar and rightEar must differ; coincident ears leave the stereo balance
// undefined and cause a panic. An emitter coincident with an ear is fine —
// the distance term saturates at full gain.
func (s *Spatial) SetPositions(emitter, leftEar, rightEar Position) {
	if leftEar == rightEar {
		panic("audio: left and right ear positions must differ")
	}

	leftDistSq := distanceSq(leftEar, emitter)
	rightDistSq := distanceSq(rightEar, emitter)
	earDistance := float32(math.Sqrt(float64(distanceSq(leftEar, rightEar))))
	leftDist := float32(math.Sqrt(float64(leftDistSq)))
	rightDist := float32(math.Sqrt(float64(rightDistSq)))

	// Stereo balance from the relative distance difference. Ranges from
	// 0.5 (this ear is the near one) to 1.0 (this ear is the far one);
	// the distance term below more than compensates on the near side.
	leftBalance := min(((leftDist-rightDist)/earDistance+1)/4+0.5, 1)
	rightBalance := min(((rightDist-leftDist)/earDistance+1)/4+0.5, 1)

	// Distance falloff, clamped so distance alone never amplifies.
	// A zero distance divides to +Inf and the clamp degrades it to 1.
	var leftAtten, rightAtten float32
	switch s.falloff {
	case FalloffInverse:
		leftAtten = min(1/leftDist, 1)
		rightAtten = min(1/rightDist, 1)
	default:
		leftAtten = min(1/leftDistSq, 1)
		rightAtten = min(1/rightDistSq, 1)
	}

	s.leftTarget = leftBalance * leftAtten
	s.rightTarget = rightBalance * rightAtten

	s.progress = min(s.progress+lerpStep, 1)
	s.input.SetVolume(0, utils.Lerp(s.startLeft, s.leftTarget, s.progress))
	s.input.SetVolume(1, utils.Lerp(s.startRight, s.rightTarget, s.progress))
}

// ResetLerp restarts the gain ramp from the currently applied gains.
// Call it before a deliberately large jump (e.g., teleporting the emitter)
// so the ramp blends from where playback actually is instead of from a
// stale start point.
func (s *Spatial) ResetLerp() {
	s.startLeft = s.input.Volume(0)
	s.startRight = s.input.Volume(1)
	s.progress = 0
}

func (s *Spatial) SampleRate() int { return s.input.SampleRate() }
func (s *Spatial) Channels() int   { return s.input.Channels() }
func (s *Spatial) BufSize() int    { return s.input.BufSize() }
func (s *Spatial) Close() error    { return s.input.Close() }

func (s *Spatial) ReadSamples(dst []float32) (int, error) {
	return s.input.ReadSamples(dst)
}

func (s *Spatial) Seek(pos time.Duration) error {
	return s.input.Seek(pos)
}

func (s *Spatial) TotalDuration() (time.Duration, bool) {
	return s.input.TotalDuration()
}
