// Package noise drives the logo's idle motion: a coherent noise source plus a slowly advancing
// cursor that turns noise samples into a target point.
package noise

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"discube/logo/geom"
)

// Source is a smooth, deterministic function onto [0, 1].
type Source interface {
	At(x float64) float64
}

// Four octaves, each at half the weight and twice the frequency of the previous one.
const (
	octaves = 4
	alpha   = 2
	beta    = 2
)

// Perlin is a gradient-noise Source.
type Perlin struct {
	p *perlin.Perlin
}

func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

// At returns the noise value at x remapped from [-0.5, 0.5] to [0, 1] and clamped.
func (p *Perlin) At(x float64) float64 {
	v := p.p.Noise1D(x) + 0.5
	if math.IsNaN(v) {
		return 0.5
	}
	return clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Map linearly remaps v from [inLo, inHi] onto [outLo, outHi]. An empty input range maps to outLo.
func Map(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

// Drift is the noise-field cursor. Offset is where the next sample is read; Velocity is added
// after every sample.
type Drift struct {
	Offset   geom.Vec2
	Velocity geom.Vec2
}

// NewDrift starts a cursor at a random offset in [0, 1000) per axis with a random per-axis
// speed in [minSpeed, maxSpeed).
func NewDrift(r *rand.Rand, minSpeed, maxSpeed float64) Drift {
	if maxSpeed < minSpeed {
		minSpeed, maxSpeed = maxSpeed, minSpeed
	}
	speed := func() float64 { return minSpeed + r.Float64()*(maxSpeed-minSpeed) }
	return Drift{
		Offset:   geom.V2(r.Float64()*1000, r.Float64()*1000),
		Velocity: geom.V2(speed(), speed()),
	}
}

// Target samples src independently per axis at the current offset and maps the result onto
// the square of half-width rng around center.
func (d *Drift) Target(src Source, center geom.Vec2, rng float64) geom.Vec2 {
	return geom.Vec2{
		X: Map(src.At(d.Offset.X), 0, 1, center.X-rng, center.X+rng),
		Y: Map(src.At(d.Offset.Y), 0, 1, center.Y-rng, center.Y+rng),
	}
}

// Advance moves the cursor by one step.
func (d *Drift) Advance() {
	d.Offset = d.Offset.Add(d.Velocity)
}
