// Package animator composes the logo: one hexagon, three tentacles pinned to its alternating
// vertices, and the mode state machine deciding whether they chase the pointer or drift.
package animator

import (
	"math/rand"
	"time"

	"discube/logo/chain"
	"discube/logo/geom"
	"discube/logo/hexagon"
	"discube/logo/noise"
)

// Pointer is the input sampled once per frame.
type Pointer struct {
	Pos  geom.Vec2
	Held bool
}

// Config fixes everything except placement. Zero fields take defaults.
type Config struct {
	Segments int
	MinSpeed float64
	MaxSpeed float64

	// Noise drives ModeDrift. Defaults to Perlin noise seeded from Rand.
	Noise noise.Source

	// Rand seeds the drift cursor. Defaults to a time-seeded source.
	Rand *rand.Rand
}

const (
	DefaultMinSpeed = 0.001
	DefaultMaxSpeed = 0.002
)

func (c Config) withDefaults() Config {
	if c.Segments <= 0 {
		c.Segments = chain.DefaultSegments
	}
	if c.MinSpeed <= 0 && c.MaxSpeed <= 0 {
		c.MinSpeed, c.MaxSpeed = DefaultMinSpeed, DefaultMaxSpeed
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Noise == nil {
		c.Noise = noise.NewPerlin(c.Rand.Int63())
	}
	return c
}

// Animator owns all per-frame state. It is not safe for concurrent use; the host calls Step and
// Render from its single frame callback.
type Animator struct {
	cfg Config

	hex    hexagon.Hexagon
	state  State
	drift  noise.Drift
	chains [3]*chain.Chain
	target geom.Vec2
	frame  uint64
}

// New builds an animator centered at center with the given radius.
func New(center geom.Vec2, radius float64, cfg Config) *Animator {
	a := &Animator{cfg: cfg.withDefaults()}
	a.Reset(center, radius)
	return a
}

// Reset discards all animation state and re-lays the logo out. Hosts call it on every resize.
func (a *Animator) Reset(center geom.Vec2, radius float64) {
	a.hex = hexagon.New(center, radius)
	a.state = State{Mode: ModeDrift}
	a.drift = noise.NewDrift(a.cfg.Rand, a.cfg.MinSpeed, a.cfg.MaxSpeed)
	for i, anchor := range a.hex.Anchors() {
		a.chains[i] = chain.New(a.cfg.Segments, anchor)
	}
	a.target = center
	a.frame = 0
}

// Step advances one frame: it updates the mode from p, picks the shared target and runs one
// update on every tentacle.
func (a *Animator) Step(p Pointer) {
	a.state = Transition(a.state, Classify(a.hex.Center, a.hex.Radius, p))

	switch a.state.Mode {
	case ModePointer:
		a.target = p.Pos
	default:
		a.target = a.drift.Target(a.cfg.Noise, a.hex.Center, a.hex.Radius)
		a.drift.Advance()
	}

	anchors := a.hex.Anchors()
	for i, c := range a.chains {
		c.SetAnchor(anchors[i])
		c.SetTarget(a.target)
		c.Update()
	}
	a.frame++
}

func (a *Animator) Mode() Mode               { return a.state.Mode }
func (a *Animator) State() State             { return a.state }
func (a *Animator) Target() geom.Vec2        { return a.target }
func (a *Animator) Hexagon() hexagon.Hexagon { return a.hex }
func (a *Animator) Drift() noise.Drift       { return a.drift }
func (a *Animator) Frame() uint64            { return a.frame }
func (a *Animator) Chain(i int) *chain.Chain { return a.chains[i] }
func (a *Animator) Chains() [3]*chain.Chain  { return a.chains }
