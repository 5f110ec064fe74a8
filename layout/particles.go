package layout

import (
	"github.com/jnb666/playground/num"
	"math/rand"
	"time"
)

const (
	// SpawnPeriod is the interval between particle bursts while training.
	SpawnPeriod = 200 * time.Millisecond
	// FrameStep is the progress added to each particle per animation frame.
	FrameStep = 0.02
	maxSpawn  = 5
)

// Particle travels along a connection from From to To as Progress goes 0 to 1.
type Particle struct {
	ID       int
	From, To Neuron
	Progress float64
	Value    float64
}

// Position interpolates the current location of the particle.
func (p Particle) Position() (x, y float64) {
	return num.Lerp(p.From.X, p.To.X, p.Progress), num.Lerp(p.From.Y, p.To.Y, p.Progress)
}

// Particles is the set of flow particles currently in flight.
type Particles struct {
	List   []Particle
	nextID int
}

// Spawn adds up to 5 new particles on randomly chosen connections.
func (ps *Particles) Spawn(rng *rand.Rand, conns []Connection) {
	count := min(maxSpawn, len(conns))
	list := make([]Particle, len(ps.List), len(ps.List)+count)
	copy(list, ps.List)
	for i := 0; i < count; i++ {
		c := conns[rng.Intn(len(conns))]
		ps.nextID++
		list = append(list, Particle{ID: ps.nextID, From: c.From, To: c.To, Value: c.From.Value})
	}
	ps.List = list
}

// Advance moves every particle along by step and drops those which have arrived.
func (ps *Particles) Advance(step float64) {
	list := make([]Particle, 0, len(ps.List))
	for _, p := range ps.List {
		p.Progress += step
		if p.Progress < 1 {
			list = append(list, p)
		}
	}
	ps.List = list
}

// Clear removes all particles.
func (ps *Particles) Clear() {
	ps.List = nil
}

// Len returns the number of particles in flight.
func (ps *Particles) Len() int { return len(ps.List) }
