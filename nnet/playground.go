// Package nnet holds the playground application state, the simulated
// training loop and the timers which drive it.
package nnet

import (
	"fmt"
	"github.com/jnb666/playground/dataset"
	"github.com/jnb666/playground/layout"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// FramePeriod is the interval between particle animation frames.
const FramePeriod = time.Second / 60

// Playground owns the state together with the data set and network layout
// derived from it. The embedded mutex serialises all access, both from
// request handlers and the background runners.
type Playground struct {
	Config
	state     State
	points    []dataset.Point
	net       *layout.Network
	particles layout.Particles
	dataKey   string
	netKey    string
	rng       *rand.Rand
	stepper   Stepper
	trainer   *Runner
	spawner   *Runner
	animator  *Runner
	listeners []func(State)
	ctl       sync.Mutex
	sync.Mutex
}

// NewPlayground creates a new session from the config.
func NewPlayground(conf Config) *Playground {
	p := &Playground{Config: conf, rng: SetSeed(conf.RandSeed)}
	p.stepper = NewSimulator(p.rng)
	p.state = conf.State()
	p.refresh()
	p.trainer = NewRunner("train", TickPeriod(p.state.PlaybackSpeed), p.Tick)
	p.spawner = NewRunner("spawn", layout.SpawnPeriod, p.Spawn)
	p.animator = NewRunner("animate", FramePeriod, p.Frame)
	return p
}

// SetStepper replaces the loss generator, e.g. with a real trainer.
func (p *Playground) SetStepper(s Stepper) {
	p.Lock()
	p.stepper = s
	p.Unlock()
}

// Subscribe registers a function which is called with the new state after every epoch.
func (p *Playground) Subscribe(fn func(State)) {
	p.Lock()
	p.listeners = append(p.listeners, fn)
	p.Unlock()
}

// Dispatch applies the action, regenerates the data set and layout if their
// inputs have changed and starts or stops the timers to match the new state.
func (p *Playground) Dispatch(actions ...Action) State {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	p.Lock()
	for _, a := range actions {
		p.state = Reduce(p.state, a)
	}
	p.refresh()
	if !p.state.Training {
		p.particles.Clear()
	}
	s := p.state
	p.Unlock()
	p.syncRunners(s)
	return s
}

// Stop all background timers.
func (p *Playground) Close() {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	for _, r := range []*Runner{p.trainer, p.spawner, p.animator} {
		r.Stop()
	}
}

// Tick advances the simulated training by one epoch. It does nothing if training is paused.
func (p *Playground) Tick() {
	p.Lock()
	if !p.state.Training {
		p.Unlock()
		return
	}
	train, test := p.stepper.Step(p.state.Epoch + 1)
	p.state = Reduce(p.state, Tick{TrainLoss: train, TestLoss: test})
	p.publish()
}

// Step moves on by a single epoch without updating the losses.
func (p *Playground) Step() State {
	p.Lock()
	p.state = Reduce(p.state, StepEpoch{})
	return p.publish()
}

// called with the lock held, releases it before notifying the listeners
func (p *Playground) publish() State {
	s := p.state
	listeners := p.listeners
	p.Unlock()
	for _, fn := range listeners {
		fn(s)
	}
	return s
}

// Load replaces the session with a fresh state built from conf. Training is stopped.
func (p *Playground) Load(conf Config) State {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	p.Lock()
	p.Config = conf
	p.state = conf.State()
	p.dataKey, p.netKey = "", ""
	p.refresh()
	p.particles.Clear()
	s := p.state
	p.Unlock()
	p.syncRunners(s)
	log.Println("load config:", s)
	return s
}

// Spawn launches a burst of flow particles along random connections.
func (p *Playground) Spawn() {
	p.Lock()
	defer p.Unlock()
	if p.state.Training && len(p.net.Connections) > 0 {
		p.particles.Spawn(p.rng, p.net.Connections)
	}
}

// Frame moves the flow particles along by one animation step.
func (p *Playground) Frame() {
	p.Lock()
	defer p.Unlock()
	p.particles.Advance(layout.FrameStep)
}

// State returns the current state snapshot.
func (p *Playground) State() State {
	p.Lock()
	defer p.Unlock()
	return p.state
}

// Points returns the current data set.
func (p *Playground) Points() []dataset.Point {
	p.Lock()
	defer p.Unlock()
	return p.points
}

// Network returns the current layout.
func (p *Playground) Network() *layout.Network {
	p.Lock()
	defer p.Unlock()
	return p.net
}

// Particles returns the flow particles in flight.
func (p *Playground) Particles() []layout.Particle {
	p.Lock()
	defer p.Unlock()
	return p.particles.List
}

// Snapshot returns the state, layout and particles together.
func (p *Playground) Snapshot() (State, *layout.Network, []layout.Particle) {
	p.Lock()
	defer p.Unlock()
	return p.state, p.net, p.particles.List
}

// CanvasSize returns the dimensions used for the layout.
func (p *Playground) CanvasSize() (width, height float64) {
	p.Lock()
	defer p.Unlock()
	return p.Width, p.Height
}

// Heatmap returns the simulated decision boundary for the current epoch.
func (p *Playground) Heatmap() [][]float64 {
	s := p.State()
	return dataset.Heatmap(s.DataSet, s.Progress(), s.Discretize, dataset.HeatmapSize)
}

// Running reports whether the epoch timer is active.
func (p *Playground) Running() bool {
	return p.trainer.Running()
}

// regenerate derived data which is out of date, must be called with the lock held
func (p *Playground) refresh() {
	s := p.state
	dataKey := fmt.Sprintf("%s:%d:%d:%d", s.DataSet, s.Noise, s.TrainRatio, s.DataVersion)
	if dataKey != p.dataKey {
		p.points = dataset.Generate(p.rng, s.DataSet, s.Noise, s.TrainRatio)
		p.dataKey = dataKey
		log.Printf("dataset: generate %s", dataKey)
	}
	layers := make([]string, len(s.Hidden))
	for i, l := range s.Hidden {
		layers[i] = fmt.Sprintf("%s=%d", l.ID, l.Neurons)
	}
	netKey := fmt.Sprintf("%d:%s", s.InputWidth(), strings.Join(layers, ","))
	if netKey != p.netKey {
		p.net = layout.New(p.rng, s.InputWidth(), s.HiddenWidths(), p.Width, p.Height, p.Padding)
		p.netKey = netKey
		p.particles.Clear()
		log.Printf("layout: widths=%v", p.net.Widths())
	}
}

func (p *Playground) syncRunners(s State) {
	p.trainer.SetPeriod(TickPeriod(s.PlaybackSpeed))
	for _, r := range []*Runner{p.trainer, p.spawner, p.animator} {
		if s.Training {
			r.Start()
		} else {
			r.Stop()
		}
	}
}

// Set random number seed, or random seed if seed <= 0
func SetSeed(seed int64) *rand.Rand {
	if seed <= 0 {
		seed = time.Now().UTC().UnixNano()
	}
	log.Println("random seed =", seed)
	return rand.New(rand.NewSource(seed))
}
