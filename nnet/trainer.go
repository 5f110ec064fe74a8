package nnet

import (
	"math"
	"math/rand"
	"time"
)

// BasePeriod is the tick interval at playback speed 1.
const BasePeriod = 300 * time.Millisecond

const (
	baseLoss    = 1.2
	decayRate   = 0.12
	trainJitter = 0.1
	testJitter  = 0.15
	testFactor  = 1.15
	minTrain    = 0.02
	minTest     = 0.03
)

// Stepper advances training by one epoch and returns the new losses.
type Stepper interface {
	Step(epoch int) (trainLoss, testLoss float64)
}

// Simulator produces an illustrative loss curve, no network is trained.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator returns a Simulator which draws its jitter from rng.
func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng}
}

// Step returns the losses after the given epoch, which is the new epoch count after the tick.
func (s *Simulator) Step(epoch int) (trainLoss, testLoss float64) {
	return Loss(s.rng, epoch)
}

// Loss evaluates the decay curve for the epoch with uniform jitter added.
func Loss(rng *rand.Rand, epoch int) (trainLoss, testLoss float64) {
	trainLoss = baseLoss/(1+decayRate*float64(epoch)) + (rng.Float64()-0.5)*trainJitter
	trainLoss = math.Max(minTrain, trainLoss)
	testLoss = math.Max(minTest, trainLoss*testFactor+(rng.Float64()-0.5)*testJitter)
	return
}

// TickPeriod returns the interval between epochs for the given playback speed.
// Speeds above MaxPlaybackSpeed are capped and invalid speeds run at 1.
func TickPeriod(speed float64) time.Duration {
	if math.IsNaN(speed) || speed <= 0 {
		speed = 1
	}
	speed = math.Min(speed, MaxPlaybackSpeed)
	return time.Duration(float64(BasePeriod) / speed)
}
