package nnet

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/jnb666/playground/dataset"
	"github.com/jnb666/playground/num"
	"github.com/jnb666/playground/stats"
	"math"
	"strings"
)

// Limits on the user adjustable parameters.
const (
	MaxHiddenLayers  = 6
	MinNeurons       = 1
	MaxNeurons       = 8
	NewLayerNeurons  = 4
	NoiseStep        = 5
	RatioStep        = 10
	MinBatchSize     = 1
	MaxBatchSize     = 30
	MinLearningRate  = 0.00001
	MaxLearningRate  = 10
	MaxRegRate       = 0.1
	MinPlaybackSpeed = 0.25
	MaxPlaybackSpeed = 4
	InitialLoss      = 0.5
)

type Activation string

const (
	Relu    Activation = "relu"
	Tanh    Activation = "tanh"
	Sigmoid Activation = "sigmoid"
	Lin     Activation = "linear"
)

var Activations = []Activation{Relu, Tanh, Sigmoid, Lin}

type Regularization string

const (
	NoReg Regularization = "none"
	L1    Regularization = "L1"
	L2    Regularization = "L2"
)

var Regularizations = []Regularization{NoReg, L1, L2}

type ProblemType string

const (
	Classification ProblemType = "classification"
	Regression     ProblemType = "regression"
)

var ProblemTypes = []ProblemType{Classification, Regression}

// HiddenLayer is one user editable layer between the inputs and the output.
type HiddenLayer struct {
	ID         string
	Neurons    int
	Activation Activation
}

// DefaultHiddenLayers returns the initial two layer 4-2 network.
func DefaultHiddenLayers() []HiddenLayer {
	return []HiddenLayer{
		{ID: "1", Neurons: 4, Activation: Tanh},
		{ID: "2", Neurons: 2, Activation: Tanh},
	}
}

// State is the complete application state. It is treated as an immutable
// value: Reduce returns a new State and never modifies the slices of the old one.
type State struct {
	Hidden         []HiddenLayer
	Training       bool
	Epoch          int
	TrainLoss      float64
	TestLoss       float64
	LearningRate   float64
	Activation     Activation
	Regularization Regularization
	RegRate        float64
	BatchSize      int
	DataSet        dataset.Family
	Problem        ProblemType
	Noise          int
	TrainRatio     int
	DataVersion    int
	Features       []Feature
	History        stats.History
	ShowTestData   bool
	Discretize     bool
	ShowValues     bool
	PlaybackSpeed  float64
}

// InputWidth is the number of enabled features.
func (s State) InputWidth() int {
	return len(Enabled(s.Features))
}

// HiddenWidths returns the neuron count of each hidden layer in order.
func (s State) HiddenWidths() []int {
	w := make([]int, len(s.Hidden))
	for i, l := range s.Hidden {
		w[i] = l.Neurons
	}
	return w
}

// Layer returns the index of the hidden layer with the given id, or -1 if not found.
func (s State) Layer(id string) int {
	for i, l := range s.Hidden {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Progress returns the simulated learning progress in 0:1.
func (s State) Progress() float64 {
	return dataset.Progress(s.Epoch)
}

// Status is a short description of the learning progress.
func (s State) Status() string {
	switch {
	case s.Epoch == 0:
		return "press start to begin training"
	case s.Epoch < 10:
		return "network is learning the pattern"
	case s.Epoch < 25:
		return "refining decision boundaries"
	case s.Epoch < dataset.ConvergeEpochs:
		return "fine tuning"
	default:
		return "network has learned the pattern"
	}
}

func (s State) String() string {
	layers := make([]string, len(s.Hidden))
	for i, l := range s.Hidden {
		layers[i] = fmt.Sprintf("%d:%s", l.Neurons, l.Activation)
	}
	return fmt.Sprintf("dataset=%s noise=%d ratio=%d inputs=%d hidden=[%s] epoch=%d training=%v",
		s.DataSet, s.Noise, s.TrainRatio, s.InputWidth(), strings.Join(layers, " "), s.Epoch, s.Training)
}

// Action is a state transition, applied with Reduce.
type Action interface {
	isAction()
}

type (
	// Append a new hidden layer with the given unique id.
	AddHiddenLayer struct{ ID string }
	// Remove the hidden layer with the given id.
	RemoveHiddenLayer struct{ ID string }
	// Set neuron count of hidden layer with given id.
	UpdateHiddenLayer struct {
		ID      string
		Neurons int
	}
	SetTraining       struct{ On bool }
	StepEpoch         struct{}
	Tick              struct{ TrainLoss, TestLoss float64 }
	SetLearningRate   struct{ Rate float64 }
	SetActivation     struct{ Activation Activation }
	SetRegularization struct{ Type Regularization }
	SetRegRate        struct{ Rate float64 }
	SetBatchSize      struct{ Size int }
	SetDataSet        struct{ Family dataset.Family }
	SetProblemType    struct{ Type ProblemType }
	SetNoise          struct{ Noise int }
	SetTrainRatio     struct{ Ratio int }
	ToggleFeature     struct{ ID string }
	SetShowTestData   struct{ On bool }
	SetDiscretize     struct{ On bool }
	SetShowValues     struct{ On bool }
	SetPlaybackSpeed  struct{ Speed float64 }
	// Restore default layers and clear all training progress.
	Reset struct{}
	// Clear training progress and draw a fresh data set.
	Regenerate struct{}
)

func (AddHiddenLayer) isAction()    {}
func (RemoveHiddenLayer) isAction() {}
func (UpdateHiddenLayer) isAction() {}
func (SetTraining) isAction()       {}
func (StepEpoch) isAction()         {}
func (Tick) isAction()              {}
func (SetLearningRate) isAction()   {}
func (SetActivation) isAction()     {}
func (SetRegularization) isAction() {}
func (SetRegRate) isAction()        {}
func (SetBatchSize) isAction()      {}
func (SetDataSet) isAction()        {}
func (SetProblemType) isAction()    {}
func (SetNoise) isAction()          {}
func (SetTrainRatio) isAction()     {}
func (ToggleFeature) isAction()     {}
func (SetShowTestData) isAction()   {}
func (SetDiscretize) isAction()     {}
func (SetShowValues) isAction()     {}
func (SetPlaybackSpeed) isAction()  {}
func (Reset) isAction()             {}
func (Regenerate) isAction()        {}

// NewLayer returns an AddHiddenLayer action with a freshly generated id.
func NewLayer() AddHiddenLayer {
	return AddHiddenLayer{ID: uuid.NewString()}
}

// Reduce applies the action to s and returns the new state. Out of range
// values are clamped and invalid requests are ignored, it never fails.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddHiddenLayer:
		if a.ID == "" || len(s.Hidden) >= MaxHiddenLayers || s.Layer(a.ID) >= 0 {
			return s
		}
		hidden := make([]HiddenLayer, len(s.Hidden), len(s.Hidden)+1)
		copy(hidden, s.Hidden)
		s.Hidden = append(hidden, HiddenLayer{ID: a.ID, Neurons: NewLayerNeurons, Activation: s.Activation})

	case RemoveHiddenLayer:
		ix := s.Layer(a.ID)
		if ix < 0 {
			return s
		}
		hidden := make([]HiddenLayer, 0, len(s.Hidden)-1)
		hidden = append(hidden, s.Hidden[:ix]...)
		s.Hidden = append(hidden, s.Hidden[ix+1:]...)

	case UpdateHiddenLayer:
		ix := s.Layer(a.ID)
		if ix < 0 {
			return s
		}
		s.Hidden = append([]HiddenLayer{}, s.Hidden...)
		s.Hidden[ix].Neurons = num.Clamp(a.Neurons, MinNeurons, MaxNeurons)

	case SetTraining:
		s.Training = a.On

	case StepEpoch:
		s.Epoch++

	case Tick:
		s.Epoch++
		s.TrainLoss, s.TestLoss = a.TrainLoss, a.TestLoss
		s.History = s.History.Add(stats.Entry{Epoch: s.Epoch, TrainLoss: a.TrainLoss, TestLoss: a.TestLoss}, stats.HistorySize)

	case SetLearningRate:
		if math.IsNaN(a.Rate) {
			return s
		}
		s.LearningRate = num.Clamp(a.Rate, MinLearningRate, MaxLearningRate)

	case SetActivation:
		if !validActivation(a.Activation) {
			return s
		}
		s.Activation = a.Activation
		hidden := make([]HiddenLayer, len(s.Hidden))
		for i, l := range s.Hidden {
			l.Activation = a.Activation
			hidden[i] = l
		}
		s.Hidden = hidden

	case SetRegularization:
		for _, r := range Regularizations {
			if a.Type == r {
				s.Regularization = r
			}
		}

	case SetRegRate:
		if math.IsNaN(a.Rate) {
			return s
		}
		s.RegRate = num.Clamp(a.Rate, 0, MaxRegRate)

	case SetBatchSize:
		s.BatchSize = num.Clamp(a.Size, MinBatchSize, MaxBatchSize)

	case SetDataSet:
		s.DataSet = a.Family
		s.Epoch = 0
		s.History = nil

	case SetProblemType:
		for _, p := range ProblemTypes {
			if a.Type == p {
				s.Problem = p
			}
		}

	case SetNoise:
		s.Noise = num.Snap(a.Noise, NoiseStep, dataset.MinNoise, dataset.MaxNoise)

	case SetTrainRatio:
		s.TrainRatio = num.Snap(a.Ratio, RatioStep, dataset.MinRatio, dataset.MaxRatio)

	case ToggleFeature:
		features := append([]Feature{}, s.Features...)
		for i := range features {
			if features[i].ID == a.ID {
				features[i].Enabled = !features[i].Enabled
			}
		}
		s.Features = features

	case SetShowTestData:
		s.ShowTestData = a.On

	case SetDiscretize:
		s.Discretize = a.On

	case SetShowValues:
		s.ShowValues = a.On

	case SetPlaybackSpeed:
		if math.IsNaN(a.Speed) {
			return s
		}
		s.PlaybackSpeed = num.Clamp(a.Speed, MinPlaybackSpeed, MaxPlaybackSpeed)

	case Reset:
		s.Hidden = DefaultHiddenLayers()
		s = clearProgress(s)
		s.Training = false

	case Regenerate:
		s = clearProgress(s)
		s.DataVersion++
	}
	return s
}

func clearProgress(s State) State {
	s.Epoch = 0
	s.TrainLoss, s.TestLoss = InitialLoss, InitialLoss
	s.History = nil
	return s
}

func validActivation(a Activation) bool {
	for _, act := range Activations {
		if a == act {
			return true
		}
	}
	return false
}
