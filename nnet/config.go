package nnet

import (
	"encoding/json"
	"fmt"
	"github.com/jnb666/playground/dataset"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// Initial settings for a playground session
type Config struct {
	DataSet        string
	Noise          int
	TrainRatio     int
	BatchSize      int
	LearningRate   float64
	Activation     string
	Regularization string
	RegRate        float64
	ProblemType    string
	PlaybackSpeed  float64
	ShowTestData   bool
	ShowValues     bool
	Discretize     bool
	Width          float64
	Height         float64
	Padding        float64
	RandSeed       int64
	Features       []string
	Hidden         []int
}

// Default settings
func DefaultConfig() Config {
	return Config{
		DataSet:        string(dataset.Circles),
		Noise:          0,
		TrainRatio:     50,
		BatchSize:      10,
		LearningRate:   0.03,
		Activation:     string(Tanh),
		Regularization: string(NoReg),
		ProblemType:    string(Classification),
		PlaybackSpeed:  1,
		ShowTestData:   true,
		ShowValues:     true,
		Width:          800,
		Height:         500,
		Padding:        80,
		Features:       []string{"x1", "x2"},
		Hidden:         []int{4, 2},
	}
}

// Load config from json file, fields missing from the file keep their default values.
func LoadConfig(filePath string) (c Config, err error) {
	c = DefaultConfig()
	var f *os.File
	if f, err = os.Open(filePath); err != nil {
		return
	}
	defer f.Close()
	log.Println("loading config from", filePath)
	if err = json.NewDecoder(f).Decode(&c); err != nil {
		err = fmt.Errorf("decode %s: %w", filePath, err)
	}
	return
}

// Save config to JSON file, the file is written to a temporary name first then renamed.
func (c Config) Save(filePath string) error {
	tmpPath := filepath.Join(filepath.Dir(filePath), "."+filepath.Base(filePath))
	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	log.Println("saving config to", filePath)
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err = enc.Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filePath, err)
	}
	f.Close()
	return os.Rename(tmpPath, filePath)
}

// Fields returns the names of the scalar fields, which can be set with SetString or SetBool.
func (c Config) Fields() []string {
	st := reflect.TypeOf(c)
	fld := []string{}
	for i := 0; i < st.NumField(); i++ {
		if st.Field(i).Type.Kind() != reflect.Slice {
			fld = append(fld, st.Field(i).Name)
		}
	}
	return fld
}

func (c Config) Get(key string) interface{} {
	s := reflect.ValueOf(c)
	return s.FieldByName(key).Interface()
}

func (c Config) String() string {
	str := []string{"== Config =="}
	for _, key := range c.Fields() {
		str = append(str, fmt.Sprintf("%-14s: %v", key, c.Get(key)))
	}
	str = append(str, fmt.Sprintf("%-14s: %v", "Features", c.Features))
	str = append(str, fmt.Sprintf("%-14s: %v", "Hidden", c.Hidden))
	return strings.Join(str, "\n")
}

func (c Config) SetString(key, val string) (Config, error) {
	s := reflect.ValueOf(&c).Elem()
	f := s.FieldByName(key)
	if !f.IsValid() {
		return c, fmt.Errorf("unknown config field: %s", key)
	}
	var err error
	switch f.Type().Kind() {
	case reflect.Int, reflect.Int64:
		var x int64
		if x, err = strconv.ParseInt(val, 10, 64); err == nil {
			f.SetInt(x)
		}
	case reflect.Float64:
		var x float64
		if x, err = strconv.ParseFloat(val, 64); err == nil {
			f.SetFloat(x)
		}
	case reflect.String:
		f.SetString(val)
	case reflect.Bool:
		var x bool
		if x, err = strconv.ParseBool(val); err == nil {
			f.SetBool(x)
		}
	default:
		return c, fmt.Errorf("invalid type for SetString: %v", f.Type().Kind())
	}
	return c, err
}

func (c Config) SetBool(key string, val bool) (Config, error) {
	s := reflect.ValueOf(&c).Elem()
	f := s.FieldByName(key)
	if f.IsValid() && f.Type().Kind() == reflect.Bool {
		f.SetBool(val)
		return c, nil
	}
	return c, fmt.Errorf("invalid type for SetBool: %s", key)
}

// State builds the initial application state. The config values are passed
// through Reduce so they are clamped in the same way as user input.
func (c Config) State() State {
	defaults := DefaultConfig()
	s := State{
		TrainLoss:      InitialLoss,
		TestLoss:       InitialLoss,
		LearningRate:   defaults.LearningRate,
		PlaybackSpeed:  defaults.PlaybackSpeed,
		Activation:     Tanh,
		Regularization: NoReg,
		Problem:        Classification,
		Features:       SelectFeatures(c.Features),
	}
	actions := []Action{
		SetActivation{Activation(c.Activation)},
		SetRegularization{Regularization(c.Regularization)},
		SetRegRate{c.RegRate},
		SetProblemType{ProblemType(c.ProblemType)},
		SetLearningRate{c.LearningRate},
		SetBatchSize{c.BatchSize},
		SetDataSet{dataset.ParseFamily(c.DataSet)},
		SetNoise{c.Noise},
		SetTrainRatio{c.TrainRatio},
		SetShowTestData{c.ShowTestData},
		SetShowValues{c.ShowValues},
		SetDiscretize{c.Discretize},
		SetPlaybackSpeed{c.PlaybackSpeed},
	}
	for i, n := range c.Hidden {
		id := strconv.Itoa(i + 1)
		actions = append(actions, AddHiddenLayer{ID: id}, UpdateHiddenLayer{ID: id, Neurons: n})
	}
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

// Config returns the current settings of the state as a config, layout and
// seed values are taken from base.
func (s State) Config(base Config) Config {
	c := base
	c.DataSet = string(s.DataSet)
	c.Noise = s.Noise
	c.TrainRatio = s.TrainRatio
	c.BatchSize = s.BatchSize
	c.LearningRate = s.LearningRate
	c.Activation = string(s.Activation)
	c.Regularization = string(s.Regularization)
	c.RegRate = s.RegRate
	c.ProblemType = string(s.Problem)
	c.PlaybackSpeed = s.PlaybackSpeed
	c.ShowTestData = s.ShowTestData
	c.ShowValues = s.ShowValues
	c.Discretize = s.Discretize
	c.Features = []string{}
	for _, f := range Enabled(s.Features) {
		c.Features = append(c.Features, f.ID)
	}
	c.Hidden = s.HiddenWidths()
	return c
}

// Exit in case of error
func CheckErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
