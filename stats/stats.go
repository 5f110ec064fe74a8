// Package stats keeps the recent loss history of a training run.
package stats

import (
	"fmt"
	"html/template"
	"math"
)

// Default number of entries retained in a History.
const HistorySize = 200

// Entry is the loss recorded after one epoch.
type Entry struct {
	Epoch     int
	TrainLoss float64
	TestLoss  float64
}

func (e Entry) String() string {
	return fmt.Sprintf("epoch %3d: train loss =%7.4f  test loss =%7.4f", e.Epoch, e.TrainLoss, e.TestLoss)
}

// History is a bounded list of the most recent entries. It is a value type,
// Add always returns a new slice so a History can be shared between state snapshots.
type History []Entry

// Add appends an entry, dropping the oldest entries if the history would exceed size.
func (h History) Add(e Entry, size int) History {
	start := 0
	if len(h) >= size {
		start = len(h) - size + 1
	}
	res := make(History, len(h)-start, len(h)-start+1)
	copy(res, h[start:])
	return append(res, e)
}

// Latest returns up to n entries, most recent first.
func (h History) Latest(n int) []Entry {
	res := []Entry{}
	for i := len(h) - 1; i >= 0 && len(res) < n; i-- {
		res = append(res, h[i])
	}
	return res
}

// Smoothed returns the exponential moving average of the train and test loss over n epochs.
func (h History) Smoothed(n float64) (train, test float64) {
	var trainAvg, testAvg EMA
	for _, e := range h {
		trainAvg = EMA(trainAvg.Add(e.TrainLoss, n))
		testAvg = EMA(testAvg.Add(e.TestLoss, n))
	}
	return float64(trainAvg), float64(testAvg)
}

// Gap returns the running mean and stddev of test loss minus train loss.
func (h History) Gap() *Average {
	var avg Average
	for _, e := range h {
		avg.Add(e.TestLoss - e.TrainLoss)
	}
	return &avg
}

// Calc exponentional moving average
type EMA float64

func (e EMA) Add(val, n float64) float64 {
	if e == 0 {
		return val
	}
	k := 2.0 / (n + 1.0)
	return val*k + float64(e)*(1-k)
}

// Running mean and stddev as per http://www.johndcook.com/blog/standard_deviation/
type Average struct {
	Count, Mean float64
	Var, StdDev float64
	oldM, oldV  float64
}

func (s *Average) Add(x float64) {
	s.Count++
	if s.Count == 1 {
		s.oldM, s.Mean = x, x
		s.oldV = 0
	} else {
		s.Mean = s.oldM + (x-s.oldM)/s.Count
		s.Var = s.oldV + (x-s.oldM)*(x-s.Mean)
		s.oldM, s.oldV = s.Mean, s.Var
		s.StdDev = math.Sqrt(s.Var / (s.Count - 1))
	}
}

func (s *Average) HTML() template.HTML {
	if s.Count == 0 {
		return template.HTML("-")
	}
	var text string
	if s.StdDev < 0.001 {
		text = fmt.Sprintf("%.3f", s.Mean)
	} else {
		text = fmt.Sprintf("%.3f&PlusMinus;%.3f", s.Mean, s.StdDev)
	}
	return template.HTML(text)
}
