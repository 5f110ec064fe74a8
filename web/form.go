package web

import (
	"errors"
	"fmt"
	"github.com/jnb666/playground/dataset"
	"github.com/jnb666/playground/nnet"
	"net/http"
	"strconv"
)

// formActions converts the posted settings to actions. Only fields present in
// the form are set, and the data set only if it differs from the current one
// as selecting it clears the training progress. Values which fail to parse are skipped and reported in the
// returned error, range checks are left to the reducer.
func formActions(r *http.Request, cur nnet.State) ([]nnet.Action, error) {
	var actions []nnet.Action
	var errs []error
	value := func(key string) (string, bool) {
		vals := r.Form[key]
		if len(vals) == 0 {
			return "", false
		}
		// a checkbox following its hidden default overrides it
		return vals[len(vals)-1], true
	}
	intVal := func(key string, fn func(int) nnet.Action) {
		if val, ok := value(key); ok {
			if x, err := strconv.Atoi(val); err == nil {
				actions = append(actions, fn(x))
			} else {
				errs = append(errs, fmt.Errorf("invalid %s: %q", key, val))
			}
		}
	}
	floatVal := func(key string, fn func(float64) nnet.Action) {
		if val, ok := value(key); ok {
			if x, err := strconv.ParseFloat(val, 64); err == nil {
				actions = append(actions, fn(x))
			} else {
				errs = append(errs, fmt.Errorf("invalid %s: %q", key, val))
			}
		}
	}
	boolVal := func(key string, fn func(bool) nnet.Action) {
		if val, ok := value(key); ok {
			if x, err := strconv.ParseBool(val); err == nil {
				actions = append(actions, fn(x))
			} else {
				errs = append(errs, fmt.Errorf("invalid %s: %q", key, val))
			}
		}
	}
	if val, ok := value("dataset"); ok && dataset.ParseFamily(val) != cur.DataSet {
		actions = append(actions, nnet.SetDataSet{Family: dataset.ParseFamily(val)})
	}
	if val, ok := value("activation"); ok {
		actions = append(actions, nnet.SetActivation{Activation: nnet.Activation(val)})
	}
	if val, ok := value("regularization"); ok {
		actions = append(actions, nnet.SetRegularization{Type: nnet.Regularization(val)})
	}
	if val, ok := value("problem"); ok {
		actions = append(actions, nnet.SetProblemType{Type: nnet.ProblemType(val)})
	}
	intVal("noise", func(x int) nnet.Action { return nnet.SetNoise{Noise: x} })
	intVal("ratio", func(x int) nnet.Action { return nnet.SetTrainRatio{Ratio: x} })
	intVal("batch", func(x int) nnet.Action { return nnet.SetBatchSize{Size: x} })
	floatVal("rate", func(x float64) nnet.Action { return nnet.SetLearningRate{Rate: x} })
	floatVal("regrate", func(x float64) nnet.Action { return nnet.SetRegRate{Rate: x} })
	floatVal("speed", func(x float64) nnet.Action { return nnet.SetPlaybackSpeed{Speed: x} })
	boolVal("showtest", func(x bool) nnet.Action { return nnet.SetShowTestData{On: x} })
	boolVal("discretize", func(x bool) nnet.Action { return nnet.SetDiscretize{On: x} })
	boolVal("showvalues", func(x bool) nnet.Action { return nnet.SetShowValues{On: x} })
	return actions, errors.Join(errs...)
}
