package classify

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Calibrator maps raw reranker scores to calibrated probabilities. At
// decision time it is a pure, deterministic function; fitting happens
// offline and only the fitted parameters are loaded here.
type Calibrator interface {
	// Calibrate assigns a Probability to every candidate in the set.
	// The mapping must be monotone in the reranker score so calibration
	// never reorders a reranked set.
	Calibrate(set CandidateSet) (CandidateSet, error)
}

// LogisticCalibrator is a Platt-style logistic calibration: the raw
// score is standardized with the scaler fitted offline, then squashed
// through sigmoid(w*x + b). Monotone for w > 0.
type LogisticCalibrator struct {
	Weight    float64 `json:"weight"`
	Intercept float64 `json:"intercept"`
	ScaleMean float64 `json:"scale_mean"`
	ScaleStd  float64 `json:"scale_std"`
	FittedOn  string  `json:"fitted_on,omitempty"` // dataset version label
	loaded    bool
}

// LoadLogisticCalibrator reads fitted parameters from a JSON file. A
// missing or unreadable model is a configuration fault, reported as
// ErrCalibratorUnavailable so startup can fail loudly instead of the
// pipeline guessing per request.
func LoadLogisticCalibrator(path string) (*LogisticCalibrator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCalibratorUnavailable, err)
	}
	var c LogisticCalibrator
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCalibratorUnavailable, err)
	}
	if c.ScaleStd <= 0 || c.Weight <= 0 {
		return nil, fmt.Errorf("%w: non-monotone or degenerate parameters", ErrCalibratorUnavailable)
	}
	c.loaded = true
	return &c, nil
}

// NewLogisticCalibrator builds a calibrator from explicit parameters,
// mainly for tests and seeded deployments.
func NewLogisticCalibrator(weight, intercept, mean, std float64) *LogisticCalibrator {
	return &LogisticCalibrator{
		Weight:    weight,
		Intercept: intercept,
		ScaleMean: mean,
		ScaleStd:  std,
		loaded:    true,
	}
}

func (c *LogisticCalibrator) Calibrate(set CandidateSet) (CandidateSet, error) {
	if !c.loaded {
		return nil, ErrCalibratorUnavailable
	}
	for i := range set {
		x := (float64(set[i].Rerank) - c.ScaleMean) / c.ScaleStd
		set[i].Probability = Probability(sigmoid(c.Weight*x + c.Intercept))
	}
	return set, nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
