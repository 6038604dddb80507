package pipeline

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"diamond-price-service/internal/core/domain"
)

// Target transforms applied to the linear score.
const (
	TargetIdentity = "identity"
	TargetLog      = "log"
	TargetLog1p    = "log1p"
)

// Linear is a linear regression over the record with one-hot encoded categoricals.
//
//	score = Intercept + sum(Numeric[col] * record[col]) + sum(Categorical[col][record[col]])
//
// The score is mapped back through Target: exp for "log", expm1 for "log1p".
type Linear struct {
	Name        string                        `json:"name" msgpack:"name" yaml:"name"`
	Version     string                        `json:"version" msgpack:"version" yaml:"version"`
	Intercept   float64                       `json:"intercept" msgpack:"intercept" yaml:"intercept"`
	Numeric     map[string]float64            `json:"numeric" msgpack:"numeric" yaml:"numeric"`
	Categorical map[string]map[string]float64 `json:"categorical" msgpack:"categorical" yaml:"categorical"`
	Target      string                        `json:"target,omitempty" msgpack:"target,omitempty" yaml:"target,omitempty"`
}

// Validate checks the document describes a pipeline this service can run.
func (p *Linear) Validate() error {
	if len(p.Numeric) == 0 && len(p.Categorical) == 0 {
		return fmt.Errorf("%w: no coefficients", domain.ErrInvalidPipeline)
	}
	if !finite(p.Intercept) {
		return fmt.Errorf("%w: intercept is not finite", domain.ErrInvalidPipeline)
	}

	var probe domain.PredictionRecord
	for col, coef := range p.Numeric {
		if _, ok := probe.Numeric(col); !ok {
			return fmt.Errorf("%w: %q is not a numeric column", domain.ErrInvalidPipeline, col)
		}
		if !finite(coef) {
			return fmt.Errorf("%w: coefficient for %q is not finite", domain.ErrInvalidPipeline, col)
		}
	}
	for col, levels := range p.Categorical {
		if _, ok := probe.Categorical(col); !ok {
			return fmt.Errorf("%w: %q is not a categorical column", domain.ErrInvalidPipeline, col)
		}
		if len(levels) == 0 {
			return fmt.Errorf("%w: no levels for %q", domain.ErrInvalidPipeline, col)
		}
		for level, w := range levels {
			if !finite(w) {
				return fmt.Errorf("%w: weight for %s=%q is not finite", domain.ErrInvalidPipeline, col, level)
			}
		}
	}

	switch p.Target {
	case "", TargetIdentity, TargetLog, TargetLog1p:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedModel, p.Target)
	}
	return nil
}

func (p *Linear) Predict(record domain.PredictionRecord) (float64, error) {
	score := p.Intercept

	for _, col := range slices.Sorted(maps.Keys(p.Numeric)) {
		v, ok := record.Numeric(col)
		if !ok {
			return 0, fmt.Errorf("%w: %q", domain.ErrUnknownFeature, col)
		}
		score += p.Numeric[col] * v
	}

	for _, col := range slices.Sorted(maps.Keys(p.Categorical)) {
		level, ok := record.Categorical(col)
		if !ok {
			return 0, fmt.Errorf("%w: %q", domain.ErrUnknownFeature, col)
		}
		w, ok := p.Categorical[col][level]
		if !ok {
			return 0, fmt.Errorf("%w: %s=%q", domain.ErrUnknownCategory, col, level)
		}
		score += w
	}

	switch p.Target {
	case TargetLog:
		return math.Exp(score), nil
	case TargetLog1p:
		return math.Expm1(score), nil
	default:
		return score, nil
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
