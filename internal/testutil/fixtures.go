package testutil

import (
	"diamond-price-service/internal/adapters/secondary/pipeline"
	"diamond-price-service/internal/core/domain"
)

// SampleRecord is the form's reference diamond.
func SampleRecord() domain.PredictionRecord {
	return domain.PredictionRecord{
		Carat:   0.7,
		Cut:     domain.CutIdeal,
		Color:   domain.ColorE,
		Clarity: domain.ClarityVS1,
		Depth:   61.5,
		Table:   55.0,
		X:       5.7,
		Y:       5.7,
		Z:       3.5,
	}
}

func Float(v float64) *float64 { return &v }
func String(v string) *string  { return &v }

// SamplePipeline prices SampleRecord at exactly 2756.
// Only categorical weights contribute, so the sum is exact.
func SamplePipeline() *pipeline.Linear {
	return &pipeline.Linear{
		Name:      "diamonds-linear",
		Version:   "1",
		Intercept: 2000,
		Categorical: map[string]map[string]float64{
			domain.ColumnCut: {
				"Fair": -400, "Good": -150, "Very Good": 100, "Premium": 250, "Ideal": 356,
			},
			domain.ColumnColor: {
				"J": -500, "I": -300, "H": -100, "G": 0, "F": 120, "E": 250, "D": 400,
			},
			domain.ColumnClarity: {
				"I1": -900, "SI2": -400, "SI1": -200, "VS2": 0, "VS1": 150, "VVS2": 300, "VVS1": 450, "IF": 700,
			},
		},
	}
}
