package services

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"diamond-price-service/internal/core/domain"
)

// FormService binds raw UI values into prediction records.
// It enforces the widget constraints (slider ranges, selector options) and nothing more.
type FormService struct {
	schema domain.FormSchema
}

func NewFormService() *FormService {
	return &FormService{schema: domain.DiamondForm()}
}

func (s *FormService) Schema() domain.FormSchema {
	return s.schema
}

// Defaults returns the record the form shows before any interaction.
func (s *FormService) Defaults() domain.PredictionRecord {
	rec, _ := s.Bind(domain.FormValues{})
	return rec
}

func (s *FormService) Bind(values domain.FormValues) (domain.PredictionRecord, error) {
	var (
		rec domain.PredictionRecord
		err error
	)

	if rec.Carat, err = s.number(domain.ColumnCarat, values.Carat); err != nil {
		return domain.PredictionRecord{}, err
	}
	cut, err := s.option(domain.ColumnCut, values.Cut)
	if err != nil {
		return domain.PredictionRecord{}, err
	}
	color, err := s.option(domain.ColumnColor, values.Color)
	if err != nil {
		return domain.PredictionRecord{}, err
	}
	clarity, err := s.option(domain.ColumnClarity, values.Clarity)
	if err != nil {
		return domain.PredictionRecord{}, err
	}
	rec.Cut, rec.Color, rec.Clarity = domain.Cut(cut), domain.Color(color), domain.Clarity(clarity)

	if rec.Depth, err = s.number(domain.ColumnDepth, values.Depth); err != nil {
		return domain.PredictionRecord{}, err
	}
	if rec.Table, err = s.number(domain.ColumnTable, values.Table); err != nil {
		return domain.PredictionRecord{}, err
	}
	if rec.X, err = s.number(domain.ColumnX, values.X); err != nil {
		return domain.PredictionRecord{}, err
	}
	if rec.Y, err = s.number(domain.ColumnY, values.Y); err != nil {
		return domain.PredictionRecord{}, err
	}
	if rec.Z, err = s.number(domain.ColumnZ, values.Z); err != nil {
		return domain.PredictionRecord{}, err
	}

	return rec, nil
}

// Preview returns the record as a one-row table.
func (s *FormService) Preview(rec domain.PredictionRecord) (columns []string, rows [][]string) {
	return rec.Columns(), [][]string{rec.Row()}
}

func (s *FormService) number(key string, v *float64) (float64, error) {
	w, ok := s.schema.Widget(key)
	if !ok || w.Kind != domain.WidgetSlider {
		return 0, fmt.Errorf("%w: no slider for %q", domain.ErrInputConstructionFailed, key)
	}
	if v == nil {
		return w.Default.(float64), nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, fmt.Errorf("%w: %s must be a finite number", domain.ErrInputConstructionFailed, w.Label)
	}
	if *v < w.Min || *v > w.Max {
		return 0, fmt.Errorf("%w: %s must be between %g and %g, got %g",
			domain.ErrInputConstructionFailed, w.Label, w.Min, w.Max, *v)
	}
	return *v, nil
}

func (s *FormService) option(key string, v *string) (string, error) {
	w, ok := s.schema.Widget(key)
	if !ok || w.Kind != domain.WidgetSelect {
		return "", fmt.Errorf("%w: no selector for %q", domain.ErrInputConstructionFailed, key)
	}
	if v == nil {
		return w.Default.(string), nil
	}
	if !lo.Contains(w.Options, *v) {
		return "", fmt.Errorf("%w: %s must be one of %v, got %q",
			domain.ErrInputConstructionFailed, w.Label, w.Options, *v)
	}
	return *v, nil
}
