package services

import (
	"context"
	"fmt"
	"math"
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"

	"diamond-price-service/internal/core/domain"
)

// PredictionService prices records with the artifact from a LoadResult.
// Calls are serialized: the service handles one prediction at a time.
type PredictionService struct {
	result domain.LoadResult
	mu     sync.Mutex
}

func NewPredictionService(result domain.LoadResult) *PredictionService {
	return &PredictionService{result: result}
}

// Status reports the load result that gates prediction.
func (s *PredictionService) Status() domain.LoadResult {
	return s.result
}

func (s *PredictionService) Predict(ctx context.Context, record domain.PredictionRecord) (domain.Prediction, error) {
	var artifact domain.Artifact
	switch r := s.result.(type) {
	case domain.Loaded:
		artifact = r.Artifact
	case domain.Failed:
		return domain.Prediction{}, r.Err()
	default:
		return domain.Prediction{}, domain.ErrArtifactNotLoaded
	}

	if err := ctx.Err(); err != nil {
		return domain.Prediction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	price, err := predict(artifact, record)
	if err != nil {
		log.WithError(err).Warn("prediction failed")
		return domain.Prediction{}, err
	}

	return domain.NewPrediction(price), nil
}

func predict(artifact domain.Artifact, record domain.PredictionRecord) (price float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &domain.DiagnosticError{
				Kind:    domain.ErrPredictionFailed,
				Message: fmt.Sprintf("Error making prediction: %v", r),
				Detail:  string(debug.Stack()),
			}
		}
	}()

	price, err = artifact.Predict(record)
	if err != nil {
		return 0, &domain.DiagnosticError{
			Kind:    domain.ErrPredictionFailed,
			Message: fmt.Sprintf("Error making prediction: %v", err),
			Detail:  fmt.Sprintf("%+v", err),
		}
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &domain.DiagnosticError{
			Kind:    domain.ErrPredictionFailed,
			Message: "Error making prediction: " + domain.ErrNonFinitePrice.Error(),
			Detail:  fmt.Sprintf("artifact returned %v", price),
		}
	}
	return price, nil
}
