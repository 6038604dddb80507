package dto

import (
	"context"
	"errors"

	"diamond-price-service/internal/core/domain"
)

// Error kinds exposed to clients.
const (
	KindArtifactMissing         = "artifact_missing"
	KindArtifactLoadFailed      = "artifact_load_failed"
	KindArtifactNotLoaded       = "artifact_not_loaded"
	KindInputConstructionFailed = "input_construction_failed"
	KindPredictionFailed        = "prediction_failed"
	KindInvalidRequest          = "invalid_request"
	KindCanceled                = "canceled"
	KindTimeout                 = "timeout"
	KindInternal                = "internal"
)

func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrArtifactMissing):
		return KindArtifactMissing
	case errors.Is(err, domain.ErrArtifactLoadFailed):
		return KindArtifactLoadFailed
	case errors.Is(err, domain.ErrArtifactNotLoaded):
		return KindArtifactNotLoaded
	case errors.Is(err, domain.ErrInputConstructionFailed):
		return KindInputConstructionFailed
	case errors.Is(err, domain.ErrPredictionFailed):
		return KindPredictionFailed
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	default:
		return KindInternal
	}
}

// ToErrorResponse keeps the diagnostic detail when the error carries one.
func ToErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error(), Kind: ErrorKind(err)}

	var diag *domain.DiagnosticError
	if errors.As(err, &diag) {
		resp.Detail = diag.Detail
	}
	return resp
}
