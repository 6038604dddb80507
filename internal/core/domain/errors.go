package domain

import "errors"

// ============================================================================
// Artifact Errors
// ============================================================================

var (
	ErrArtifactMissing    = errors.New("artifact file not found")
	ErrArtifactLoadFailed = errors.New("artifact could not be loaded by any codec")
	ErrArtifactNotLoaded  = errors.New("artifact is not loaded")
)

// Codec errors
var (
	ErrUnknownCodec     = errors.New("unknown artifact codec")
	ErrNoCodecs         = errors.New("at least one artifact codec is required")
	ErrCodecPanicked    = errors.New("artifact codec panicked")
	ErrInvalidPipeline  = errors.New("invalid pipeline document")
	ErrUnsupportedModel = errors.New("unsupported pipeline target transform")
)

// ============================================================================
// Prediction Errors
// ============================================================================

var (
	ErrInputConstructionFailed = errors.New("input construction failed")
	ErrPredictionFailed        = errors.New("prediction failed")
)

// Schema mismatch errors
var (
	ErrUnknownCategory = errors.New("category level not known to the pipeline")
	ErrUnknownFeature  = errors.New("feature not present in the prediction record")
	ErrNonFinitePrice  = errors.New("pipeline produced a non-finite price")
)
