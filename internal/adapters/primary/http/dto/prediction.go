package dto

import (
	"diamond-price-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// PredictRequest carries the form values. Omitted fields take the widget default.
type PredictRequest struct {
	Carat   *float64 `json:"carat"`
	Cut     *string  `json:"cut"`
	Color   *string  `json:"color"`
	Clarity *string  `json:"clarity"`
	Depth   *float64 `json:"depth"`
	Table   *float64 `json:"table"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Z       *float64 `json:"z"`
}

func (r *PredictRequest) ToFormValues() domain.FormValues {
	return domain.FormValues{
		Carat:   r.Carat,
		Cut:     r.Cut,
		Color:   r.Color,
		Clarity: r.Clarity,
		Depth:   r.Depth,
		Table:   r.Table,
		X:       r.X,
		Y:       r.Y,
		Z:       r.Z,
	}
}

// ============================================================================
// Response DTOs
// ============================================================================

const (
	ArtifactReady       = "ready"
	ArtifactUnavailable = "unavailable"
)

// ArtifactStatusResponse tells the UI whether the predict action may be offered
type ArtifactStatusResponse struct {
	Status  string `json:"status"`
	Path    string `json:"path"`
	Codec   string `json:"codec,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Warning string `json:"warning,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

type FormResponse struct {
	domain.FormSchema
	Artifact ArtifactStatusResponse `json:"artifact"`
}

type PreviewResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type PredictionResponse struct {
	domain.Prediction
	Input PreviewResponse `json:"input"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

// ============================================================================
// Mappers
// ============================================================================

func ToArtifactStatus(result domain.LoadResult) ArtifactStatusResponse {
	switch r := result.(type) {
	case domain.Loaded:
		return ArtifactStatusResponse{Status: ArtifactReady, Path: r.Path, Codec: r.Codec}
	case domain.Failed:
		return ArtifactStatusResponse{
			Status:  ArtifactUnavailable,
			Path:    r.Path,
			Kind:    ErrorKind(r.Kind),
			Warning: r.Message,
			Detail:  r.Detail,
		}
	default:
		return ArtifactStatusResponse{Status: ArtifactUnavailable, Kind: ErrorKind(domain.ErrArtifactNotLoaded)}
	}
}

func ToPreviewResponse(columns []string, rows [][]string) PreviewResponse {
	return PreviewResponse{Columns: columns, Rows: rows}
}
