package domain

import "fmt"

// Artifact is a trained pipeline able to price one record.
// Feature encoding and scaling happen inside the artifact.
type Artifact interface {
	Predict(record PredictionRecord) (float64, error)
}

// LoadResult is the outcome of loading an artifact: either Loaded or Failed.
type LoadResult interface {
	loadResult()
}

// Loaded carries a usable artifact and the codec that decoded it.
type Loaded struct {
	Path     string
	Codec    string
	Artifact Artifact
}

// Failed explains why no artifact is available.
// Kind is ErrArtifactMissing or ErrArtifactLoadFailed.
type Failed struct {
	Path    string
	Kind    error
	Message string
	Detail  string
}

func (Loaded) loadResult() {}
func (Failed) loadResult() {}

// Err converts the failure into an error matching Kind with errors.Is.
func (f Failed) Err() error {
	return &DiagnosticError{Kind: f.Kind, Message: f.Message, Detail: f.Detail}
}

// NewMissing builds the result for an absent artifact file.
func NewMissing(path string) Failed {
	return Failed{
		Path:    path,
		Kind:    ErrArtifactMissing,
		Message: fmt.Sprintf("Model file not found at %s. Please ensure it's uploaded.", path),
	}
}

// NewLoadFailure builds the result for an artifact no codec could read.
func NewLoadFailure(path string, detail string) Failed {
	return Failed{
		Path:    path,
		Kind:    ErrArtifactLoadFailed,
		Message: fmt.Sprintf("Error loading model from %s", path),
		Detail:  detail,
	}
}
