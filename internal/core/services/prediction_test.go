package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"diamond-price-service/internal/core/domain"
	"diamond-price-service/internal/testutil"
)

func TestPredictionService_Predict(t *testing.T) {
	artifact := new(testutil.MockArtifact)
	record := testutil.SampleRecord()
	artifact.On("Predict", record).Return(2756.0, nil)

	svc := NewPredictionService(domain.Loaded{Path: "pipeline.joblib", Codec: "msgpack", Artifact: artifact})
	result, err := svc.Predict(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, 2756.0, result.Price)
	assert.Equal(t, "$2,756.00", result.Formatted)
	assert.Equal(t, "Predicted Diamond Price: $2,756.00", result.Message)
	artifact.AssertNumberOfCalls(t, "Predict", 1)
}

func TestPredictionService_MissingArtifactRefuses(t *testing.T) {
	svc := NewPredictionService(domain.NewMissing("pipeline.joblib"))

	_, err := svc.Predict(context.Background(), testutil.SampleRecord())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtifactMissing)
	assert.Equal(t, "Model file not found at pipeline.joblib. Please ensure it's uploaded.", err.Error())
}

func TestPredictionService_LoadFailureRefuses(t *testing.T) {
	svc := NewPredictionService(domain.NewLoadFailure("pipeline.joblib", "2 errors occurred"))

	_, err := svc.Predict(context.Background(), testutil.SampleRecord())

	assert.ErrorIs(t, err, domain.ErrArtifactLoadFailed)
	var diag *domain.DiagnosticError
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, "2 errors occurred", diag.Detail)
}

func TestPredictionService_NilStatus(t *testing.T) {
	svc := NewPredictionService(nil)

	_, err := svc.Predict(context.Background(), testutil.SampleRecord())

	assert.ErrorIs(t, err, domain.ErrArtifactNotLoaded)
}

func TestPredictionService_ArtifactError(t *testing.T) {
	artifact := new(testutil.MockArtifact)
	artifact.On("Predict", mock.Anything).Return(0.0, errors.New("columns are missing: {'table'}"))

	svc := NewPredictionService(domain.Loaded{Artifact: artifact})
	_, err := svc.Predict(context.Background(), testutil.SampleRecord())

	assert.ErrorIs(t, err, domain.ErrPredictionFailed)
	assert.Equal(t, "Error making prediction: columns are missing: {'table'}", err.Error())

	// The session survives; another attempt reaches the artifact again.
	_, err = svc.Predict(context.Background(), testutil.SampleRecord())
	assert.ErrorIs(t, err, domain.ErrPredictionFailed)
	artifact.AssertNumberOfCalls(t, "Predict", 2)
}

func TestPredictionService_ArtifactPanic(t *testing.T) {
	artifact := new(testutil.MockArtifact)
	artifact.On("Predict", mock.Anything).Panic("index out of range")

	svc := NewPredictionService(domain.Loaded{Artifact: artifact})

	var err error
	assert.NotPanics(t, func() {
		_, err = svc.Predict(context.Background(), testutil.SampleRecord())
	})

	assert.ErrorIs(t, err, domain.ErrPredictionFailed)
	var diag *domain.DiagnosticError
	require.ErrorAs(t, err, &diag)
	assert.Contains(t, diag.Message, "index out of range")
	assert.Contains(t, diag.Detail, "goroutine")
}

func TestPredictionService_NonFinitePrice(t *testing.T) {
	for _, price := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		artifact := new(testutil.MockArtifact)
		artifact.On("Predict", mock.Anything).Return(price, nil)

		svc := NewPredictionService(domain.Loaded{Artifact: artifact})
		_, err := svc.Predict(context.Background(), testutil.SampleRecord())

		assert.ErrorIs(t, err, domain.ErrPredictionFailed, "price %v", price)
	}
}

func TestPredictionService_CanceledContext(t *testing.T) {
	artifact := new(testutil.MockArtifact)
	svc := NewPredictionService(domain.Loaded{Artifact: artifact})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Predict(ctx, testutil.SampleRecord())

	assert.ErrorIs(t, err, context.Canceled)
	artifact.AssertNotCalled(t, "Predict", mock.Anything)
}
