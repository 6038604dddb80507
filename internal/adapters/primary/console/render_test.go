package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"diamond-price-service/internal/core/domain"
)

func TestRenderer_Messages(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, false)

	r.Title(domain.DiamondForm())
	r.Success("Predicted Diamond Price: $2,756.00")
	r.Warning("careful")
	r.Error("broken", "stack here")

	assert.Equal(t, "Diamond Price Prediction App\n"+
		"Enter the diamond characteristics to predict its price.\n"+
		"Predicted Diamond Price: $2,756.00\n"+
		"careful\n"+
		"broken\n"+
		"stack here\n", out.String())
}

func TestRenderer_Failure(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, false)

	r.Failure(&domain.DiagnosticError{Kind: domain.ErrPredictionFailed, Message: "Error making prediction: boom", Detail: "trace"})
	r.Failure(errors.New("plain"))

	assert.Equal(t, "Error making prediction: boom\ntrace\nplain\n", out.String())
}

func TestRenderer_Status(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, false)

	r.Status(domain.Loaded{Path: "pipeline.joblib", Codec: "json"})
	r.Status(domain.NewMissing("pipeline.joblib"))
	r.Status(domain.NewLoadFailure("pipeline.joblib", "1 error occurred"))

	assert.Equal(t, "Artifact pipeline.joblib loaded with the json codec\n"+
		"Model file not found at pipeline.joblib. Please ensure it's uploaded.\n"+
		"Error loading model from pipeline.joblib\n"+
		"1 error occurred\n", out.String())
}

func TestRenderer_Table(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, false)

	rec := domain.PredictionRecord{Carat: 0.7, Cut: domain.CutIdeal, Color: domain.ColorE, Clarity: domain.ClarityVS1, Depth: 61.5, Table: 55, X: 5.7, Y: 5.7, Z: 3.5}
	r.Table(rec.Columns(), [][]string{rec.Row()})

	s := out.String()
	for _, want := range []string{"CARAT", "CLARITY", "0.7", "Ideal", "VS1", "61.5"} {
		assert.Contains(t, s, want)
	}
}
