package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDiamondForm_WidgetOrderMatchesRecord(t *testing.T) {
	form := DiamondForm()

	keys := make([]string, 0, len(form.Widgets))
	for _, w := range form.Widgets {
		keys = append(keys, w.Key)
	}

	if diff := cmp.Diff(PredictionRecord{}.Columns(), keys); diff != "" {
		t.Errorf("widget keys mismatch (-want +got):\n%s", diff)
	}
}

func TestDiamondForm_Widgets(t *testing.T) {
	form := DiamondForm()

	assert.Equal(t, "Diamond Price Prediction App", form.Title)
	assert.Equal(t, "Predict Price", form.Action)

	want := map[string]Widget{
		ColumnCarat:   {Key: ColumnCarat, Label: "Carat", Kind: WidgetSlider, Min: 0.2, Max: 5.0, Default: 0.7},
		ColumnClarity: {Key: ColumnClarity, Label: "Clarity", Kind: WidgetSelect, Default: "I1", Options: Clarities},
		ColumnZ:       {Key: ColumnZ, Label: "Depth (mm)", Kind: WidgetSlider, Min: 0, Max: 7.0, Default: 3.5},
	}
	for key, w := range want {
		got, ok := form.Widget(key)
		assert.True(t, ok, key)
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("widget %s mismatch (-want +got):\n%s", key, diff)
		}
	}

	_, ok := form.Widget("price")
	assert.False(t, ok)
}

func TestFailed_Err(t *testing.T) {
	err := NewLoadFailure("pipeline.joblib", "detail").Err()

	assert.ErrorIs(t, err, ErrArtifactLoadFailed)
	assert.NotErrorIs(t, err, ErrArtifactMissing)
	assert.Equal(t, "Error loading model from pipeline.joblib", err.Error())
}
