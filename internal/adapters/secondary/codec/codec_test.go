package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamond-price-service/internal/adapters/secondary/pipeline"
	"diamond-price-service/internal/core/domain"
	"diamond-price-service/internal/testutil"
)

func allCodecs() []Codec {
	return []Codec{NewMsgpack(), NewJSON(), NewYAML()}
}

func TestCodecs_DecodeEncoded(t *testing.T) {
	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Encode(testutil.SamplePipeline())
			require.NoError(t, err)

			artifact, err := c.Decode(data)
			require.NoError(t, err)

			price, err := artifact.Predict(testutil.SampleRecord())
			require.NoError(t, err)
			assert.Equal(t, 2756.0, price)
		})
	}
}

func TestCodecs_RejectInvalidPipeline(t *testing.T) {
	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Encode(&pipeline.Linear{Name: "empty"})
			require.NoError(t, err)

			_, err = c.Decode(data)
			assert.ErrorIs(t, err, domain.ErrInvalidPipeline)
		})
	}
}

func TestMsgpack_RejectsJSON(t *testing.T) {
	data, err := NewJSON().Encode(testutil.SamplePipeline())
	require.NoError(t, err)

	_, err = NewMsgpack().Decode(data)
	assert.Error(t, err)
}

func TestJSON_RejectsMsgpack(t *testing.T) {
	data, err := NewMsgpack().Encode(testutil.SamplePipeline())
	require.NoError(t, err)

	_, err = NewJSON().Decode(data)
	assert.Error(t, err)
}

func TestJSON_RejectsUnknownFields(t *testing.T) {
	_, err := NewJSON().Decode([]byte(`{"intercept": 1, "numeric": {"carat": 2}, "n_estimators": 100}`))
	assert.Error(t, err)
}

func TestJSON_RejectsTrailingData(t *testing.T) {
	data, err := NewJSON().Encode(testutil.SamplePipeline())
	require.NoError(t, err)

	for name, tail := range map[string]string{
		"garbage":         "xyz",
		"second document": `{"intercept": 1}`,
		"stray brace":     "}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewJSON().Decode(append(append([]byte{}, data...), tail...))
			assert.Error(t, err)
		})
	}
}

func TestJSON_AcceptsTrailingWhitespace(t *testing.T) {
	data, err := NewJSON().Encode(testutil.SamplePipeline())
	require.NoError(t, err)

	_, err = NewJSON().Decode(append(data, "\n\n"...))
	assert.NoError(t, err)
}

func TestJSON_DecodesHandWrittenDocument(t *testing.T) {
	artifact, err := NewJSON().Decode([]byte(`{
		"name": "hand",
		"intercept": 100,
		"numeric": {"table": 10},
		"target": "identity"
	}`))
	require.NoError(t, err)

	price, err := artifact.Predict(testutil.SampleRecord())
	require.NoError(t, err)
	assert.Equal(t, 650.0, price)
}

func TestYAML_DecodesHandWrittenDocument(t *testing.T) {
	artifact, err := NewYAML().Decode([]byte(`
name: hand
intercept: 2000
categorical:
  color:
    E: 756
    J: 0
`))
	require.NoError(t, err)

	price, err := artifact.Predict(testutil.SampleRecord())
	require.NoError(t, err)
	assert.Equal(t, 2756.0, price)
}

func TestYAML_RejectsEmpty(t *testing.T) {
	_, err := NewYAML().Decode(nil)
	assert.Error(t, err)
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()

	codecs, err := r.Resolve([]string{" MsgPack", "json", "", "msgpack", "yaml"})
	require.NoError(t, err)

	names := make([]string, 0, len(codecs))
	for _, c := range codecs {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{NameMsgpack, NameJSON, NameYAML}, names)
}

func TestRegistry_ResolveDefaultOrder(t *testing.T) {
	codecs, err := NewRegistry().Resolve(DefaultOrder)
	require.NoError(t, err)
	require.Len(t, codecs, 2)
	assert.Equal(t, NameMsgpack, codecs[0].Name())
	assert.Equal(t, NameJSON, codecs[1].Name())
}

func TestRegistry_ResolveErrors(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve([]string{"msgpack", "pickle"})
	assert.ErrorIs(t, err, domain.ErrUnknownCodec)
	assert.Contains(t, err.Error(), `"pickle"`)

	_, err = r.Resolve([]string{" ", ""})
	assert.ErrorIs(t, err, domain.ErrNoCodecs)

	_, err = r.Resolve(nil)
	assert.ErrorIs(t, err, domain.ErrNoCodecs)
}
