package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"diamond-price-service/internal/adapters/secondary/pipeline"
	"diamond-price-service/internal/core/domain"
)

const NameJSON = "json"

// JSON is the fallback artifact format.
type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

func (c *JSON) Name() string {
	return NameJSON
}

func (c *JSON) Decode(data []byte) (domain.Artifact, error) {
	var p pipeline.Linear

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: trailing data after pipeline document")
	}

	return validated(&p)
}

func (c *JSON) Encode(p *pipeline.Linear) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}
