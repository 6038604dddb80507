package codec

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"diamond-price-service/internal/adapters/secondary/pipeline"
	"diamond-price-service/internal/core/domain"
)

const NameYAML = "yaml"

// YAML is an opt-in format for hand-written pipelines.
type YAML struct{}

func NewYAML() *YAML {
	return &YAML{}
}

func (c *YAML) Name() string {
	return NameYAML
}

func (c *YAML) Decode(data []byte) (domain.Artifact, error) {
	var p pipeline.Linear

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	return validated(&p)
}

func (c *YAML) Encode(p *pipeline.Linear) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}
