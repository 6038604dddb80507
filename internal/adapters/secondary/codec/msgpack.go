package codec

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"diamond-price-service/internal/adapters/secondary/pipeline"
	"diamond-price-service/internal/core/domain"
)

const NameMsgpack = "msgpack"

// Msgpack is the primary artifact format.
type Msgpack struct{}

func NewMsgpack() *Msgpack {
	return &Msgpack{}
}

func (c *Msgpack) Name() string {
	return NameMsgpack
}

func (c *Msgpack) Decode(data []byte) (domain.Artifact, error) {
	var p pipeline.Linear

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode msgpack: %w", err)
	}

	return validated(&p)
}

func (c *Msgpack) Encode(p *pipeline.Linear) ([]byte, error) {
	data, err := msgpack.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode msgpack: %w", err)
	}
	return data, nil
}
