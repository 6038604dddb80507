package ports

import (
	"diamond-price-service/internal/core/domain"
)

// ArtifactCodec defines the contract for one artifact serialization format
type ArtifactCodec interface {
	// Name identifies the codec in config and logs (e.g. "msgpack")
	Name() string

	// Decode turns raw file bytes into a usable artifact.
	// A document that decodes but does not describe a valid artifact is an error.
	Decode(data []byte) (domain.Artifact, error)
}
