package codec

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"diamond-price-service/internal/adapters/secondary/pipeline"
	"diamond-price-service/internal/core/domain"
	"diamond-price-service/internal/core/ports/output"
)

// DefaultOrder is tried when no codec order is configured: primary, then fallback.
var DefaultOrder = []string{NameMsgpack, NameJSON}

// Codec is an ArtifactCodec that can also write pipelines, used for fixtures and tooling.
type Codec interface {
	ports.ArtifactCodec
	Encode(p *pipeline.Linear) ([]byte, error)
}

type Registry struct {
	codecs map[string]Codec
}

// NewRegistry knows every built-in codec.
func NewRegistry() *Registry {
	r := &Registry{codecs: make(map[string]Codec)}
	for _, c := range []Codec{NewMsgpack(), NewJSON(), NewYAML()} {
		r.codecs[c.Name()] = c
	}
	return r
}

func (r *Registry) Names() []string {
	return []string{NameMsgpack, NameJSON, NameYAML}
}

func (r *Registry) Get(name string) (Codec, error) {
	c, ok := r.codecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", domain.ErrUnknownCodec, name, strings.Join(r.Names(), ", "))
	}
	return c, nil
}

// Resolve maps an ordered list of names to codecs. Blank entries and duplicates are dropped.
func (r *Registry) Resolve(names []string) ([]ports.ArtifactCodec, error) {
	names = lo.Uniq(lo.Compact(lo.Map(names, func(n string, _ int) string {
		return strings.ToLower(strings.TrimSpace(n))
	})))
	if len(names) == 0 {
		return nil, domain.ErrNoCodecs
	}

	out := make([]ports.ArtifactCodec, 0, len(names))
	for _, name := range names {
		c, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func validated(p *pipeline.Linear) (domain.Artifact, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
