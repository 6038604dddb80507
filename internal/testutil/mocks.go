package testutil

import (
	"os"
	"sync/atomic"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"

	"diamond-price-service/internal/core/domain"
)

// MockArtifactCodec is a mock of ports.ArtifactCodec. Name is fixed and not recorded.
type MockArtifactCodec struct {
	mock.Mock
	CodecName string
}

func NewMockArtifactCodec(name string) *MockArtifactCodec {
	return &MockArtifactCodec{CodecName: name}
}

func (m *MockArtifactCodec) Name() string {
	return m.CodecName
}

func (m *MockArtifactCodec) Decode(data []byte) (domain.Artifact, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Artifact), args.Error(1)
}

// MockArtifact is a mock of domain.Artifact.
type MockArtifact struct {
	mock.Mock
}

func (m *MockArtifact) Predict(record domain.PredictionRecord) (float64, error) {
	args := m.Called(record)
	return args.Get(0).(float64), args.Error(1)
}

// CountingFs wraps an afero.Fs and counts the calls that reach the filesystem.
type CountingFs struct {
	afero.Fs
	opens atomic.Int64
	stats atomic.Int64
}

func NewCountingFs(fs afero.Fs) *CountingFs {
	return &CountingFs{Fs: fs}
}

func (c *CountingFs) Open(name string) (afero.File, error) {
	c.opens.Add(1)
	return c.Fs.Open(name)
}

func (c *CountingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	c.opens.Add(1)
	return c.Fs.OpenFile(name, flag, perm)
}

func (c *CountingFs) Stat(name string) (os.FileInfo, error) {
	c.stats.Add(1)
	return c.Fs.Stat(name)
}

func (c *CountingFs) Opens() int64 { return c.opens.Load() }
func (c *CountingFs) Stats() int64 { return c.stats.Load() }

// Reads is the total number of filesystem touches.
func (c *CountingFs) Reads() int64 { return c.Opens() + c.Stats() }
