package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"sync"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"

	"diamond-price-service/internal/core/domain"
	"diamond-price-service/internal/core/ports/output"
)

// ArtifactLoader reads an artifact file and decodes it with the first codec that accepts it.
//
// Results are memoized per path for the lifetime of the loader, including failures:
// a second Load of the same path never touches the filesystem again. Construct one
// loader per process and hand its results to the services that need them.
type ArtifactLoader struct {
	fs     afero.Fs
	codecs []ports.ArtifactCodec

	mu    sync.RWMutex
	cache map[string]domain.LoadResult
	group singleflight.Group
}

func NewArtifactLoader(fs afero.Fs, codecs ...ports.ArtifactCodec) *ArtifactLoader {
	return &ArtifactLoader{
		fs:     fs,
		codecs: codecs,
		cache:  make(map[string]domain.LoadResult),
	}
}

// Load returns the cached result for path, loading it on first use. It never panics.
func (l *ArtifactLoader) Load(path string) domain.LoadResult {
	key := filepath.Clean(path)

	if result, ok := l.cached(key); ok {
		return result
	}

	v, _, _ := l.group.Do(key, func() (interface{}, error) {
		if result, ok := l.cached(key); ok {
			return result, nil
		}
		result := l.load(path)

		l.mu.Lock()
		l.cache[key] = result
		l.mu.Unlock()
		return result, nil
	})

	return v.(domain.LoadResult)
}

func (l *ArtifactLoader) cached(key string) (domain.LoadResult, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result, ok := l.cache[key]
	return result, ok
}

func (l *ArtifactLoader) load(path string) domain.LoadResult {
	logger := log.WithField("path", path)

	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		logger.WithError(err).Error("stat artifact failed")
		return domain.NewLoadFailure(path, fmt.Sprintf("stat artifact: %v", err))
	}
	if !exists {
		logger.Warn("artifact file not found")
		return domain.NewMissing(path)
	}

	isDir, err := afero.IsDir(l.fs, path)
	if err == nil && isDir {
		logger.Error("artifact path is a directory")
		return domain.NewLoadFailure(path, "artifact path is a directory")
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		logger.WithError(err).Error("read artifact failed")
		return domain.NewLoadFailure(path, fmt.Sprintf("read artifact: %v", err))
	}

	if len(l.codecs) == 0 {
		return domain.NewLoadFailure(path, domain.ErrNoCodecs.Error())
	}

	var failures *multierror.Error
	for i, codec := range l.codecs {
		entry := logger.WithFields(log.Fields{
			"codec":   codec.Name(),
			"attempt": i + 1,
		})

		artifact, err := decode(codec, data)
		if err == nil {
			entry.Info("artifact loaded")
			return domain.Loaded{Path: path, Codec: codec.Name(), Artifact: artifact}
		}

		entry.WithError(err).Warn("artifact codec failed")
		failures = multierror.Append(failures, fmt.Errorf("%s codec: %w", codec.Name(), err))
	}

	logger.WithField("codecs", len(l.codecs)).Error("artifact could not be decoded")
	return domain.NewLoadFailure(path, failures.Error())
}

// decode runs one codec, turning panics and nil artifacts into errors.
func decode(codec ports.ArtifactCodec, data []byte) (artifact domain.Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			artifact = nil
			err = fmt.Errorf("%w: %v\n%s", domain.ErrCodecPanicked, r, debug.Stack())
		}
	}()

	artifact, err = codec.Decode(data)
	if err == nil && artifact == nil {
		err = errors.New("codec returned no artifact")
	}
	return artifact, err
}
