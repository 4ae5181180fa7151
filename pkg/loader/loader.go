package loader

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelier-tools/vitrine/pkg/catalog"
	"github.com/atelier-tools/vitrine/pkg/classify"
	"github.com/atelier-tools/vitrine/pkg/config"
	"github.com/atelier-tools/vitrine/pkg/filesystem"
	"github.com/atelier-tools/vitrine/pkg/logging"
)

// treeFuture memoizes one scan: the first caller runs it, every later
// caller attaches to the stored result.
type treeFuture struct {
	once sync.Once
	tree *catalog.Collection
	err  error
}

// Loader scans a source root into an entity tree.
type Loader struct {
	fs       filesystem.FS
	classify *classify.Classifier
	cfg      *config.Config
	logger   zerolog.Logger

	mu  sync.Mutex
	fut *treeFuture
}

// New creates a loader over the configured source root.
func New(fsys filesystem.FS, cls *classify.Classifier, cfg *config.Config) *Loader {
	return &Loader{
		fs:       fsys,
		classify: cls,
		cfg:      cfg,
		logger:   logging.GetLogger("loader"),
		fut:      &treeFuture{},
	}
}

// Tree returns the entity tree, scanning the source root on first use.
// Concurrent callers share a single scan; a failed scan is memoized the
// same way until Reload.
func (l *Loader) Tree(ctx context.Context) (*catalog.Collection, error) {
	l.mu.Lock()
	fut := l.fut
	l.mu.Unlock()

	fut.once.Do(func() {
		start := time.Now()
		fut.tree, fut.err = l.scan(ctx)
		if fut.err == nil {
			l.logger.Info().
				Str("root", l.cfg.Source.Path).
				Int("components", len(fut.tree.Flatten())).
				Msg("Source tree loaded")
			logging.LogDuration(l.logger, start, "source tree scan")
		}
	})
	return fut.tree, fut.err
}

// Reload discards the memoized tree. The next Tree call scans again.
func (l *Loader) Reload() {
	l.mu.Lock()
	l.fut = &treeFuture{}
	l.mu.Unlock()
	l.logger.Debug().Msg("Tree memo discarded")
}
