package scan

import (
	"context"
	"os"

	"github.com/michaelscutari/sls/internal/entry"
	"github.com/michaelscutari/sls/internal/filter"
	"github.com/michaelscutari/sls/internal/pathutil"
	"go.uber.org/zap"
)

// Stats counts what a walk saw.
type Stats struct {
	Visited int64 // entries whose metadata was read
	Matched int64 // entries accepted by the filter
	Skipped int64 // entries whose metadata could not be read
	DirErrs int64 // directories that could not be listed
}

// Walker performs a sequential depth-first walk and collects the entries
// accepted by a filter.Config.
type Walker struct {
	filter *filter.Config
	logger *zap.Logger
	stats  Stats
}

// NewWalker creates a walker. A nil logger discards diagnostics.
func NewWalker(cfg *filter.Config, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		filter: cfg,
		logger: logger,
	}
}

// Walk visits root and its descendants in pre-order, children in name
// order, and returns the accepted records in visit order.
//
// Entries whose metadata cannot be read are skipped, as are the children
// of directories that cannot be listed. Symlinks below the root are not
// followed. The only error returned is ctx.Err().
func (w *Walker) Walk(ctx context.Context, root string) ([]entry.Record, error) {
	w.stats = Stats{}
	records := make([]entry.Record, 0)

	root = pathutil.Root(root)
	info, err := os.Stat(root)
	if err != nil {
		w.stats.Skipped++
		w.logger.Warn("Error accessing path", zap.String("path", root), zap.Error(err))
		return records, nil
	}

	records, err = w.visit(ctx, root, 0, info, records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Stats returns the counters of the most recent walk.
func (w *Walker) Stats() Stats {
	return w.stats
}

func (w *Walker) visit(ctx context.Context, path string, depth int, info os.FileInfo, records []entry.Record) ([]entry.Record, error) {
	if err := ctx.Err(); err != nil {
		return records, err
	}

	w.stats.Visited++
	rec := entry.NewRecord(path, depth, info)
	if w.filter.Match(rec) {
		w.stats.Matched++
		records = append(records, rec)
	}

	if !info.IsDir() || !w.filter.WithinDepth(depth+1) {
		return records, nil
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		w.stats.DirErrs++
		w.logger.Warn("Error reading directory", zap.String("path", path), zap.Error(err))
		// ReadDir may return the entries it read before failing.
		if len(dirEntries) == 0 {
			return records, nil
		}
	}

	for _, de := range dirEntries {
		childPath := pathutil.Join(path, de.Name())

		// Always use Lstat to avoid following symlinks
		childInfo, err := os.Lstat(childPath)
		if err != nil {
			w.stats.Skipped++
			w.logger.Warn("Error accessing path", zap.String("path", childPath), zap.Error(err))
			continue
		}

		records, err = w.visit(ctx, childPath, depth+1, childInfo, records)
		if err != nil {
			return records, err
		}
	}

	return records, nil
}
