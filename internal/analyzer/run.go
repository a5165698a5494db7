package analyzer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// DefaultTopN is the number of top results tracked when unset.
const DefaultTopN = 10

// estimateBytes walks the whole tree once to produce the progress-bar
// denominator: the sum of regular-file sizes under root, applying only
// the hidden-entry filter. The main scan applies depth and min-size
// filters on top, so the real accounted total may differ from this
// estimate. Symlinks are not followed and unreadable entries are
// skipped.
func estimateBytes(root string, ignoreHidden bool, log *zap.Logger) int64 {
	var total atomic.Int64

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip errors
		}

		if ignoreHidden && path != root && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Estimate tolerates vanished files
		}

		total.Add(info.Size())

		return nil
	})
	if walkErr != nil {
		log.Debug("byte estimate incomplete", zap.Error(walkErr))
	}

	return total.Load()
}

// Run performs the scan and returns aggregated results.
//
// Phase 1 estimates the total bytes under opt.Path for progress
// reporting. Phase 2 enumerates every item within the depth limit,
// sizes it, drops items below opt.MinSize, buckets file sizes by
// extension, and hashes file contents when duplicate detection is
// enabled. Phase 3 ranks items by size descending (stable, enumeration
// order breaks ties), truncates to opt.TopN, and filters duplicate
// groups to those with at least two members.
//
// Per-item I/O failures are recoverable: the affected item counts as
// zero size or is excluded from hashing. Only an invalid root path
// aborts the run. Progress updates are sent to progressHook if
// provided.
func Run(ctx context.Context, opt Options, log *zap.Logger, progressHook ProgressFunc) (*Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	// validate path exists and is a directory
	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	if opt.TopN <= 0 {
		opt.TopN = DefaultTopN
	}

	start := time.Now()

	log.Info("estimating total bytes", zap.String("path", opt.Path))

	totalBytes := estimateBytes(opt.Path, opt.IgnoreHidden, log)

	log.Info("starting scan",
		zap.String("path", opt.Path),
		zap.Int64("estimated_bytes", totalBytes),
		zap.Int("max_depth", opt.MaxDepth),
		zap.Bool("detect_duplicates", opt.DetectDuplicates))

	progress := newTracker(totalBytes)

	// Child context ensures progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, progress, progressHook, opt.ProgressInterval)

	coll := newCollector()

	for item := range enumerate(opt.Path, opt.MaxDepth, opt.IgnoreHidden, log) {
		size := itemSize(item.path, item.depth, opt.MaxDepth, opt.IgnoreHidden, progress)
		if size < opt.MinSize {
			continue
		}

		coll.add(Item{Path: item.path, Size: size, IsDir: item.isDir})

		if item.isDir || !opt.DetectDuplicates {
			continue
		}

		if digest, ok := fileDigest(item.path); ok {
			coll.addDigest(digest, item.path)
		} else {
			log.Debug("skipping unreadable file for hashing", zap.String("path", item.path))
		}
	}

	stats := coll.finalize(opt.TopN)
	stats.EstimatedBytes = totalBytes
	stats.Elapsed = time.Since(start)

	log.Info("scan completed",
		zap.Duration("elapsed", stats.Elapsed),
		zap.Int64("files", stats.FileCount),
		zap.Int64("dirs", stats.DirCount),
		zap.Int64("total_bytes", stats.TotalBytes))

	return stats, nil
}
