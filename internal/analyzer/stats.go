package analyzer

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// NoExtension is the bucket key for files without a name suffix.
const NoExtension = "NoExt"

// Item represents a single scanned file or directory.
type Item struct {
	// Path is the file or directory path.
	Path string `json:"path"`
	// Size is the size in bytes (recursive for directories).
	Size int64 `json:"size"`
	// IsDir indicates whether the item is a directory.
	IsDir bool `json:"is_dir"`
}

// Kind returns the report label for the item type.
func (i Item) Kind() string {
	if i.IsDir {
		return "Folder"
	}

	return "File"
}

// ExtTotal represents the accumulated size for one file extension.
type ExtTotal struct {
	// Ext is the lowercase extension, or NoExtension.
	Ext string `json:"ext"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
}

// Stats holds the aggregate results of one scan.
type Stats struct {
	// Items is the full surviving result list, sorted by size descending.
	Items []Item `json:"items"`
	// Top contains the N largest items (a prefix of Items).
	Top []Item `json:"top"`
	// ExtTotals lists per-extension byte totals, sorted descending.
	ExtTotals []ExtTotal `json:"ext_totals"`
	// Duplicates maps content digests to the paths sharing them.
	// Only groups with at least two members are kept.
	Duplicates map[string][]string `json:"duplicates,omitempty"`
	// FileCount is the number of surviving files.
	FileCount int64 `json:"file_count"`
	// DirCount is the number of surviving directories.
	DirCount int64 `json:"dir_count"`
	// TotalBytes is the cumulative size of all surviving files.
	TotalBytes int64 `json:"total_bytes"`
	// EstimatedBytes is the pre-scan byte estimate used for progress.
	// It ignores depth and min-size filters, so the accounted total
	// may end up below or above it.
	EstimatedBytes int64 `json:"estimated_bytes"`
	// TopN is the number of top results tracked.
	TopN int `json:"top_n"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a scan.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// TopN is the number of top results to track.
	TopN int
	// MaxDepth is the maximum traversal depth. Direct children of the
	// root are at depth 0. Negative means unbounded.
	MaxDepth int
	// IgnoreHidden skips entries whose name starts with a dot.
	IgnoreHidden bool
	// MinSize is the minimum item size in bytes; smaller items are
	// dropped from every aggregate.
	MinSize int64
	// DetectDuplicates enables content hashing and duplicate grouping.
	DetectDuplicates bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// CSVPath, when set, is where the tabular export is written.
	CSVPath string
	// JSONPath, when set, is where the structured export is written.
	JSONPath string
	// NoOpen suppresses revealing the largest item in the file browser.
	NoOpen bool
	// Debug indicates whether debug logging is enabled.
	Debug bool
}

// collector aggregates scan results. The scan loop is single-goroutine,
// so no locking is needed here; live progress counters live in tracker.
type collector struct {
	items      []Item
	extTotals  map[string]int64
	duplicates map[string][]string
	fileCount  int64
	dirCount   int64
	totalBytes int64
}

func newCollector() *collector {
	return &collector{
		extTotals:  make(map[string]int64),
		duplicates: make(map[string][]string),
	}
}

// add records a surviving item. Files are also bucketed by extension.
func (c *collector) add(item Item) {
	c.items = append(c.items, item)

	if item.IsDir {
		c.dirCount++

		return
	}

	c.fileCount++
	c.totalBytes += item.Size
	c.extTotals[extensionOf(item.Path)] += item.Size
}

// addDigest appends a file path to its content-digest group.
func (c *collector) addDigest(digest, path string) {
	c.duplicates[digest] = append(c.duplicates[digest], path)
}

// extensionOf returns the lowercase extension of path, or NoExtension.
func extensionOf(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return NoExtension
	}

	return ext
}

// finalize produces the final Stats: items sorted by size descending
// (stable, so enumeration order breaks ties), the top-N prefix,
// extension totals sorted descending, and duplicate groups trimmed to
// those with at least two members.
func (c *collector) finalize(topN int) *Stats {
	sort.SliceStable(c.items, func(i, j int) bool {
		return c.items[i].Size > c.items[j].Size
	})

	top := c.items
	if len(top) > topN {
		top = top[:topN]
	}

	extTotals := make([]ExtTotal, 0, len(c.extTotals))
	for ext, size := range c.extTotals {
		extTotals = append(extTotals, ExtTotal{Ext: ext, Size: size})
	}

	sort.Slice(extTotals, func(i, j int) bool {
		if extTotals[i].Size != extTotals[j].Size {
			return extTotals[i].Size > extTotals[j].Size
		}

		return extTotals[i].Ext < extTotals[j].Ext
	})

	duplicates := make(map[string][]string)

	for digest, paths := range c.duplicates {
		if len(paths) >= 2 {
			duplicates[digest] = paths
		}
	}

	return &Stats{
		Items:      c.items,
		Top:        top,
		ExtTotals:  extTotals,
		Duplicates: duplicates,
		FileCount:  c.fileCount,
		DirCount:   c.dirCount,
		TotalBytes: c.totalBytes,
		TopN:       topN,
	}
}
