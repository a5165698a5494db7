package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/Bhuvaneshkumar1/Size-analyzer/internal/analyzer"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	sizeUnit = 1024.0
)

// humanSize converts bytes to a human-readable string using 1024-based
// units with two-decimal precision.
func humanSize(size int64) string {
	value := float64(size)

	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if value < sizeUnit {
			return fmt.Sprintf("%.2f %s", value, unit)
		}

		value /= sizeUnit
	}

	return fmt.Sprintf("%.2f PB", value)
}

// printReport outputs the scan results in human-readable form: the
// ranked top-N list, the extension breakdown, duplicate groups when
// present, and a summary.
func printReport(stats *analyzer.Stats, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "Top %d largest items:\t\t\n", stats.TopN)

	for i, item := range stats.Top {
		fmt.Fprintf(w, "  %d. [%s]\t%s\t%s\n", i+1, item.Kind(), item.Path, humanSize(item.Size))
	}

	fmt.Fprintln(w, "\nFile type breakdown:\t\t")

	for _, ext := range stats.ExtTotals {
		pct := 0.0
		if stats.TotalBytes > 0 {
			pct = 100.0 * float64(ext.Size) / float64(stats.TotalBytes)
		}

		fmt.Fprintf(w, "  %s:\t%s\t(%.1f%%)\n", ext.Ext, humanSize(ext.Size), pct)
	}

	if len(stats.Duplicates) > 0 {
		fmt.Fprintln(w, "\nDuplicate files found:\t\t")

		for digest, paths := range stats.Duplicates {
			fmt.Fprintf(w, "  Hash %s:\t\t\n", digest)

			for _, path := range paths {
				fmt.Fprintf(w, "    %s\t\t\n", path)
			}
		}
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "  Total files:\t%d\t\n", stats.FileCount)
	fmt.Fprintf(w, "  Total folders:\t%d\t\n", stats.DirCount)
	fmt.Fprintf(w, "  Total size:\t%s\t(%d bytes)\n", humanSize(stats.TotalBytes), stats.TotalBytes)
	fmt.Fprintf(w, "  Estimated:\t%s\t\n", humanize.IBytes(uint64(max(stats.EstimatedBytes, 0)))) //nolint:gosec // Clamped non-negative
	fmt.Fprintf(w, "  Elapsed:\t%v\t\n", stats.Elapsed)

	return w.Flush()
}
