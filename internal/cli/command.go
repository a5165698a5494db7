// Package cli provides the command-line interface for the analyzer.
package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Bhuvaneshkumar1/Size-analyzer/internal/analyzer"
)

// New builds the root command with the given version.
func New(version string) *cobra.Command {
	var (
		options    analyzer.Options
		minSizeStr string
	)

	cmd := &cobra.Command{
		Use:   "size-analyzer [flags] [path]",
		Short: "Analyze disk usage of a directory tree",
		Long: heredoc.Doc(`
			size-analyzer scans a directory tree, ranks the largest files and
			folders, aggregates sizes by file extension, and optionally finds
			duplicate files by content hash.

			Results are printed to the console and can additionally be exported
			to CSV and JSON. After the report, the largest item is revealed in
			the platform file browser (disable with --no-open).

			Depth is counted from the scan root: entries directly inside the
			root are at depth 0. With --max-depth, folders at the boundary are
			still listed but anything deeper contributes nothing.
		`),
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				options.Path = args[0]
			} else {
				options.Path = "."
			}

			if options.TopN <= 0 {
				return errors.New("top must be positive")
			}

			if options.MaxDepth < -1 {
				return errors.New("max-depth cannot be below -1")
			}

			// Parse minSize string to bytes
			if minSizeStr != "" {
				size, err := humanize.ParseBytes(minSizeStr)
				if err != nil {
					return fmt.Errorf("invalid min-size: %w", err)
				}

				options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
			}

			return logic(cmd, options)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.IntVarP(&options.TopN, "top", "t", analyzer.DefaultTopN, "Number of top items to display")
	flags.IntVarP(&options.MaxDepth, "max-depth", "d", -1, "Maximum traversal depth (-1=unlimited, 0=root entries only)")
	flags.BoolVar(&options.IgnoreHidden, "ignore-hidden", false, "Ignore hidden files and folders")
	flags.StringVar(&minSizeStr, "min-size", "0B", "Minimum item size to consider (e.g., 1KB)")
	flags.BoolVar(&options.DetectDuplicates, "detect-duplicates", false, "Detect duplicate files by content hash")
	flags.StringVar(&options.CSVPath, "export-csv", "", "Export results to CSV file")
	flags.StringVar(&options.JSONPath, "export-json", "", "Export results to JSON file")
	flags.BoolVar(&options.NoOpen, "no-open", false, "Do not open the largest item in the file browser")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug logging")

	return cmd
}
