package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bhuvaneshkumar1/Size-analyzer/internal/analyzer"
	"github.com/Bhuvaneshkumar1/Size-analyzer/internal/browse"
	"github.com/Bhuvaneshkumar1/Size-analyzer/internal/report"
)

// logic runs the scan and hands the results to the reporting
// collaborators: console printer, CSV/JSON exporters, and the
// reveal-in-file-browser step.
func logic(cmd *cobra.Command, options analyzer.Options) error {
	logger := zap.NewNop()

	if options.Debug {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}

		logger = dev
	}
	defer logger.Sync() //nolint:errcheck // Best-effort flush on exit

	enableProgress := !options.Debug && isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook analyzer.ProgressFunc

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(done, total int64, current string) {
			msg := fmt.Sprintf("Scanning… %s / %s  %s",
				humanize.IBytes(uint64(max(done, 0))),  //nolint:gosec // Clamped non-negative
				humanize.IBytes(uint64(max(total, 0))), //nolint:gosec // Clamped non-negative
				current)
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	stats, err := analyzer.Run(cmd.Context(), options, logger, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if err := printReport(stats, out); err != nil {
		return err
	}

	if options.CSVPath != "" {
		if err := report.SaveCSV(options.CSVPath, stats.Items); err != nil {
			return err
		}

		fmt.Fprintf(out, "CSV report saved: %s\n", options.CSVPath)
	}

	if options.JSONPath != "" {
		if err := report.SaveJSON(options.JSONPath, stats.Items); err != nil {
			return err
		}

		fmt.Fprintf(out, "JSON report saved: %s\n", options.JSONPath)
	}

	if !options.NoOpen && len(stats.Top) > 0 {
		largest := stats.Top[0].Path

		fmt.Fprintf(out, "\nOpening largest item: %s\n", largest)

		if err := browse.Reveal(largest); err != nil {
			logger.Warn("failed to open item", zap.String("path", largest), zap.Error(err))
			fmt.Fprintf(os.Stderr, "warning: failed to open %s: %v\n", largest, err)
		}
	}

	return nil
}
