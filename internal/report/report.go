// Package report writes scan results as CSV and JSON files.
//
// Both exports cover the full surviving result list, not just the
// top-N ranking, and describe each item identically: path, size in
// bytes, and a Folder/File type label.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Bhuvaneshkumar1/Size-analyzer/internal/analyzer"
)

// Record is one exported result row.
type Record struct {
	// Path is the item path.
	Path string `json:"path"`
	// Size is the item size in bytes.
	Size int64 `json:"size"`
	// Type is "Folder" or "File".
	Type string `json:"type"`
}

// Records converts items to export records, preserving order.
func Records(items []analyzer.Item) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, Record{
			Path: item.Path,
			Size: item.Size,
			Type: item.Kind(),
		})
	}

	return records
}

// WriteCSV writes items as CSV with a header row.
func WriteCSV(writer io.Writer, items []analyzer.Item) error {
	w := csv.NewWriter(writer)

	if err := w.Write([]string{"Path", "Size(Bytes)", "Type"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, item := range items {
		row := []string{item.Path, strconv.FormatInt(item.Size, 10), item.Kind()}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	return nil
}

// WriteJSON writes items as an indented JSON array of records.
func WriteJSON(writer io.Writer, items []analyzer.Item) error {
	data, err := json.MarshalIndent(Records(items), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// SaveCSV writes the CSV export to path.
func SaveCSV(path string, items []analyzer.Item) error {
	return save(path, items, WriteCSV)
}

// SaveJSON writes the JSON export to path.
func SaveJSON(path string, items []analyzer.Item) error {
	return save(path, items, WriteJSON)
}

func save(path string, items []analyzer.Item, write func(io.Writer, []analyzer.Item) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %q: %w", path, err)
	}

	if err := write(file, items); err != nil {
		file.Close()

		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing report %q: %w", path, err)
	}

	return nil
}
