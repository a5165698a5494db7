package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuvaneshkumar1/Size-analyzer/internal/analyzer"
)

var sampleItems = []analyzer.Item{
	{Path: "/scan/sub", Size: 300, IsDir: true},
	{Path: "/scan/a.txt", Size: 200},
	{Path: "/scan/b.log", Size: 100},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, sampleItems))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Path", "Size(Bytes)", "Type"},
		{"/scan/sub", "300", "Folder"},
		{"/scan/a.txt", "200", "File"},
		{"/scan/b.log", "100", "File"},
	}, rows)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, sampleItems))

	var records []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))

	assert.Equal(t, []Record{
		{Path: "/scan/sub", Size: 300, Type: "Folder"},
		{Path: "/scan/a.txt", Size: 200, Type: "File"},
		{Path: "/scan/b.log", Size: 100, Type: "File"},
	}, records)
}

// Every row in the CSV export must appear in the JSON export with the
// same size and type, and vice versa.
func TestExports_RoundTrip(t *testing.T) {
	var csvBuf, jsonBuf bytes.Buffer

	require.NoError(t, WriteCSV(&csvBuf, sampleItems))
	require.NoError(t, WriteJSON(&jsonBuf, sampleItems))

	rows, err := csv.NewReader(&csvBuf).ReadAll()
	require.NoError(t, err)

	fromCSV := make([]Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		size, err := strconv.ParseInt(row[1], 10, 64)
		require.NoError(t, err)

		fromCSV = append(fromCSV, Record{Path: row[0], Size: size, Type: row[2]})
	}

	var fromJSON []Record
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))

	assert.Equal(t, fromJSON, fromCSV)
}

func TestSaveCSVAndJSON(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	jsonPath := filepath.Join(dir, "out.json")

	require.NoError(t, SaveCSV(csvPath, sampleItems))
	require.NoError(t, SaveJSON(jsonPath, sampleItems))

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "Path,Size(Bytes),Type")

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"path": "/scan/a.txt"`)
}

func TestSave_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")

	assert.Error(t, SaveCSV(path, sampleItems))
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
