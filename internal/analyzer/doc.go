// Package analyzer provides directory size analysis.
//
// It enumerates a directory tree with depth and hidden-entry filters,
// computes recursive per-item sizes, ranks the largest items, aggregates
// sizes by file extension, and optionally groups duplicate files by
// content digest. Progress is reported while the scan runs.
package analyzer
