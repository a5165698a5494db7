package analyzer

import (
	"os"
	"path/filepath"
)

// itemSize returns the size in bytes of the item at path, which sits at
// the given depth relative to the scan root.
//
// Files return their byte length; a file that vanished or became
// unreadable between enumeration and sizing counts as 0. Directories
// return the recursive sum of their descendants, where any descendant
// deeper than maxDepth (negative = unbounded) contributes 0 and hidden
// descendants are skipped when ignoreHidden is set. A directory whose
// contents cannot be listed contributes 0.
//
// Each file sized advances tr by its byte count and records the path as
// the one currently being processed.
func itemSize(path string, depth, maxDepth int, ignoreHidden bool, tr *tracker) int64 {
	if maxDepth >= 0 && depth > maxDepth {
		return 0
	}

	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}

	if !info.IsDir() {
		size := info.Size()

		if tr != nil {
			tr.advance(size, path)
		}

		return size
	}

	// Directory: sum descendants with an explicit worklist.
	// frame.depth is the depth of the directory's children.
	type frame struct {
		path  string
		depth int
	}

	var total int64

	stack := []frame{{path: path, depth: depth + 1}}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if maxDepth >= 0 && dir.depth > maxDepth {
			continue
		}

		entries, err := os.ReadDir(dir.path)
		if err != nil {
			continue
		}

		for _, d := range entries {
			if ignoreHidden && isHidden(d.Name()) {
				continue
			}

			child := filepath.Join(dir.path, d.Name())

			if d.IsDir() {
				stack = append(stack, frame{path: child, depth: dir.depth + 1})

				continue
			}

			childInfo, err := d.Info()
			if err != nil {
				continue
			}

			total += childInfo.Size()

			if tr != nil {
				tr.advance(childInfo.Size(), child)
			}
		}
	}

	return total
}
