package analyzer

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// entry is one enumerated filesystem item. Depth is the number of path
// separators between the root and the entry, so direct children of the
// root are at depth 0.
type entry struct {
	path  string
	depth int
	isDir bool
}

// isHidden reports whether a name marks a hidden entry.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// enumerate returns a lazy depth-first sequence of every file and
// directory under root, excluding entries deeper than maxDepth
// (negative = unbounded) and, when ignoreHidden is set, entries whose
// name starts with a dot. Directories at the boundary depth are yielded
// but not descended into. Symbolic links are yielded but never
// followed. Directories that cannot be listed are skipped silently and
// enumeration continues with their siblings.
//
// The traversal uses an explicit worklist rather than recursion, so
// pathologically deep trees cannot exhaust the stack. Sibling order
// follows os.ReadDir (sorted by name), keeping output deterministic
// for a given filesystem state.
func enumerate(root string, maxDepth int, ignoreHidden bool, log *zap.Logger) iter.Seq[entry] {
	return func(yield func(entry) bool) {
		// frame.depth is the depth of the directory's children.
		type frame struct {
			path  string
			depth int
		}

		stack := []frame{{path: root, depth: 0}}

		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			entries, err := os.ReadDir(dir.path)
			if err != nil {
				log.Debug("skipping unreadable directory",
					zap.String("path", dir.path),
					zap.Error(err))

				continue
			}

			for _, d := range entries {
				if ignoreHidden && isHidden(d.Name()) {
					continue
				}

				child := entry{
					path:  filepath.Join(dir.path, d.Name()),
					depth: dir.depth,
					isDir: d.IsDir(),
				}

				if !yield(child) {
					return
				}

				if child.isDir && (maxDepth < 0 || child.depth < maxDepth) {
					stack = append(stack, frame{path: child.path, depth: child.depth + 1})
				}
			}
		}
	}
}
