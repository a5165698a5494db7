package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Lowercase", "dir/file.txt", ".txt"},
		{"Uppercase normalized", "dir/FILE.TXT", ".txt"},
		{"Mixed case", "archive.Tar.Gz", ".gz"},
		{"No extension", "dir/Makefile", NoExtension},
		{"Trailing dot", "file.", "."},
		{"Hidden file without extension", "dir/.gitignore", ".gitignore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extensionOf(tt.path))
		})
	}
}

func TestCollector_FinalizeSortsAndTruncates(t *testing.T) {
	c := newCollector()
	c.add(Item{Path: "small.txt", Size: 10})
	c.add(Item{Path: "big.txt", Size: 300})
	c.add(Item{Path: "mid.txt", Size: 100})

	stats := c.finalize(2)

	assert.Equal(t, []Item{
		{Path: "big.txt", Size: 300},
		{Path: "mid.txt", Size: 100},
		{Path: "small.txt", Size: 10},
	}, stats.Items)
	assert.Equal(t, stats.Items[:2], stats.Top)
	assert.Equal(t, 2, stats.TopN)
}

func TestCollector_TiesKeepInsertionOrder(t *testing.T) {
	c := newCollector()
	c.add(Item{Path: "first.txt", Size: 100})
	c.add(Item{Path: "second.txt", Size: 100})
	c.add(Item{Path: "third.txt", Size: 100})

	stats := c.finalize(10)

	assert.Equal(t, "first.txt", stats.Items[0].Path)
	assert.Equal(t, "second.txt", stats.Items[1].Path)
	assert.Equal(t, "third.txt", stats.Items[2].Path)
}

func TestCollector_TopIsPrefixWhenFewerThanN(t *testing.T) {
	c := newCollector()
	c.add(Item{Path: "only.txt", Size: 1})

	stats := c.finalize(10)

	assert.Len(t, stats.Top, 1)
	assert.Equal(t, stats.Items, stats.Top)
}

func TestCollector_ExtensionTotals(t *testing.T) {
	c := newCollector()
	c.add(Item{Path: "a.txt", Size: 100})
	c.add(Item{Path: "b.TXT", Size: 100})
	c.add(Item{Path: "c.log", Size: 50})
	c.add(Item{Path: "noext", Size: 25})
	c.add(Item{Path: "dir", Size: 1000, IsDir: true})

	stats := c.finalize(10)

	assert.Equal(t, []ExtTotal{
		{Ext: ".txt", Size: 200},
		{Ext: ".log", Size: 50},
		{Ext: NoExtension, Size: 25},
	}, stats.ExtTotals)

	// Directories contribute to counts but never to extension totals.
	assert.Equal(t, int64(1), stats.DirCount)
	assert.Equal(t, int64(4), stats.FileCount)
	assert.Equal(t, int64(275), stats.TotalBytes)
}

func TestCollector_DuplicateGroupsRequireTwoMembers(t *testing.T) {
	c := newCollector()
	c.addDigest("aaaa", "a.txt")
	c.addDigest("aaaa", "b.txt")
	c.addDigest("bbbb", "unique.txt")

	stats := c.finalize(10)

	assert.Equal(t, map[string][]string{
		"aaaa": {"a.txt", "b.txt"},
	}, stats.Duplicates)
}

func TestItem_Kind(t *testing.T) {
	assert.Equal(t, "File", Item{Path: "a"}.Kind())
	assert.Equal(t, "Folder", Item{Path: "a", IsDir: true}.Kind())
}
