package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestCollectRecursiveSorted(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "b", "02.avif"))
	writeFile(t, filepath.Join(dir, "a", "01.avif"))
	writeFile(t, filepath.Join(dir, "a", "ignore.txt"))
	writeFile(t, filepath.Join(dir, "c", "03.AVIF"))

	got, err := Collect(dir, []string{"avif"})
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a", "01.avif"),
		filepath.Join(dir, "b", "02.avif"),
		filepath.Join(dir, "c", "03.AVIF"),
	}
	assert.Equal(t, want, got)
}

func TestCollectMultipleExtensions(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a.jpg"))
	writeFile(t, filepath.Join(dir, "b.png"))
	writeFile(t, filepath.Join(dir, "c.webp"))

	got, err := Collect(dir, []string{".jpg", "PNG"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCollectMissingDir(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "nope"), []string{"avif"})
	assert.Error(t, err)
}

func TestSplitBatches(t *testing.T) {
	paths := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name string
		size int
		want [][]string
	}{
		{"exact multiple", 5, [][]string{{"a", "b", "c", "d", "e"}}},
		{"remainder", 2, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}},
		{"size one", 1, [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}},
		{"oversized", 100, [][]string{{"a", "b", "c", "d", "e"}}},
		{"zero size falls back to one batch", 0, [][]string{{"a", "b", "c", "d", "e"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitBatches(paths, tt.size))
		})
	}
}

func TestSplitBatchesEmpty(t *testing.T) {
	assert.Nil(t, SplitBatches(nil, 10))
}

func TestTotalSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.avif"))
	writeFile(t, filepath.Join(dir, "b.avif"))

	total := TotalSize([]string{
		filepath.Join(dir, "a.avif"),
		filepath.Join(dir, "b.avif"),
		filepath.Join(dir, "missing.avif"),
	})
	assert.Equal(t, int64(2), total)
}
