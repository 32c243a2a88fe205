// Package files discovers image files for upload and partitions them
// into batches bounded by the configured batch size.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Collect walks dir recursively and returns all regular files whose
// extension is in allowExt, sorted by path.
func Collect(dir string, allowExt []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	allowed := map[string]bool{}
	for _, e := range allowExt {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			allowed[e] = true
		}
	}

	var out []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if allowed[ext] {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(out)
	return out, nil
}

// SplitBatches partitions paths into groups of at most size, preserving
// order. A size below 1 yields a single batch.
func SplitBatches(paths []string, size int) [][]string {
	if len(paths) == 0 {
		return nil
	}
	if size < 1 {
		return [][]string{paths}
	}

	out := make([][]string, 0, (len(paths)+size-1)/size)
	for start := 0; start < len(paths); start += size {
		end := start + size
		if end > len(paths) {
			end = len(paths)
		}
		out = append(out, paths[start:end])
	}

	return out
}

// TotalSize sums the on-disk size of the given files. Stat failures are
// skipped, matching the best-effort nature of the upload flow.
func TotalSize(paths []string) int64 {
	var total int64
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil {
			total += info.Size()
		}
	}

	return total
}
