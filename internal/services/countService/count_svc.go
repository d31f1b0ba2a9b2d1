package countservice

import (
	"fmt"
	"os"
	"path/filepath"
)

// Options configures a counting run.
type Options struct {
	// Root is the directory to count under.
	Root string
	// Mode selects the discovery strategy. The zero value means ModeAuto.
	Mode Mode
}

// SkipError records a file that was listed but could not be read.
type SkipError struct {
	Path string
	Err  error
}

// Result holds the outcome of a counting run.
type Result struct {
	// Root is the cleaned root directory.
	Root string
	// Source names the discovery strategy that listed the files.
	Source string
	// Agg holds the per-extension and total counts.
	Agg *Aggregate
	// Skipped lists files that failed to read and were left out.
	Skipped []SkipError
}

// Run discovers source files under opts.Root, counts their lines and
// aggregates them by extension. Files that cannot be read are recorded on
// the result and skipped; they never fail the run.
func Run(opts Options) (*Result, error) {
	root := filepath.Clean(opts.Root)

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeAuto
	}

	lister, err := NewLister(root, mode)
	if err != nil {
		return nil, err
	}

	files, err := lister.Files()
	if err != nil {
		return nil, fmt.Errorf("failed to list files under %s: %w", root, err)
	}

	result := &Result{
		Root:   root,
		Source: lister.Source(),
		Agg:    NewAggregate(),
	}

	for _, rel := range files {
		ext, ok := ExtensionKey(rel)
		if !ok {
			continue
		}

		lines, err := CountLines(filepath.Join(root, rel))
		if err != nil {
			result.Skipped = append(result.Skipped, SkipError{Path: rel, Err: err})
			continue
		}

		result.Agg.Add(ext, lines)
	}

	return result, nil
}
