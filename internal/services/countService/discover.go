package countservice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitservice "github.com/redjax/sloc/internal/services/gitService"
)

// Mode selects how files under the root are discovered.
type Mode string

const (
	// ModeAuto prefers the git index when the root sits in a working tree,
	// falling back to a filesystem walk otherwise.
	ModeAuto Mode = "auto"
	// ModeGit forces git-tracked listing and fails outside a working tree.
	ModeGit Mode = "git"
	// ModeWalk forces a raw filesystem walk, ignoring git metadata.
	ModeWalk Mode = "walk"
)

// ParseMode validates a mode value from flags or config. The empty string
// means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", string(ModeAuto):
		return ModeAuto, nil
	case string(ModeGit):
		return ModeGit, nil
	case string(ModeWalk):
		return ModeWalk, nil
	default:
		return "", fmt.Errorf("invalid discovery mode %q (expected auto, git or walk)", s)
	}
}

// Discovery sources, reported on results.
const (
	SourceGit  = "git-tracked files"
	SourceWalk = "filesystem walk"
)

// Lister enumerates candidate files under a root directory.
// Paths are relative to the root.
type Lister interface {
	Files() ([]string, error)
	Source() string
}

// NewLister picks the discovery strategy for root once, up front. Auto mode
// uses the git index when the git binary is present and root sits inside a
// working tree; otherwise it walks the filesystem.
func NewLister(root string, mode Mode) (Lister, error) {
	switch mode {
	case ModeGit:
		if !gitservice.Installed() {
			return nil, gitservice.ErrNoGit
		}
		if !gitservice.InWorkTree(root) {
			return nil, fmt.Errorf("%w: %s", gitservice.ErrNotAWorkTree, root)
		}
		return &trackedLister{root: root}, nil
	case ModeWalk:
		return &walkLister{root: root}, nil
	default:
		if gitservice.Installed() && gitservice.InWorkTree(root) {
			return &trackedLister{root: root}, nil
		}
		return &walkLister{root: root}, nil
	}
}

// trackedLister lists files from the git index.
type trackedLister struct {
	root string
}

func (l *trackedLister) Source() string { return SourceGit }

func (l *trackedLister) Files() ([]string, error) {
	tracked, err := gitservice.TrackedFiles(l.root)
	if err != nil {
		return nil, err
	}

	// The index can reference entries that were deleted from the working
	// tree or are symlinks; keep only regular files present on disk.
	var files []string
	for _, rel := range tracked {
		info, err := os.Lstat(filepath.Join(l.root, rel))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, rel)
	}

	return files, nil
}

// walkLister walks the filesystem under root.
type walkLister struct {
	root string
}

func (l *walkLister) Source() string { return SourceWalk }

func (l *walkLister) Files() ([]string, error) {
	var files []string

	err := filepath.Walk(l.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip entries we can't access
		}

		if info.IsDir() {
			if info.Name() == ".git" && path != l.root {
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinks and other non-regular entries are not counted
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(l.root, path)
		if relErr != nil {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
