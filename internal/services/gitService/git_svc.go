package gitservice

import (
	"fmt"
	"os/exec"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// Installed reports whether a git binary is available in PATH.
func Installed() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// InWorkTree reports whether path sits inside a non-bare git working tree.
// Detection walks up toward the filesystem root, the same way git itself
// locates the enclosing repository.
func InWorkTree(path string) bool {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return false
	}

	// Bare repositories have no working tree to list files from
	_, err = repo.Worktree()
	return err == nil
}

// TrackedFiles lists the paths git tracks under root, relative to root.
// Tracked follows index semantics, so staged-but-uncommitted files are
// included while ignored and untracked files are not.
func TrackedFiles(root string) ([]string, error) {
	if !Installed() {
		return nil, ErrNoGit
	}

	cmd := exec.Command("git", "-C", root, "ls-files", "-z")

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run git ls-files: %w", err)
	}

	var files []string
	for _, p := range strings.Split(string(output), "\x00") {
		if p == "" {
			continue
		}
		files = append(files, p)
	}

	return files, nil
}
