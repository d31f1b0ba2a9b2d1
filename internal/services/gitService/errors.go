package gitservice

import (
	"errors"
)

var (
	// ErrNoGit is returned when no git binary can be found in PATH
	ErrNoGit = errors.New("git is not installed or not found in PATH")

	// ErrNotAWorkTree is returned when a path is not inside a git working tree
	ErrNotAWorkTree = errors.New("path is not inside a git working tree")
)
