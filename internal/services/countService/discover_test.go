package countservice

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitservice "github.com/redjax/sloc/internal/services/gitService"
)

func writeFileAt(t *testing.T, root string, rel string, content string) {
	t.Helper()

	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"git", ModeGit, false},
		{"walk", ModeWalk, false},
		{"WALK", ModeWalk, false},
		{"tracked", "", true},
		{"gitwalk", "", true},
	}

	for _, tc := range tests {
		t.Run("mode "+tc.in, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWalkListerRelativePaths(t *testing.T) {
	root := t.TempDir()
	writeFileAt(t, root, "main.go", "package main\n")
	writeFileAt(t, root, filepath.Join("src", "deep", "lib.rs"), "fn lib() {}\n")

	lister := &walkLister{root: root}
	files, err := lister.Files()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"main.go",
		filepath.Join("src", "deep", "lib.rs"),
	}, files)
}

func TestWalkListerSkipsGitDirs(t *testing.T) {
	root := t.TempDir()
	writeFileAt(t, root, "main.go", "package main\n")
	writeFileAt(t, root, filepath.Join(".git", "hooks", "hook.py"), "print()\n")
	writeFileAt(t, root, filepath.Join("vendor", ".git", "stash.js"), "x\n")

	lister := &walkLister{root: root}
	files, err := lister.Files()
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go"}, files)
}

func TestWalkListerIncludesHiddenFiles(t *testing.T) {
	root := t.TempDir()
	writeFileAt(t, root, ".build.sh", "echo hi\n")
	writeFileAt(t, root, filepath.Join(".config", "setup.py"), "pass\n")

	lister := &walkLister{root: root}
	files, err := lister.Files()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		".build.sh",
		filepath.Join(".config", "setup.py"),
	}, files)
}

func TestWalkListerIgnoresSymlinks(t *testing.T) {
	root := t.TempDir()
	writeFileAt(t, root, "real.go", "package main\n")
	require.NoError(t, os.Symlink(filepath.Join(root, "real.go"), filepath.Join(root, "link.go")))

	lister := &walkLister{root: root}
	files, err := lister.Files()
	require.NoError(t, err)

	assert.Equal(t, []string{"real.go"}, files)
}

func TestNewListerAutoFallsBackToWalk(t *testing.T) {
	lister, err := NewLister(t.TempDir(), ModeAuto)
	require.NoError(t, err)

	assert.Equal(t, SourceWalk, lister.Source())
}

func TestNewListerAutoPrefersGit(t *testing.T) {
	if !gitservice.Installed() {
		t.Skip("git binary not available")
	}

	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	lister, err := NewLister(root, ModeAuto)
	require.NoError(t, err)

	assert.Equal(t, SourceGit, lister.Source())
}

func TestNewListerForcedGitOutsideRepo(t *testing.T) {
	if !gitservice.Installed() {
		t.Skip("git binary not available")
	}

	root := t.TempDir()
	_, err := NewLister(root, ModeGit)
	require.Error(t, err)
	assert.ErrorIs(t, err, gitservice.ErrNotAWorkTree)
	assert.Contains(t, err.Error(), root)
}

func TestNewListerForcedWalkInsideRepo(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	lister, err := NewLister(root, ModeWalk)
	require.NoError(t, err)

	assert.Equal(t, SourceWalk, lister.Source())
}
