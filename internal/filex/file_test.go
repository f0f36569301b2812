package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNested(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "state.db")

	dir, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "a", "b"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureParentDir_ExistingIsFine(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "state.db")

	dir, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, base, dir)

	// second call is a no-op
	_, err = EnsureParentDir(target)
	require.NoError(t, err)
}
