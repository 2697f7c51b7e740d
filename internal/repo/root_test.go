// SPDX-License-Identifier: Apache-2.0

package repo_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcguardproj/srcguard/internal/repo"
)

func TestResolve(t *testing.T) {
	ctx := context.Background()

	root, err := repo.Resolve(ctx)
	require.NoError(t, err)

	// Whether git answered or the fallback kicked in, the resolved root is a
	// non-empty absolute path.
	assert.NotEmpty(t, root)
	assert.True(t, filepath.IsAbs(root), "resolved root must be absolute, got %q", root)
}

func TestResolve_OutsideRepository(t *testing.T) {
	ctx := context.Background()

	// In a directory with no version-control metadata the fallback still
	// produces a usable root.
	t.Chdir(t.TempDir())

	root, err := repo.Resolve(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, root)
}
