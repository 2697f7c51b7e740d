// SPDX-License-Identifier: Apache-2.0

// Package repo resolves the repository root the guarded source lives in.
package repo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Resolve returns the repository root for the current working directory.
//
// It prefers the authoritative answer from `git rev-parse --show-toplevel`.
// When git is unavailable or exits non-zero it degrades to a structural
// assumption: the grandparent directory of the running binary. Both paths are
// one-shot with no retries, and the resolved root is returned as an explicit
// value rather than stored as ambient state.
func Resolve(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel").Output()
	if err == nil {
		root := strings.TrimSpace(string(out))
		if root != "" {
			return root, nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve repository root: %w", err)
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}
