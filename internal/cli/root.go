// SPDX-License-Identifier: Apache-2.0

// Package cli implements the srcguard command-line surface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/srcguardproj/srcguard/internal/guard"
	"github.com/srcguardproj/srcguard/internal/logger"
	"github.com/srcguardproj/srcguard/internal/repo"
)

var (
	suitePath  string
	rootDir    string
	targetPath string
	verbose    bool
)

// errFindings marks a run that completed but recorded regression findings.
// It maps to exit code 1, as opposed to exit code 2 for structural errors.
var errFindings = errors.New("regression findings recorded")

var rootCmd = &cobra.Command{
	Use:   "srcguard",
	Short: "Static source-text regression guard",
	Long: `srcguard inspects the literal text of a guarded source file and asserts
that specific structural and textual patterns remain present, catching
output-formatting regressions that behavioural tests miss.

Invoked without arguments it discovers the repository root via git, reads the
built-in suite's target file, and runs the built-in check suite. A custom
suite can be supplied as YAML via --suite.

Exit codes: 0 when every expectation holds, 1 when findings were recorded,
2 when a check's signature no longer matches the target source at all.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGuard,
}

func init() {
	rootCmd.Flags().StringVar(&suitePath, "suite", "", "path to a YAML check suite (default: built-in browser output guard)")
	rootCmd.Flags().StringVar(&rootDir, "root", "", "repository root (default: discovered via git rev-parse)")
	rootCmd.Flags().StringVar(&targetPath, "target", "", "target source file (default: the suite's target, relative to the root)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostics on stderr")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "srcguard: %v\n", err)
		return 2
	}
	return 0
}

func runGuard(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	suite := guard.DefaultSuite
	if suitePath != "" {
		loaded, err := guard.LoadSuite(suitePath)
		if err != nil {
			return err
		}
		suite = loaded
	}
	logger.Debug("suite %q with %d checks", suite.Name, len(suite.Checks))

	target := targetPath
	if target == "" {
		root := rootDir
		if root == "" {
			resolved, err := repo.Resolve(ctx)
			if err != nil {
				return err
			}
			root = resolved
		}
		logger.Debug("repository root: %s", root)
		target = filepath.Join(root, filepath.FromSlash(suite.Target))
	}

	text, err := readTarget(target)
	if err != nil {
		return err
	}
	logger.Debug("read %d bytes from %s", len(text), target)

	report, err := guard.NewRunner(suite).Run(ctx, text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(report.Findings) > 0 {
		fmt.Fprintf(out, "FAIL: %s failed\n", suite.Label)
		for _, finding := range report.Findings {
			fmt.Fprintf(out, " - %s\n", finding)
		}
		return errFindings
	}

	fmt.Fprintf(out, "PASS: %s is in place\n", suite.Label)
	return nil
}

// readTarget loads the whole guarded file as UTF-8 text. No partial reads,
// no streaming: scanning only starts once the full file is in memory.
func readTarget(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read target source: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("target source %s is not valid UTF-8", path)
	}
	return string(data), nil
}
