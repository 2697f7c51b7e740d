// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"context"
	"fmt"
	"strings"

	"github.com/srcguardproj/srcguard/internal/logger"
	"github.com/srcguardproj/srcguard/internal/source"
)

// Runner interprets a Suite over source text. It holds no state across runs.
type Runner struct {
	suite Suite
}

// NewRunner creates a Runner for the given suite.
func NewRunner(suite Suite) *Runner {
	return &Runner{suite: suite}
}

// Suite returns the suite this runner interprets.
func (r *Runner) Suite() Suite {
	return r.suite
}

// Run evaluates every check in the suite against text and returns the
// accumulated findings. Expectation misses never stop the run, so a single
// invocation surfaces every regression at once.
//
// A failed scope extraction means the target source was restructured beyond
// what the suite's signatures anticipate; it aborts the run with an error
// rather than recording a finding.
func (r *Runner) Run(_ context.Context, text string) (Report, error) {
	report := Report{}

	for _, check := range r.suite.Checks {
		logger.Debug("running check %q (scope depth %d)", check.Name, len(check.Scope))

		block, err := r.scopedBlock(text, check)
		if err != nil {
			return Report{}, err
		}

		for _, exp := range check.Require {
			if !strings.Contains(block, exp.Pattern) {
				logger.Debug("check %q: required pattern missing: %s", check.Name, exp.Pattern)
				report.Findings = append(report.Findings, exp.Message)
			}
		}
		for _, exp := range check.Forbid {
			if strings.Contains(block, exp.Pattern) {
				logger.Debug("check %q: forbidden pattern present: %s", check.Name, exp.Pattern)
				report.Findings = append(report.Findings, exp.Message)
			}
		}
		report.ChecksRun++
	}

	return report, nil
}

// scopedBlock walks the check's signature path, narrowing the search space at
// each level to the block extracted by the previous one.
func (r *Runner) scopedBlock(text string, check Check) (string, error) {
	block := text
	for _, sig := range check.Scope {
		b, err := source.ExtractBlock(block, sig)
		if err != nil {
			return "", fmt.Errorf("check %q: %w", check.Name, err)
		}
		block = b
	}
	return block, nil
}
