// SPDX-License-Identifier: Apache-2.0

// Package guard models a regression-guard check suite as data and provides
// the generic runner that interprets it over source text.
package guard

// Expectation is a single literal-substring predicate together with the
// human-readable finding recorded when the predicate does not hold.
type Expectation struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Message string `json:"message" yaml:"message"`
}

// Check narrows the source text through a chain of block extractions and then
// evaluates literal expectations against the innermost block.
type Check struct {
	Name string `json:"name" yaml:"name"`
	// Scope is the signature path, outermost first. Each signature is
	// extracted from the block produced by the previous one.
	Scope []string `json:"scope" yaml:"scope"`
	// Require patterns must be present in the scoped block; a miss records
	// the expectation's message.
	Require []Expectation `json:"require,omitempty" yaml:"require,omitempty"`
	// Forbid patterns must be absent; a hit records the expectation's message.
	Forbid []Expectation `json:"forbid,omitempty" yaml:"forbid,omitempty"`
}

// Suite is an ordered list of checks against one target source file.
type Suite struct {
	Name string `json:"name" yaml:"name"`
	// Label is the headline used in PASS/FAIL reporting.
	Label string `json:"label" yaml:"label"`
	// Target is the guarded source file, slash-separated and relative to
	// the repository root.
	Target string `json:"target" yaml:"target"`
	Checks []Check `json:"checks" yaml:"checks"`
}

// Report is the outcome of running a suite over one source text. An empty
// Findings list means every expectation held.
type Report struct {
	Findings  []string
	ChecksRun int
}
