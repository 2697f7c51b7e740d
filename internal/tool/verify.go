// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/srcguardproj/srcguard/internal/guard"
)

// MetadataVerifySourceText describes the verify_source_text tool.
var MetadataVerifySourceText = &mcp.Tool{
	Name: "verify_source_text",
	Description: "Run a static regression-guard check suite over raw source text. " +
		"Each check extracts a balanced brace block by literal signature (optionally " +
		"narrowed through nested signatures) and asserts required patterns are present " +
		"and forbidden patterns are absent. Returns the accumulated findings; an empty " +
		"findings list means the guarded formatting logic is still in place. A signature " +
		"that cannot be located is a structural error, not a finding.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"source"},
		"properties": map[string]interface{}{
			"source": map[string]interface{}{
				"type":        "string",
				"description": "Raw source text to verify",
			},
			"suite": map[string]interface{}{
				"type":        "string",
				"description": "Optional YAML check suite. If omitted, the built-in browser output guard suite is used.",
			},
		},
	},
}

// InputVerifySourceText is the input for the VerifySourceText tool.
type InputVerifySourceText struct {
	Source string `json:"source"`
	Suite  string `json:"suite"`
}

// OutputVerifySourceText is the output for the VerifySourceText tool.
type OutputVerifySourceText struct {
	// Passed is true when no finding was recorded.
	Passed bool `json:"passed"`
	// Findings lists one human-readable message per violated expectation.
	Findings []string `json:"findings"`
	// ChecksRun is the number of checks evaluated.
	ChecksRun int `json:"checks_run"`
	// SuiteName identifies the suite that was run.
	SuiteName string `json:"suite_name"`
}

// VerifySourceText runs a check suite over the provided source text and
// returns the accumulated findings.
func VerifySourceText(ctx context.Context, _ *mcp.CallToolRequest, input InputVerifySourceText) (*mcp.CallToolResult, OutputVerifySourceText, error) {
	if input.Source == "" {
		return nil, OutputVerifySourceText{}, fmt.Errorf("source is required")
	}

	suite := guard.DefaultSuite
	if input.Suite != "" {
		parsed, err := guard.ParseSuite([]byte(input.Suite))
		if err != nil {
			return nil, OutputVerifySourceText{}, err
		}
		suite = parsed
	}

	report, err := guard.NewRunner(suite).Run(ctx, input.Source)
	if err != nil {
		return nil, OutputVerifySourceText{}, err
	}

	return nil, OutputVerifySourceText{
		Passed:    len(report.Findings) == 0,
		Findings:  report.Findings,
		ChecksRun: report.ChecksRun,
		SuiteName: suite.Name,
	}, nil
}
