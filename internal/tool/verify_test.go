// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guardedSource = `
private func runBrowserCommand(_ args: [String]) -> Int {
    func displayBrowserLogItems(_ value: Any?) -> String? {
        if let text = entry["text"] as? String {
            return "[\(level)] \(text)"
        }
        if let message = entry["message"] as? String {
            return "[error] \(message)"
        }
        return displayBrowserValue(dict)
    }

    if subcommand == "console" {
        if let rendered = displayBrowserLogItems(payload["entries"]) {
            print(rendered)
        }
        return 0
    }

    if subcommand == "errors" {
        if let rendered = displayBrowserLogItems(payload["errors"]) {
            print(rendered)
        }
        return 0
    }

    return 1
}
`

func TestVerifySourceText(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputVerifySourceText
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputVerifySourceText)
	}{
		{
			name:        "empty source returns error",
			input:       InputVerifySourceText{Source: ""},
			wantErr:     true,
			errContains: "source is required",
		},
		{
			name:  "intact source passes the default suite",
			input: InputVerifySourceText{Source: guardedSource},
			validateOutput: func(t *testing.T, output OutputVerifySourceText) {
				assert.True(t, output.Passed)
				assert.Empty(t, output.Findings)
				assert.Equal(t, 4, output.ChecksRun)
				assert.Equal(t, "browser-output-guard", output.SuiteName)
			},
		},
		{
			name: "regressed source reports findings without erroring",
			input: InputVerifySourceText{
				Source: strings.Replace(guardedSource,
					"return displayBrowserValue(dict)", "return nil", 1),
			},
			validateOutput: func(t *testing.T, output OutputVerifySourceText) {
				assert.False(t, output.Passed)
				require.Len(t, output.Findings, 1)
				assert.Contains(t, output.Findings[0], "no longer falls back to structured formatting")
			},
		},
		{
			name: "custom suite overrides the default",
			input: InputVerifySourceText{
				Source: "int main() { printf(\"hi\"); return 0; }",
				Suite: `
name: c-guard
label: c formatting guard
target: main.c
checks:
  - name: main body
    scope: ["int main()"]
    require:
      - pattern: "printf"
        message: "main() no longer prints"
`,
			},
			validateOutput: func(t *testing.T, output OutputVerifySourceText) {
				assert.True(t, output.Passed)
				assert.Equal(t, 1, output.ChecksRun)
				assert.Equal(t, "c-guard", output.SuiteName)
			},
		},
		{
			name: "invalid custom suite returns error",
			input: InputVerifySourceText{
				Source: "int main() { return 0; }",
				Suite:  "name: only-a-name\n",
			},
			wantErr:     true,
			errContains: "suite failed schema validation",
		},
		{
			name: "restructured source is a structural error not a finding",
			input: InputVerifySourceText{
				Source: "private func runBrowserCmd() { }",
			},
			wantErr:     true,
			errContains: "missing signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := VerifySourceText(ctx, req, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	server := NewServer()
	require.NotNil(t, server)
	require.NotNil(t, server.server)
}
