// SPDX-License-Identifier: Apache-2.0

package guard

// browserCommandSig anchors every check at the CLI routine whose output
// formatting is being guarded.
const browserCommandSig = "private func runBrowserCommand("

// logItemsHelperSig identifies the non-JSON formatting helper inside the
// browser command routine.
const logItemsHelperSig = "func displayBrowserLogItems(_ value: Any?) -> String?"

// DefaultSuite guards the browser console/errors output-formatting paths of
// the target CLI: non-JSON `browser console list` and `browser errors list`
// must keep rendering log items instead of falling back to an unconditional
// "OK" response.
var DefaultSuite = Suite{
	Name:   "browser-output-guard",
	Label:  "browser console/errors CLI output regression guard",
	Target: "CLI/cmux.swift",
	Checks: []Check{
		{
			Name:  "log items helper present",
			Scope: []string{browserCommandSig},
			Require: []Expectation{
				{
					Pattern: logItemsHelperSig,
					Message: "runBrowserCommand() is missing displayBrowserLogItems() helper",
				},
			},
		},
		{
			Name:  "log items helper formatting",
			Scope: []string{browserCommandSig, logItemsHelperSig},
			Require: []Expectation{
				{
					Pattern: `return "[\(level)] \(text)"`,
					Message: "displayBrowserLogItems() no longer renders level-prefixed log lines",
				},
				{
					Pattern: `return "[error] \(message)"`,
					Message: "displayBrowserLogItems() no longer renders concise JS error messages",
				},
				{
					Pattern: "return displayBrowserValue(dict)",
					Message: "displayBrowserLogItems() no longer falls back to structured formatting",
				},
			},
		},
		{
			Name:  "console subcommand output",
			Scope: []string{browserCommandSig, `if subcommand == "console"`},
			Require: []Expectation{
				{
					Pattern: `displayBrowserLogItems(payload["entries"])`,
					Message: "browser console path no longer formats entries for non-JSON output",
				},
			},
			Forbid: []Expectation{
				{
					Pattern: `output(payload, fallback: "OK")`,
					Message: "browser console path regressed to unconditional OK output",
				},
			},
		},
		{
			Name:  "errors subcommand output",
			Scope: []string{browserCommandSig, `if subcommand == "errors"`},
			Require: []Expectation{
				{
					Pattern: `displayBrowserLogItems(payload["errors"])`,
					Message: "browser errors path no longer formats errors for non-JSON output",
				},
			},
			Forbid: []Expectation{
				{
					Pattern: `output(payload, fallback: "OK")`,
					Message: "browser errors path regressed to unconditional OK output",
				},
			},
		},
	},
}
