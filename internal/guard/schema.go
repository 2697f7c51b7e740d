// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// suiteSchema constrains externally loaded suites: every check needs a
// non-empty scope, and every expectation needs both a pattern and the message
// reported when it is violated.
const suiteSchema = `
#Expectation: {
	pattern: string & !=""
	message: string & !=""
}

#Check: {
	name:     string & !=""
	scope:    [string & !="", ...string & !=""]
	require?: [...#Expectation]
	forbid?:  [...#Expectation]
}

name:   string & !=""
label:  string & !=""
target: string & !=""
checks: [#Check, ...#Check]
`

// validateSuite checks a loaded suite against suiteSchema.
func validateSuite(suite Suite) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(suiteSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to compile suite schema: %w", err)
	}

	value := ctx.Encode(suite)
	if err := value.Err(); err != nil {
		return fmt.Errorf("failed to encode suite for validation: %w", err)
	}

	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("suite failed schema validation: %w", err)
	}

	// The schema cannot express "at least one expectation of either kind".
	for _, check := range suite.Checks {
		if len(check.Require) == 0 && len(check.Forbid) == 0 {
			return fmt.Errorf("suite failed schema validation: check %q has no expectations", check.Name)
		}
	}
	return nil
}
