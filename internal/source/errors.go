// SPDX-License-Identifier: Apache-2.0

package source

import "fmt"

// SignatureNotFoundError reports that the requested signature does not occur
// anywhere in the searched text.
type SignatureNotFoundError struct {
	Signature string
}

func (e *SignatureNotFoundError) Error() string {
	return fmt.Sprintf("missing signature: %s", e.Signature)
}

// NoOpeningBraceError reports that the signature was found but no opening
// brace follows it.
type NoOpeningBraceError struct {
	Signature string
}

func (e *NoOpeningBraceError) Error() string {
	return fmt.Sprintf("missing opening brace for: %s", e.Signature)
}

// UnbalancedBlockError reports that the scan reached the end of the text
// without the brace depth returning to zero.
type UnbalancedBlockError struct {
	Signature string
}

func (e *UnbalancedBlockError) Error() string {
	return fmt.Sprintf("unbalanced braces for: %s", e.Signature)
}
