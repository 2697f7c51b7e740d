// SPDX-License-Identifier: Apache-2.0

// Package source implements the balanced-block extractor that every check in
// srcguard operates on. Given raw source text and a literal signature string
// it returns the brace-delimited block that follows the signature.
//
// The extractor is a deliberately naive, language-agnostic brace matcher: it
// counts every '{' and '}' byte, including ones inside string or comment
// literals. That limitation is part of the contract — the guarded corpus is
// controlled, and a tokenizer would silently change behaviour on edge cases.
package source

import "strings"

// ExtractBlock locates the first occurrence of signature in text, finds the
// first opening brace at or after the signature's end, and returns the
// substring from that brace through its matching closing brace, inclusive.
//
// Narrowing is achieved by re-invoking ExtractBlock with a previously
// returned block as the new text: each extraction level is an independent
// search starting at position zero of its own text.
func ExtractBlock(text, signature string) (string, error) {
	start := strings.Index(text, signature)
	if start < 0 {
		return "", &SignatureNotFoundError{Signature: signature}
	}

	rel := strings.IndexByte(text[start+len(signature):], '{')
	if rel < 0 {
		return "", &NoOpeningBraceError{Signature: signature}
	}
	braceStart := start + len(signature) + rel

	depth := 0
	for i := braceStart; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[braceStart : i+1], nil
			}
		}
	}
	return "", &UnbalancedBlockError{Signature: signature}
}
