// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsmn

import "errors"

// Tokenize scans data and returns its tokens, managing the token array
// on the caller's behalf. It is a convenience for callers who do not
// need the fixed-capacity guarantees of Parse: when the array fills,
// Tokenize copies the tokens into a doubled array and resumes the same
// scan, which is safe because Parse leaves its cursor positioned to
// re-read the element that did not fit.
func Tokenize(data []byte) ([]Token, error) {
	p := New()
	toks := make([]Token, 16)
	for {
		n, err := p.Parse(data, toks)
		if errors.Is(err, ErrNoMemory) {
			grown := make([]Token, 2*len(toks))
			copy(grown, toks[:n])
			toks = grown
			continue
		}
		return toks[:n], err
	}
}
