// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsmn

import (
	"github.com/creachadair/jsmn/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as the contents of a JSON string value. The result
// has the necessary escape sequences applied, but no surrounding
// quotation marks; it is the inverse of Unquote on a String token.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes text, the undecoded contents of a String token as
// returned by Token.Text, replacing escape sequences with their plain
// equivalents. The tokenizer has already validated the shape of every
// escape in a String token, so Unquote fails only on text that did not
// come from one (for example, a truncated escape).
func Unquote(text []byte) ([]byte, error) { return escape.Unquote(mem.B(text)) }
