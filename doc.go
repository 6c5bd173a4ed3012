// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jsmn implements a minimal, allocation-free JSON tokenizer.
//
// The tokenizer scans a byte buffer in a single left-to-right pass and
// records the boundaries of JSON elements (objects, arrays, strings, and
// unquoted primitives) as a flat sequence of tokens in a caller-provided
// array. It builds no tree and decodes no values: each token is a typed
// byte range into the input, plus a count of its immediate children.
//
// # Usage
//
// Construct a Parser and a token array of whatever capacity you can
// afford, then call Parse:
//
//	p := jsmn.New()
//	toks := make([]jsmn.Token, 64)
//	n, err := p.Parse(data, toks)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	for _, tok := range toks[:n] {
//	   log.Printf("%v %q", tok.Kind, tok.Text(data))
//	}
//
// Parse performs no heap allocation and no I/O; all storage is owned by
// the caller. Errors are one of three sentinels: ErrPart means the input
// is a prefix of a larger document and more bytes should be appended,
// ErrInvalid means the input cannot be JSON, and ErrNoMemory means the
// token array is full. Tokens already written remain valid after any of
// the three.
//
// # Resuming
//
// The Parser records its cursor and allocation state between calls, so a
// buffer that grows over time can be fed incrementally: append bytes to
// the same underlying buffer and call Parse again with the same Parser
// and token array. Offsets already recorded refer to the original buffer
// start, so the buffer may only be extended, never shifted or truncated.
//
// Callers that prefer convenience over control of allocation can use
// Tokenize, which manages the token array itself and grows it as needed.
package jsmn
