// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsmn

import (
	"errors"
	"fmt"
)

// Errors reported by Parse. Use errors.Is to discriminate; the returned
// error also carries the byte offset at which scanning stopped.
var (
	// ErrPart means the input is a valid prefix of a larger JSON document.
	// Append more bytes to the buffer and call Parse again.
	ErrPart = errors.New("incomplete JSON, more bytes expected")

	// ErrInvalid means the input cannot be JSON under the accepted
	// grammar. The document must be discarded and reparsed with a fresh
	// Parser.
	ErrInvalid = errors.New("invalid character in JSON")

	// ErrNoMemory means the token array is full. Retry with the same
	// Parser and a larger array holding the tokens already written.
	ErrNoMemory = errors.New("not enough tokens provided")
)

// A Parser holds the scan state of the tokenizer between calls to Parse.
// Construct one with New.
type Parser struct {
	pos   int // absolute cursor into the input buffer
	next  int // next unallocated slot in the token array
	super int // slot of the token owning subsequent values, or noSuper
}

const noSuper = -1

// New constructs a new Parser positioned at the start of the input.
func New() *Parser { return &Parser{super: noSuper} }

// Reset restores p to its initial state, discarding all scan progress.
func (p *Parser) Reset() { p.pos, p.next, p.super = 0, 0, noSuper }

// Parse scans data and fills toks with the boundaries of each JSON
// element found. It returns the total number of tokens allocated into
// toks, including tokens from previous calls that shared p.
//
// On error, tokens already written remain valid and the return value is
// the number of them. After ErrPart the caller may append bytes to data
// and call Parse again with the same p and toks. After ErrNoMemory the
// caller may copy toks[:n] into a larger array and call Parse again with
// the same p: the string and primitive scanners rewind the cursor to the
// start of the element that did not fit, and a container that did not
// fit is reached again because the cursor never moved past its bracket.
// ErrInvalid is not recoverable for the document.
//
// Parse allocates no memory on the scan path and retains no reference
// to data or toks.
func (p *Parser) Parse(data []byte, toks []Token) (int, error) {
	for ; p.pos < len(data); p.pos++ {
		switch c := data[p.pos]; c {
		case '{', '[':
			tok := p.alloc(toks)
			if tok == nil {
				return p.next, p.fail(ErrNoMemory)
			}
			if p.super != noSuper {
				toks[p.super].Size++
			}
			if c == '{' {
				tok.Kind = Object
			} else {
				tok.Kind = Array
			}
			tok.Start = p.pos
			p.super = p.next - 1

		case '}', ']':
			want := Object
			if c == ']' {
				want = Array
			}
			// Close the innermost open token, then rescan for the next
			// enclosing open container to restore as super.
			i := p.next - 1
			for ; i >= 0; i-- {
				if toks[i].open() {
					if toks[i].Kind != want {
						return p.next, p.fail(ErrInvalid)
					}
					p.super = noSuper
					toks[i].End = p.pos + 1
					break
				}
			}
			if i == -1 { // unmatched closing bracket
				return p.next, p.fail(ErrInvalid)
			}
			for ; i >= 0; i-- {
				if toks[i].open() {
					p.super = i
					break
				}
			}

		case '"':
			if err := p.parseString(data, toks); err != nil {
				return p.next, err
			}
			if p.super != noSuper {
				toks[p.super].Size++
			}

		case '\t', '\r', '\n', ' ':
			// skip whitespace

		case ':':
			// The value that follows belongs to the key just emitted.
			p.super = p.next - 1

		case ',':
			// If super is a key token we just finished its value; restore
			// the nearest open container as the owner of what follows.
			if p.super != noSuper && !toks[p.super].isContainer() {
				for i := p.next - 1; i >= 0; i-- {
					if toks[i].isContainer() && toks[i].open() {
						p.super = i
						break
					}
				}
			}

		default:
			// Any other byte begins a primitive.
			if err := p.parsePrimitive(data, toks); err != nil {
				return p.next, err
			}
			if p.super != noSuper {
				toks[p.super].Size++
			}
		}
	}

	// Any token still open is an unterminated container.
	for i := p.next - 1; i >= 0; i-- {
		if toks[i].open() {
			return p.next, p.fail(ErrPart)
		}
	}
	return p.next, nil
}

// parseString scans a quoted string beginning at the '"' under the
// cursor and allocates a String token for its contents. Escape sequences
// are validated but not decoded. On failure the cursor is rewound to the
// opening quote.
func (p *Parser) parseString(data []byte, toks []Token) error {
	start := p.pos

	p.pos++ // skip the opening quote
	for ; p.pos < len(data); p.pos++ {
		c := data[p.pos]

		// Unescaped quote: end of string.
		if c == '"' {
			tok := p.alloc(toks)
			if tok == nil {
				p.pos = start
				return p.fail(ErrNoMemory)
			}
			tok.fill(String, start+1, p.pos)
			return nil
		}

		if c == '\\' && p.pos+1 < len(data) {
			p.pos++
			switch data[p.pos] {
			case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
				// single-character escape

			case 'u':
				// \uXXXX: exactly four hex digits.
				p.pos++
				for i := 0; i < 4 && p.pos < len(data); i++ {
					if !isHexDigit(data[p.pos]) {
						p.pos = start
						return p.fail(ErrInvalid)
					}
					p.pos++
				}
				p.pos--

			default:
				p.pos = start
				return p.fail(ErrInvalid)
			}
		}
	}
	p.pos = start
	return p.fail(ErrPart)
}

// parsePrimitive scans an unquoted run (number, boolean, null) up to the
// next structural delimiter or end of input and allocates a Primitive
// token for it. The run is not decoded; every byte must be printable
// ASCII. The cursor is left on the last byte of the run so the outer
// loop reprocesses the delimiter; on failure it is rewound to the start
// of the run.
func (p *Parser) parsePrimitive(data []byte, toks []Token) error {
	start := p.pos

scan:
	for ; p.pos < len(data); p.pos++ {
		switch data[p.pos] {
		case ':', '\t', '\r', '\n', ' ', ',', ']', '}':
			break scan
		}
		if data[p.pos] < 0x20 || data[p.pos] >= 0x7f {
			p.pos = start
			return p.fail(ErrInvalid)
		}
	}

	tok := p.alloc(toks)
	if tok == nil {
		p.pos = start
		return p.fail(ErrNoMemory)
	}
	tok.fill(Primitive, start, p.pos)
	p.pos--
	return nil
}

// alloc returns the next unused slot of toks reset to its unfilled
// state, or nil if the pool is exhausted. The slot counter does not
// advance on failure.
func (p *Parser) alloc(toks []Token) *Token {
	if p.next >= len(toks) {
		return nil
	}
	tok := &toks[p.next]
	p.next++
	tok.Start, tok.End, tok.Size = -1, -1, 0
	return tok
}

func (t *Token) fill(kind Kind, start, end int) {
	t.Kind = kind
	t.Start = start
	t.End = end
	t.Size = 0
}

func (p *Parser) fail(err error) error { return posError{p.pos, err} }

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }
