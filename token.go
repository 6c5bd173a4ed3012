// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jsmn

// Kind is the type of a JSON token.
type Kind byte

// Constants defining the valid Kind values.
const (
	Undefined Kind = iota // unused token slot
	Object                // object "{ ... }"
	Array                 // array "[ ... ]"
	String                // quoted string, quotes excluded
	Primitive             // number, boolean, or null, undecoded
)

var kindStr = [...]string{
	Undefined: "undefined",
	Object:    "object",
	Array:     "array",
	String:    "string",
	Primitive: "primitive",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Undefined]
	}
	return kindStr[v]
}

// A Token describes the location of a single JSON element in the input.
//
// Start and End are byte offsets such that input[Start:End] is the source
// text of the element. For String tokens the offsets exclude the
// surrounding quotation marks; for containers Start addresses the opening
// bracket and End is one past the closing bracket. End == -1 marks a
// container whose closing bracket has not yet been seen; Start == -1 as
// well marks a slot the allocator has not filled.
//
// Size counts the immediate children of the token: for an Object, its
// keys and values; for an Array, its elements; for an object key, 1 once
// its value has been recorded.
type Token struct {
	Kind  Kind
	Start int
	End   int
	Size  int
}

// Text returns the source text of t as a slice of input. It panics if t
// is open or unused (a negative offset), since no range exists yet.
func (t Token) Text(input []byte) []byte { return input[t.Start:t.End] }

// open reports whether t has been filled but not yet closed. The open
// tokens at any moment are exactly the containers on the current nesting
// path, in increasing slot order.
func (t Token) open() bool { return t.Start != -1 && t.End == -1 }

// isContainer reports whether t is an object or array token.
func (t Token) isContainer() bool { return t.Kind == Object || t.Kind == Array }
