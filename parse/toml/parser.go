package toml

import (
	"fmt"
	"io"
)

// Parse parses a complete TOML document from raw bytes. Grounded on
// original_source/src/lib.rs's `Toml::parse` main loop: dispatch each
// top-level statement as a `[[array header]]`, a `[table header]`, or a
// dotted-key assignment, tracking which Table subsequent assignments
// land in.
func Parse(data []byte) (*Table, error) {
	tbl, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	return tbl, nil
}

// ParseString is a convenience wrapper over Parse for string input.
func ParseString(s string) (*Table, error) {
	return Parse([]byte(s))
}

// ParseReader reads r fully, then parses it as a TOML document.
func ParseReader(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ParseWithLimit is Parse plus an opt-in guard against pathological
// inputs: it rejects data longer than maxBytes before any lexing begins,
// per spec.md §5's "implementations may choose to expose a byte-limit
// guard" allowance. The rejection is a plain error rather than an *Error,
// since it fires before any byte span exists to diagnose.
func ParseWithLimit(data []byte, maxBytes int) (*Table, error) {
	if len(data) > maxBytes {
		return nil, fmt.Errorf("toml: input is %d bytes, exceeds limit of %d bytes", len(data), maxBytes)
	}
	return Parse(data)
}

func parseDocument(src []byte) (*Table, *Error) {
	root := newTable()
	current := root
	c := newCursor(src)
	c.skipWhitespace()

	for !c.done() {
		b, _ := c.peek()
		switch {
		case b == '[' && c.at("[["):
			tbl, err := parseArrayOfTablesHeader(c, src, root)
			if err != nil {
				return nil, err
			}
			current = tbl
		case b == '[':
			tbl, err := parseStandardTableHeader(c, src, root)
			if err != nil {
				return nil, err
			}
			current = tbl
		default:
			if err := parseAssignmentLine(c, src, current); err != nil {
				return nil, err
			}
		}

		if err := expectLineEnd(c, src); err != nil {
			return nil, err
		}
		c.skipWhitespace()
	}

	return root, nil
}

func parseArrayOfTablesHeader(c *cursor, src []byte, root *Table) (*Table, *Error) {
	c.advanceN(2)
	c.skipInlineWhitespace()
	segs, err := parseDottedKey(c, src)
	if err != nil {
		return nil, err
	}
	c.skipInlineWhitespace()
	if !c.at("]]") {
		return nil, newError(src, c.span(c.pos), ErrUnclosedArrayOfTablesBracket)
	}
	c.advanceN(2)
	return root.insertArrayHeader(src, segs)
}

func parseStandardTableHeader(c *cursor, src []byte, root *Table) (*Table, *Error) {
	c.advance()
	c.skipInlineWhitespace()
	segs, err := parseDottedKey(c, src)
	if err != nil {
		return nil, err
	}
	c.skipInlineWhitespace()
	if b, ok := c.peek(); !ok || b != ']' {
		return nil, newError(src, c.span(c.pos), ErrUnclosedTableBracket)
	}
	c.advance()
	return root.insertHeader(src, segs)
}

func parseAssignmentLine(c *cursor, src []byte, current *Table) *Error {
	segs, err := parseDottedKey(c, src)
	if err != nil {
		return err
	}
	c.skipInlineWhitespace()
	if b, ok := c.peek(); !ok || b != '=' {
		return newError(src, c.span(c.pos), ErrNoEqualsInAssignment)
	}
	c.advance()
	c.skipInlineWhitespace()

	v, verr := parseValue(c, src)
	if verr != nil {
		return verr
	}
	return current.insertAssignment(src, segs, v)
}

// expectLineEnd consumes trailing inline whitespace and an optional
// comment, then requires either a newline or end of input. Reusing
// NoCommaDelimeter here for "unexpected trailing content" is a deliberate
// grounding choice (see DESIGN.md): spec's closed ErrorKind set has no
// dedicated "expected end of line" variant.
func expectLineEnd(c *cursor, src []byte) *Error {
	c.skipInlineWhitespace()
	if c.done() {
		return nil
	}
	if b, _ := c.peek(); b == '#' {
		for {
			bb, ok := c.peek()
			if !ok || bb == '\n' {
				break
			}
			c.advance()
		}
	}
	if c.done() {
		return nil
	}
	if b, _ := c.peek(); b != '\n' && b != '\r' {
		return newError(src, c.span(c.pos), ErrNoCommaDelimeter)
	}
	return nil
}
