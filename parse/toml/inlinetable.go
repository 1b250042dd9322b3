package toml

// parseInlineTableValue parses an inline `{ ... }` table literal. Unlike
// arrays, whitespace here is inline-only (no newlines: spec §4.7
// deliberately departs from original_source/src/parser/value.rs, which
// uses the newline-crossing skip_whitespace for both array and inline
// table literals) and a trailing comma is not permitted. Dotted keys
// inside are legal and build sub-tables the normal way; the finished
// table is handed back to the caller, which marks it closed on
// insertion (see table.go's insertAssignment).
func parseInlineTableValue(c *cursor, src []byte) (*Value, *Error) {
	start := c.pos
	c.advance()
	tbl := newTable()

	c.skipInlineWhitespace()
	if b, ok := c.peek(); ok && b == '}' {
		c.advance()
		return newTableValue(tbl), nil
	}

	for {
		if c.done() {
			return nil, newError(src, c.span(start), ErrUnclosedInlineTableBracket)
		}
		segs, err := parseDottedKey(c, src)
		if err != nil {
			return nil, err
		}
		c.skipInlineWhitespace()
		if b, ok := c.peek(); !ok || b != '=' {
			return nil, newError(src, c.span(c.pos), ErrNoEqualsInAssignment)
		}
		c.advance()
		c.skipInlineWhitespace()

		v, verr := parseValue(c, src)
		if verr != nil {
			return nil, verr
		}
		if ierr := tbl.insertAssignment(src, segs, v); ierr != nil {
			return nil, ierr
		}

		c.skipInlineWhitespace()
		if c.done() {
			return nil, newError(src, c.span(start), ErrUnclosedInlineTableBracket)
		}
		b, _ := c.peek()
		if b == ',' {
			c.advance()
			c.skipInlineWhitespace()
			if b2, ok := c.peek(); ok && b2 == '}' {
				return nil, newError(src, c.span(c.pos), ErrNoKeyInAssignment)
			}
			continue
		}
		if b == '}' {
			c.advance()
			return newTableValue(tbl), nil
		}
		return nil, newError(src, c.span(start), ErrUnclosedInlineTableBracket)
	}
}
