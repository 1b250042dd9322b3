package toml

// parseArrayValue parses an inline `[ ... ]` array literal. Per spec
// §4.7, whitespace between elements may cross newlines and include
// comments, and a trailing comma before the closing bracket is allowed.
// Grounded on original_source/src/parser/value.rs's array-literal arm.
func parseArrayValue(c *cursor, src []byte) (*Value, *Error) {
	start := c.pos
	c.advance()
	var elems []*Value

	c.skipWhitespace()
	for {
		if c.done() {
			return nil, newError(src, c.span(start), ErrUnclosedArrayBracket)
		}
		if b, _ := c.peek(); b == ']' {
			c.advance()
			return newArrayValue(elems, false), nil
		}

		v, err := parseValue(c, src)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		c.skipWhitespace()

		if c.done() {
			return nil, newError(src, c.span(start), ErrUnclosedArrayBracket)
		}
		b, _ := c.peek()
		if b == ',' {
			c.advance()
			c.skipWhitespace()
			continue
		}
		if b == ']' {
			c.advance()
			return newArrayValue(elems, false), nil
		}
		return nil, newError(src, c.span(c.pos), ErrNoCommaDelimeter)
	}
}
