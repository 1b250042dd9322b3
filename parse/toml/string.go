package toml

import "strings"

// parseStringValue dispatches on the opening delimiter: triple quotes
// start a multiline string, single quotes a single-line one; `"` selects
// the basic (escaped) flavor and `'` the literal (raw) flavor. Grounded
// on original_source/src/parser/string.rs's `parse_string` dispatch.
func parseStringValue(c *cursor, src []byte) (*Value, *Error) {
	switch {
	case c.at(`"""`):
		return parseMultilineBasicStringValue(c, src)
	case c.at(`'''`):
		return parseMultilineLiteralStringValue(c, src)
	case c.at(`"`):
		return parseBasicStringValue(c, src)
	case c.at(`'`):
		return parseLiteralStringValue(c, src)
	}
	return nil, newError(src, c.span(c.pos), ErrUnrecognisedValue)
}

// parseBasicStringValue parses a single-line `"..."` string. It stays
// zero-copy (a borrowed StringView) unless an escape sequence forces
// decoding into an owned buffer.
func parseBasicStringValue(c *cursor, src []byte) (*Value, *Error) {
	start := c.pos
	c.advance()
	contentStart := c.pos
	for {
		cur, ok := c.peek()
		if !ok || cur == '\n' {
			return nil, newError(src, c.span(start), ErrUnclosedBasicString)
		}
		if cur == '"' {
			text := c.sliceRange(contentStart, c.pos)
			c.advance()
			return newStringValue(borrowedString(text)), nil
		}
		if cur == '\\' {
			return finishBasicStringWithEscapes(c, src, start, contentStart)
		}
		c.advance()
	}
}

func finishBasicStringWithEscapes(c *cursor, src []byte, start, contentStart int) (*Value, *Error) {
	var b strings.Builder
	b.WriteString(c.sliceRange(contentStart, c.pos))
	for {
		cur, ok := c.peek()
		if !ok || cur == '\n' {
			return nil, newError(src, c.span(start), ErrUnclosedBasicString)
		}
		if cur == '"' {
			c.advance()
			return newStringValue(ownedString(b.String())), nil
		}
		if cur == '\\' {
			c.advance()
			s, err := decodeEscape(c, src)
			if err != nil {
				return nil, err
			}
			b.WriteString(s)
			continue
		}
		b.WriteByte(cur)
		c.advance()
	}
}

// parseLiteralStringValue parses a single-line `'...'` string. Literal
// strings never process escapes, so this is always zero-copy.
func parseLiteralStringValue(c *cursor, src []byte) (*Value, *Error) {
	start := c.pos
	c.advance()
	contentStart := c.pos
	for {
		cur, ok := c.peek()
		if !ok || cur == '\n' {
			return nil, newError(src, c.span(start), ErrUnclosedLiteralString)
		}
		if cur == '\'' {
			text := c.sliceRange(contentStart, c.pos)
			c.advance()
			return newStringValue(borrowedString(text)), nil
		}
		c.advance()
	}
}

// trySkipLineEndingBackslash consumes a backslash-newline continuation:
// any trailing inline whitespace, the newline itself, and all further
// whitespace/newlines up to the next non-whitespace byte. Reports
// whether such a continuation was found; leaves the cursor untouched
// otherwise.
func trySkipLineEndingBackslash(c *cursor) bool {
	save := c.pos
	for {
		b, ok := c.peek()
		if !ok {
			break
		}
		switch b {
		case ' ', '\t', '\r':
			c.advance()
			continue
		case '\n':
			c.advance()
			for {
				b2, ok2 := c.peek()
				if !ok2 || (b2 != ' ' && b2 != '\t' && b2 != '\n' && b2 != '\r') {
					break
				}
				c.advance()
			}
			return true
		}
		break
	}
	c.pos = save
	return false
}

// parseMultilineBasicStringValue parses a `"""..."""` string: a leading
// newline right after the opening delimiter is trimmed, a trailing
// backslash-newline is a line continuation that consumes, and the
// closing delimiter may be preceded by up to two literal quote
// characters (spec's "up to 5 consecutive quotes" extension).
func parseMultilineBasicStringValue(c *cursor, src []byte) (*Value, *Error) {
	start := c.pos
	c.advanceN(3)
	if c.at("\r\n") {
		c.advanceN(2)
	} else if b, ok := c.peek(); ok && b == '\n' {
		c.advance()
	}

	var b strings.Builder
	for {
		if c.done() {
			return nil, newError(src, c.span(start), ErrUnclosedBasicString)
		}
		cur, _ := c.peek()
		if cur == '"' {
			run := 1
			for {
				b2, ok := c.peekAt(run)
				if ok && b2 == '"' {
					run++
					continue
				}
				break
			}
			if run >= 3 {
				if run > 5 {
					run = 5
				}
				contentQuotes := run - 3
				for i := 0; i < contentQuotes; i++ {
					b.WriteByte('"')
				}
				c.advanceN(run)
				return newStringValue(ownedString(b.String())), nil
			}
			for i := 0; i < run; i++ {
				b.WriteByte('"')
			}
			c.advanceN(run)
			continue
		}
		if cur == '\\' {
			c.advance()
			if trySkipLineEndingBackslash(c) {
				continue
			}
			s, err := decodeEscape(c, src)
			if err != nil {
				return nil, err
			}
			b.WriteString(s)
			continue
		}
		b.WriteByte(cur)
		c.advance()
	}
}

// parseMultilineLiteralStringValue parses a `'''...'''` string: same
// leading-newline trim and up-to-5-quotes closing rule as the basic
// form, but with no escape processing, so it stays zero-copy.
func parseMultilineLiteralStringValue(c *cursor, src []byte) (*Value, *Error) {
	start := c.pos
	c.advanceN(3)
	if c.at("\r\n") {
		c.advanceN(2)
	} else if b, ok := c.peek(); ok && b == '\n' {
		c.advance()
	}
	contentStart := c.pos

	for {
		if c.done() {
			return nil, newError(src, c.span(start), ErrUnclosedLiteralString)
		}
		cur, _ := c.peek()
		if cur == '\'' {
			run := 1
			for {
				b2, ok := c.peekAt(run)
				if ok && b2 == '\'' {
					run++
					continue
				}
				break
			}
			if run >= 3 {
				if run > 5 {
					run = 5
				}
				contentQuotes := run - 3
				end := c.pos + contentQuotes
				text := c.sliceRange(contentStart, end)
				c.advanceN(run)
				return newStringValue(borrowedString(text)), nil
			}
		}
		c.advance()
	}
}
