package toml

// cursor walks the input byte string with a mutable offset. It owns no
// other state; every sub-parser takes a *cursor and advances it in place.
type cursor struct {
	src []byte
	pos int
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.src)
}

// peek returns the byte at the current position, or (0, false) at EOF.
func (c *cursor) peek() (byte, bool) {
	return c.peekAt(0)
}

// peekAt returns the byte k positions ahead of the cursor.
func (c *cursor) peekAt(k int) (byte, bool) {
	idx := c.pos + k
	if idx < 0 || idx >= len(c.src) {
		return 0, false
	}
	return c.src[idx], true
}

// peek3 returns up to the next three bytes as a string, for delimiter
// sniffing (e.g. distinguishing `'` from `'''`).
func (c *cursor) peek3() string {
	end := c.pos + 3
	if end > len(c.src) {
		end = len(c.src)
	}
	return string(c.src[c.pos:end])
}

// at reports whether the next len(lit) bytes equal lit exactly.
func (c *cursor) at(lit string) bool {
	end := c.pos + len(lit)
	if end > len(c.src) {
		return false
	}
	return string(c.src[c.pos:end]) == lit
}

func (c *cursor) advance() {
	c.pos++
}

func (c *cursor) advanceN(n int) {
	c.pos += n
}

// skipWhitespace consumes space, tab, LF, CR, and `#`-comments (to the
// next LF). Used between top-level statements and inside array structural
// whitespace, where newlines are not significant.
func (c *cursor) skipWhitespace() {
	for {
		b, ok := c.peek()
		if !ok {
			return
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			c.advance()
		case '#':
			for {
				b, ok := c.peek()
				if !ok || b == '\n' {
					break
				}
				c.advance()
			}
		default:
			return
		}
	}
}

// skipInlineWhitespace consumes only space and tab; it never crosses a
// newline. Used in key-value assignments and inline tables.
func (c *cursor) skipInlineWhitespace() {
	for {
		b, ok := c.peek()
		if !ok || (b != ' ' && b != '\t') {
			return
		}
		c.advance()
	}
}

// sliceFrom returns the substring from start (inclusive) to the cursor's
// current position (exclusive).
func (c *cursor) sliceFrom(start int) string {
	return string(c.src[start:c.pos])
}

// sliceFromToLast returns the substring from start (inclusive) to the
// byte just before the cursor's current position.
func (c *cursor) sliceFromToLast(start int) string {
	end := c.pos - 1
	if end < start {
		return ""
	}
	return string(c.src[start:end])
}

// sliceRange returns src[start:end) as a string.
func (c *cursor) sliceRange(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(c.src) {
		end = len(c.src)
	}
	if end < start {
		return ""
	}
	return string(c.src[start:end])
}

// span builds an inclusive-inclusive diagnostic span from start to the
// current position minus one (for "start up to, but not including,
// current"), clamped to stay inside the input.
func (c *cursor) span(start int) span {
	end := c.pos - 1
	if end < start {
		end = start
	}
	if end >= len(c.src) {
		end = len(c.src) - 1
	}
	return span{start: start, end: end}
}

// spanTo builds an inclusive span from start to the current position
// (inclusive of the current byte), for callers that want to include the
// byte the cursor is sitting on.
func (c *cursor) spanTo(start int) span {
	end := c.pos
	if end >= len(c.src) {
		end = len(c.src) - 1
	}
	if end < start {
		end = start
	}
	return span{start: start, end: end}
}
