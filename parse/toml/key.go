package toml

import (
	"strings"
	"unicode/utf8"
)

// keySegment is one dot-separated piece of a key, with its decoded text
// and the span it occupied in the source (for ReusedKey/etc diagnostics
// raised during table construction). Grounded on original_source's
// `Key{text, child}` linked list (src/types.rs), flattened into a slice
// since Go has no lifetime to thread through a recursive struct here.
type keySegment struct {
	text string
	sp   span
}

type dottedKey []keySegment

func isBareKeyByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// parseBareKey consumes a run of [A-Za-z0-9_-] bytes.
func parseBareKey(c *cursor, src []byte) (keySegment, *Error) {
	start := c.pos
	for {
		b, ok := c.peek()
		if !ok || !isBareKeyByte(b) {
			break
		}
		c.advance()
	}
	if c.pos == start {
		return keySegment{}, newError(src, c.span(start), ErrNoKeyInAssignment)
	}
	return keySegment{text: c.sliceFrom(start), sp: c.span(start)}, nil
}

// decodeUnicodeEscape reads exactly `digits` hex digits and returns the
// scalar value they encode, rejecting surrogates and out-of-range values.
func decodeUnicodeEscape(c *cursor, src []byte, digits int) (rune, *Error) {
	start := c.pos
	val := 0
	for i := 0; i < digits; i++ {
		b, ok := c.peek()
		if !ok {
			return 0, newError(src, c.span(start), ErrUnknownUnicodeScalar)
		}
		var d int
		switch {
		case b >= '0' && b <= '9':
			d = int(b - '0')
		case b >= 'a' && b <= 'f':
			d = int(b-'a') + 10
		case b >= 'A' && b <= 'F':
			d = int(b-'A') + 10
		default:
			return 0, newError(src, c.span(start), ErrUnknownUnicodeScalar)
		}
		val = val*16 + d
		c.advance()
	}
	if val > utf8.MaxRune || (val >= 0xD800 && val <= 0xDFFF) {
		return 0, newError(src, c.span(start), ErrUnknownUnicodeScalar)
	}
	return rune(val), nil
}

// decodeEscape is called with the cursor positioned just after a `\` in a
// basic (non-literal) string or quoted key. Shared by key.go and
// string.go, per original_source/src/parser/string.rs's single
// `string_escape` routine used by both the basic-string and
// multiline-basic-string parsers.
func decodeEscape(c *cursor, src []byte) (string, *Error) {
	start := c.pos
	b, ok := c.peek()
	if !ok {
		return "", newError(src, c.span(start), ErrUnknownEscapeSequence)
	}
	switch b {
	case 'b':
		c.advance()
		return "\b", nil
	case 't':
		c.advance()
		return "\t", nil
	case 'n':
		c.advance()
		return "\n", nil
	case 'f':
		c.advance()
		return "\f", nil
	case 'r':
		c.advance()
		return "\r", nil
	case '"':
		c.advance()
		return "\"", nil
	case '\\':
		c.advance()
		return "\\", nil
	case 'u':
		c.advance()
		r, err := decodeUnicodeEscape(c, src, 4)
		if err != nil {
			return "", err
		}
		return string(r), nil
	case 'U':
		c.advance()
		r, err := decodeUnicodeEscape(c, src, 8)
		if err != nil {
			return "", err
		}
		return string(r), nil
	default:
		return "", newError(src, c.span(start), ErrUnknownEscapeSequence)
	}
}

// parseQuotedKeySegment parses a single-line quoted key: a literal
// (single-quoted, no escapes) or basic (double-quoted, with escapes) key
// segment. Multiline quoting is not legal in key position.
func parseQuotedKeySegment(c *cursor, src []byte) (keySegment, *Error) {
	start := c.pos
	quote, _ := c.peek()
	c.advance()

	var b strings.Builder
	for {
		cur, ok := c.peek()
		if !ok || cur == '\n' {
			return keySegment{}, newError(src, c.span(start), ErrUnclosedQuotedKey)
		}
		if cur == quote {
			c.advance()
			break
		}
		if quote == '"' && cur == '\\' {
			c.advance()
			s, err := decodeEscape(c, src)
			if err != nil {
				return keySegment{}, err
			}
			b.WriteString(s)
			continue
		}
		b.WriteByte(cur)
		c.advance()
	}
	return keySegment{text: b.String(), sp: c.span(start)}, nil
}

// parseKeySegment dispatches on the next byte: a quote starts a quoted
// key, otherwise it must be a bare key.
func parseKeySegment(c *cursor, src []byte) (keySegment, *Error) {
	b, ok := c.peek()
	if !ok {
		return keySegment{}, newError(src, c.span(c.pos), ErrNoKeyInAssignment)
	}
	if b == '"' || b == '\'' {
		return parseQuotedKeySegment(c, src)
	}
	return parseBareKey(c, src)
}

// parseDottedKey parses a full dotted key: one or more key segments
// joined by `.`, with inline whitespace permitted around each dot. A
// bare/quoted key segment appearing right after another with no
// intervening dot is BareKeyHasSpace, not a silent truncation.
func parseDottedKey(c *cursor, src []byte) (dottedKey, *Error) {
	first, err := parseKeySegment(c, src)
	if err != nil {
		return nil, err
	}
	segs := dottedKey{first}

	for {
		c.skipInlineWhitespace()
		b, ok := c.peek()
		if !ok {
			break
		}
		if b == '.' {
			c.advance()
			c.skipInlineWhitespace()
			seg, err := parseKeySegment(c, src)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
			continue
		}
		if isBareKeyByte(b) || b == '"' || b == '\'' {
			return nil, newError(src, c.span(c.pos), ErrBareKeyHasSpace)
		}
		break
	}
	return segs, nil
}
