package toml

// matchesKeyword reports whether kw sits at the cursor AND is not
// immediately followed by another bare-key byte, so `trueish` is not
// mistaken for the boolean `true` followed by garbage.
func matchesKeyword(c *cursor, kw string) bool {
	if !c.at(kw) {
		return false
	}
	next, ok := c.peekAt(len(kw))
	if ok && isBareKeyByte(next) {
		return false
	}
	return true
}

// parseValue dispatches on the first byte of a value per spec §4.9,
// grounded on original_source/src/parser/value.rs's `parse_value`.
func parseValue(c *cursor, src []byte) (*Value, *Error) {
	b, ok := c.peek()
	if !ok {
		return nil, newError(src, c.span(c.pos), ErrNoValueInAssignment)
	}

	switch {
	case b == '"' || b == '\'':
		return parseStringValue(c, src)
	case b == '[':
		return parseArrayValue(c, src)
	case b == '{':
		return parseInlineTableValue(c, src)
	case matchesKeyword(c, "true"):
		c.advanceN(4)
		return newBoolValue(true), nil
	case matchesKeyword(c, "false"):
		c.advanceN(5)
		return newBoolValue(false), nil
	case b == '+' || b == '-':
		signStart := c.pos
		sign := parseSign(c)
		return parseSignedNumber(c, src, signStart, sign)
	case matchesKeyword(c, "inf") || matchesKeyword(c, "nan"):
		v, _ := tryParseInfOrNan(c)
		return v, nil
	case b >= '0' && b <= '9':
		return parseUnsignedNumberOrDateTime(c, src)
	default:
		return nil, newError(src, c.span(c.pos), ErrUnrecognisedValue)
	}
}
