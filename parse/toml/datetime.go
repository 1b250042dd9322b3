package toml

// trySniffDateOrTime looks ahead (without committing unless it matches)
// for the two shapes that divert an otherwise-numeric digit run into a
// date/time literal: exactly four digits followed by `-` (a date), or
// exactly two digits followed by `:` (a bare time). Grounded on
// original_source/src/parser/num.rs's leading-zero-run special-casing,
// which spec.md folds into the cursor-level dispatch instead.
func trySniffDateOrTime(c *cursor, src []byte) (*Value, *Error, bool) {
	run := 0
	for {
		b, ok := c.peekAt(run)
		if ok && b >= '0' && b <= '9' {
			run++
			continue
		}
		break
	}
	if run == 4 {
		if b, ok := c.peekAt(4); ok && b == '-' {
			v, err := parseDateValue(c, src)
			return v, err, true
		}
	}
	if run == 2 {
		if b, ok := c.peekAt(2); ok && b == ':' {
			v, err := parseTimeOnlyValue(c, src)
			return v, err, true
		}
	}
	return nil, nil, false
}

// readFixedDigits consumes exactly n ASCII digit bytes. A digit run
// shorter than n raises missingKind; a run longer than n (an extra digit
// immediately following) raises DateTimeTooManyDigits.
func readFixedDigits(c *cursor, src []byte, n int, missingKind ErrorKind) (int, *Error) {
	start := c.pos
	val := 0
	for i := 0; i < n; i++ {
		b, ok := c.peek()
		if !ok || b < '0' || b > '9' {
			return 0, newError(src, c.span(start), missingKind)
		}
		val = val*10 + int(b-'0')
		c.advance()
	}
	if b, ok := c.peek(); ok && b >= '0' && b <= '9' {
		return 0, newError(src, c.span(start), ErrDateTimeTooManyDigits)
	}
	return val, nil
}

// parseDateValue parses a Date, and continues on into Time/OffsetDateTime
// if a date/time separator (`T`, `t`, or a space) followed by a digit
// appears next. Grounded on original_source/src/parser/time.rs's
// `parse_date`.
func parseDateValue(c *cursor, src []byte) (*Value, *Error) {
	start := c.pos
	year, err := readFixedDigits(c, src, 4, ErrInvalidNumber)
	if err != nil {
		return nil, err
	}
	if !c.at("-") {
		return nil, newError(src, c.span(start), ErrDateMissingDash)
	}
	c.advance()
	month, err := readFixedDigits(c, src, 2, ErrDateMissingMonth)
	if err != nil {
		return nil, err
	}
	if !c.at("-") {
		return nil, newError(src, c.span(start), ErrDateMissingDash)
	}
	c.advance()
	day, err := readFixedDigits(c, src, 2, ErrDateMissingDay)
	if err != nil {
		return nil, err
	}
	date := Date{Year: year, Month: month, MonthDay: day}

	sep, ok := c.peek()
	if ok && (sep == 'T' || sep == 't' || sep == ' ') {
		if nb, ok2 := c.peekAt(1); ok2 && nb >= '0' && nb <= '9' {
			c.advance()
			tm, err := parseTimeOfDay(c, src)
			if err != nil {
				return nil, err
			}
			offset, hasOffset, err := tryParseOffset(c, src)
			if err != nil {
				return nil, err
			}
			if hasOffset {
				return newOffsetDateTimeValue(OffsetDateTime{Offset: offset, Date: date, Time: tm}), nil
			}
			return newDateTimeValue(DateTime{Date: date, Time: tm}), nil
		}
	}
	return newDateValue(date), nil
}

// parseTimeOnlyValue parses a bare (local) time with no date component.
func parseTimeOnlyValue(c *cursor, src []byte) (*Value, *Error) {
	tm, err := parseTimeOfDay(c, src)
	if err != nil {
		return nil, err
	}
	return newTimeValue(tm), nil
}

// parseTimeOfDay parses hour:minute:second with an optional fractional
// second. spec.md specifies 9 digits of nanosecond precision with digits
// beyond 9 consumed but discarded: this deliberately departs from
// original_source/src/parser/time.rs's NANOSECOND_DIGIT = 8 constant.
func parseTimeOfDay(c *cursor, src []byte) (Time, *Error) {
	start := c.pos
	hour, err := readFixedDigits(c, src, 2, ErrInvalidNumber)
	if err != nil {
		return Time{}, err
	}
	if !c.at(":") {
		return Time{}, newError(src, c.span(start), ErrTimeMissingColon)
	}
	c.advance()
	minute, err := readFixedDigits(c, src, 2, ErrTimeMissingMinute)
	if err != nil {
		return Time{}, err
	}
	if !c.at(":") {
		return Time{}, newError(src, c.span(start), ErrTimeMissingColon)
	}
	c.advance()
	second, err := readFixedDigits(c, src, 2, ErrTimeMissingSecond)
	if err != nil {
		return Time{}, err
	}

	nanos := 0
	if b, ok := c.peek(); ok && b == '.' {
		c.advance()
		digitsStart := c.pos
		magnitude := 0
		digitCount := 0
		for {
			b2, ok2 := c.peek()
			if !ok2 || b2 < '0' || b2 > '9' {
				break
			}
			if digitCount < 9 {
				magnitude = magnitude*10 + int(b2-'0')
			}
			digitCount++
			c.advance()
		}
		if digitCount == 0 {
			return Time{}, newError(src, c.span(digitsStart), ErrInvalidNumber)
		}
		used := digitCount
		if used > 9 {
			used = 9
		}
		for i := used; i < 9; i++ {
			magnitude *= 10
		}
		nanos = magnitude
	}
	return Time{Hour: hour, Minute: minute, Second: second, Nanosecond: nanos}, nil
}

// tryParseOffset parses an optional `Z`/`z` or `+HH:MM`/`-HH:MM` suffix.
func tryParseOffset(c *cursor, src []byte) (Offset, bool, *Error) {
	b, ok := c.peek()
	if !ok {
		return Offset{}, false, nil
	}
	if b == 'Z' || b == 'z' {
		c.advance()
		return Offset{}, true, nil
	}
	if b == '+' || b == '-' {
		sign := 1
		if b == '-' {
			sign = -1
		}
		c.advance()
		hour, err := readFixedDigits(c, src, 2, ErrOffsetMissingHour)
		if err != nil {
			return Offset{}, false, err
		}
		if !c.at(":") {
			return Offset{}, false, newError(src, c.span(c.pos), ErrOffsetMissingMinute)
		}
		c.advance()
		minute, err := readFixedDigits(c, src, 2, ErrOffsetMissingMinute)
		if err != nil {
			return Offset{}, false, err
		}
		return Offset{Hour: sign * hour, Minute: minute}, true, nil
	}
	return Offset{}, false, nil
}
