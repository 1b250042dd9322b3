package toml

import (
	"fmt"
	"strings"
)

// span is an inclusive byte range into the input, used by diagnostics.
// Unlike cursor slicing (which is exclusive-ended), span.end is the index
// of the last byte the span covers, matching spec's diagnostic convention.
type span struct {
	start, end int
}

// ErrorKind is the closed set of diagnostics the parser can produce.
type ErrorKind uint8

const (
	// Lexical
	ErrInvalidBareKey ErrorKind = iota
	ErrBareKeyHasSpace
	ErrUnclosedBasicString
	ErrUnclosedLiteralString
	ErrUnclosedQuotedKey
	ErrUnknownEscapeSequence
	ErrUnknownUnicodeScalar

	// Structural
	ErrNoEqualsInAssignment
	ErrNoKeyInAssignment
	ErrNoValueInAssignment
	ErrUnrecognisedValue
	ErrNoCommaDelimeter
	ErrUnclosedTableBracket
	ErrUnclosedArrayOfTablesBracket
	ErrUnclosedInlineTableBracket
	ErrUnclosedArrayBracket

	// Numeric
	ErrNumberTooLarge
	ErrNumberHasInvalidBase
	ErrNumberHasLeadingZero
	ErrInvalidNumber

	// Date/time
	ErrDateTimeTooManyDigits
	ErrDateMissingMonth
	ErrDateMissingDay
	ErrDateMissingDash
	ErrTimeMissingMinute
	ErrTimeMissingSecond
	ErrTimeMissingColon
	ErrOffsetMissingHour
	ErrOffsetMissingMinute

	// Semantic
	ErrReusedKey
)

var errorKindNames = [...]string{
	ErrInvalidBareKey:               "InvalidBareKey",
	ErrBareKeyHasSpace:              "BareKeyHasSpace",
	ErrUnclosedBasicString:          "UnclosedBasicString",
	ErrUnclosedLiteralString:        "UnclosedLiteralString",
	ErrUnclosedQuotedKey:            "UnclosedQuotedKey",
	ErrUnknownEscapeSequence:        "UnknownEscapeSequence",
	ErrUnknownUnicodeScalar:         "UnknownUnicodeScalar",
	ErrNoEqualsInAssignment:         "NoEqualsInAssignment",
	ErrNoKeyInAssignment:            "NoKeyInAssignment",
	ErrNoValueInAssignment:          "NoValueInAssignment",
	ErrUnrecognisedValue:            "UnrecognisedValue",
	ErrNoCommaDelimeter:             "NoCommaDelimeter",
	ErrUnclosedTableBracket:         "UnclosedTableBracket",
	ErrUnclosedArrayOfTablesBracket: "UnclosedArrayOfTablesBracket",
	ErrUnclosedInlineTableBracket:   "UnclosedInlineTableBracket",
	ErrUnclosedArrayBracket:         "UnclosedArrayBracket",
	ErrNumberTooLarge:               "NumberTooLarge",
	ErrNumberHasInvalidBase:         "NumberHasInvalidBase",
	ErrNumberHasLeadingZero:         "NumberHasLeadingZero",
	ErrInvalidNumber:                "InvalidNumber",
	ErrDateTimeTooManyDigits:        "DateTimeTooManyDigits",
	ErrDateMissingMonth:             "DateMissingMonth",
	ErrDateMissingDay:               "DateMissingDay",
	ErrDateMissingDash:              "DateMissingDash",
	ErrTimeMissingMinute:            "TimeMissingMinute",
	ErrTimeMissingSecond:            "TimeMissingSecond",
	ErrTimeMissingColon:             "TimeMissingColon",
	ErrOffsetMissingHour:            "OffsetMissingHour",
	ErrOffsetMissingMinute:          "OffsetMissingMinute",
	ErrReusedKey:                    "ReusedKey",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "UnknownErrorKind"
}

// Error is a diagnostic: a byte range into the input plus a kind tag.
type Error struct {
	Start, End int
	Kind       ErrorKind
	src        []byte
}

func newError(src []byte, sp span, kind ErrorKind) *Error {
	return &Error{Start: sp.start, End: sp.end, Kind: kind, src: src}
}

// Excerpt returns the offending slice of the input the diagnostic points at.
func (e *Error) Excerpt() string {
	if e.src == nil {
		return ""
	}
	start, end := e.Start, e.End
	if start < 0 {
		start = 0
	}
	if end >= len(e.src) {
		end = len(e.src) - 1
	}
	if end < start {
		return ""
	}
	return string(e.src[start : end+1])
}

// Error implements the standard error interface: the kind, the offending
// excerpt, and up to three lines of context above and below the span.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at byte %d..%d: %q", e.Kind, e.Start, e.End, e.Excerpt())
	if e.src != nil {
		before, after := contextLines(e.src, e.Start, e.End, 3)
		if len(before) > 0 {
			b.WriteString("\n--- context before ---\n")
			b.WriteString(strings.Join(before, "\n"))
		}
		if len(after) > 0 {
			b.WriteString("\n--- context after ---\n")
			b.WriteString(strings.Join(after, "\n"))
		}
	}
	return b.String()
}

// contextLines returns up to n lines of text before the line containing
// start, and up to n lines after the line containing end.
func contextLines(src []byte, start, end, n int) (before, after []string) {
	lines := strings.Split(string(src), "\n")
	// Find line index containing start and end by walking cumulative offsets.
	offset := 0
	startLine, endLine := -1, -1
	for i, line := range lines {
		lineEnd := offset + len(line)
		if startLine == -1 && start <= lineEnd {
			startLine = i
		}
		if endLine == -1 && end <= lineEnd {
			endLine = i
		}
		offset = lineEnd + 1
	}
	if startLine == -1 {
		startLine = len(lines) - 1
	}
	if endLine == -1 {
		endLine = len(lines) - 1
	}

	for i := startLine - n; i < startLine; i++ {
		if i >= 0 {
			before = append(before, lines[i])
		}
	}
	for i := endLine + 1; i <= endLine+n; i++ {
		if i < len(lines) {
			after = append(after, lines[i])
		}
	}
	return
}
