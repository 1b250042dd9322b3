package toml

// Kind tags the variant a Value holds. It is the Go rendition of the
// tagged union `TomlValue` in original_source/src/types.rs.
type Kind uint8

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindTime
	KindDate
	KindDateTime
	KindOffsetDateTime
	KindArray
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindTime:
		return "time"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindOffsetDateTime:
		return "offset-datetime"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Time is an RFC-3339-shaped local time. No range validation is performed
// by this layer (see spec's date/time Non-goals): hour/minute/second/
// nanosecond are stored exactly as parsed.
type Time struct {
	Hour, Minute, Second int
	Nanosecond           int
}

// Date is an RFC-3339-shaped local date, shape-only (no leap-year or
// day-of-month validation).
type Date struct {
	Year       int
	Month      int
	MonthDay   int
}

// DateTime pairs a Date and a Time with no offset (TOML's "local date-time").
type DateTime struct {
	Date Date
	Time Time
}

// Offset is a UTC offset; the sign lives on Hour per spec.
type Offset struct {
	Hour   int // signed
	Minute int // unsigned; sign is carried by Hour
}

// OffsetDateTime is a DateTime with a UTC offset ("offset date-time").
type OffsetDateTime struct {
	Offset Offset
	Date   Date
	Time   Time
}

// Value is a tagged union of every TOML value kind. Exactly one group of
// fields is meaningful, selected by Kind; accessor methods below are the
// "attempt as T" API spec.md's External Interfaces section calls for.
type Value struct {
	Kind Kind

	str    StringView
	i64    int64
	f64    float64
	b      bool
	tm     Time
	dt     Date
	dttm   DateTime
	offdt  OffsetDateTime
	arr    []*Value
	arrTbl bool // true when this Array was produced by [[header]] appends
	tbl    *Table
}

func newStringValue(s StringView) *Value   { return &Value{Kind: KindString, str: s} }
func newIntegerValue(i int64) *Value       { return &Value{Kind: KindInteger, i64: i} }
func newFloatValue(f float64) *Value       { return &Value{Kind: KindFloat, f64: f} }
func newBoolValue(b bool) *Value           { return &Value{Kind: KindBoolean, b: b} }
func newTimeValue(t Time) *Value           { return &Value{Kind: KindTime, tm: t} }
func newDateValue(d Date) *Value           { return &Value{Kind: KindDate, dt: d} }
func newDateTimeValue(d DateTime) *Value   { return &Value{Kind: KindDateTime, dttm: d} }
func newOffsetDateTimeValue(d OffsetDateTime) *Value {
	return &Value{Kind: KindOffsetDateTime, offdt: d}
}
func newArrayValue(elems []*Value, isTableArray bool) *Value {
	return &Value{Kind: KindArray, arr: elems, arrTbl: isTableArray}
}
func newTableValue(t *Table) *Value { return &Value{Kind: KindTable, tbl: t} }

// AsString returns the decoded text if this Value is a String.
func (v *Value) AsString() (string, bool) {
	if v == nil || v.Kind != KindString {
		return "", false
	}
	return v.str.String(), true
}

// AsStringView returns the underlying StringView of a String value,
// preserving the borrowed/owned distinction for callers that care.
func (v *Value) AsStringView() (StringView, bool) {
	if v == nil || v.Kind != KindString {
		return StringView{}, false
	}
	return v.str, true
}

func (v *Value) AsInteger() (int64, bool) {
	if v == nil || v.Kind != KindInteger {
		return 0, false
	}
	return v.i64, true
}

func (v *Value) AsFloat() (float64, bool) {
	if v == nil || v.Kind != KindFloat {
		return 0, false
	}
	return v.f64, true
}

func (v *Value) AsBoolean() (bool, bool) {
	if v == nil || v.Kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

func (v *Value) AsTime() (Time, bool) {
	if v == nil || v.Kind != KindTime {
		return Time{}, false
	}
	return v.tm, true
}

func (v *Value) AsDate() (Date, bool) {
	if v == nil || v.Kind != KindDate {
		return Date{}, false
	}
	return v.dt, true
}

func (v *Value) AsDateTime() (DateTime, bool) {
	if v == nil || v.Kind != KindDateTime {
		return DateTime{}, false
	}
	return v.dttm, true
}

func (v *Value) AsOffsetDateTime() (OffsetDateTime, bool) {
	if v == nil || v.Kind != KindOffsetDateTime {
		return OffsetDateTime{}, false
	}
	return v.offdt, true
}

// AsArray returns the element slice if this Value is an Array (including
// one produced by repeated [[header]] appends).
func (v *Value) AsArray() ([]*Value, bool) {
	if v == nil || v.Kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// IsTableArray reports whether this Array was produced by [[header]]
// appends rather than an inline `[ ... ]` literal.
func (v *Value) IsTableArray() bool {
	return v.Kind == KindArray && v.arrTbl
}

func (v *Value) AsTable() (*Table, bool) {
	if v == nil || v.Kind != KindTable {
		return nil, false
	}
	return v.tbl, true
}
