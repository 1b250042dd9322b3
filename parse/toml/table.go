package toml

// tableOrigin tracks how a Table-valued entry came to exist, so table
// construction can enforce spec's implicit/explicit transition rules
// without reconstructing origin from structure (see DESIGN.md: "tag it
// explicitly", grounded on original_source/src/parser/key.rs's
// Entry-based navigation and src/lib.rs's current_table bookkeeping).
type tableOrigin uint8

const (
	originImplicitDotted tableOrigin = iota
	originExplicitHeader
	originInlineLiteral
	// originArrayElement tags the key that owns an array-of-tables the
	// first time it's created. Re-use of that key is policed via the
	// Array Value's own arrTbl/length fields rather than this tag (an
	// array-of-tables is always re-enterable by [[header]] or rejected
	// by its Kind/arrTbl check alone), so this origin is descriptive
	// bookkeeping, not a branch condition.
	originArrayElement
)

// Table is a map from decoded key text to Value. Insertion order is not
// preserved (spec does not require it).
type Table struct {
	entries map[string]*Value
	origins map[string]tableOrigin
}

func newTable() *Table {
	return &Table{entries: make(map[string]*Value), origins: make(map[string]tableOrigin)}
}

// Get returns the value for a key, or (nil, false) if absent.
func (t *Table) Get(key string) (*Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

func (t *Table) Len() int { return len(t.entries) }

// Keys returns the table's keys in no particular order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// GetErrorKind distinguishes why a typed accessor failed.
type GetErrorKind uint8

const (
	GetMissing GetErrorKind = iota
	GetTypeMismatch
)

// GetError is returned by Table's typed convenience accessors.
type GetError struct {
	Kind     GetErrorKind
	Key      string
	Value    *Value
	WantKind Kind
}

func (e *GetError) Error() string {
	switch e.Kind {
	case GetMissing:
		return "toml: key " + e.Key + " not found"
	default:
		return "toml: key " + e.Key + " is " + e.Value.Kind.String() + ", expected " + e.WantKind.String()
	}
}

func (t *Table) getTyped(key string, want Kind) (*Value, error) {
	v, ok := t.entries[key]
	if !ok {
		return nil, &GetError{Kind: GetMissing, Key: key, WantKind: want}
	}
	if v.Kind != want {
		return nil, &GetError{Kind: GetTypeMismatch, Key: key, Value: v, WantKind: want}
	}
	return v, nil
}

func (t *Table) GetString(key string) (string, error) {
	v, err := t.getTyped(key, KindString)
	if err != nil {
		return "", err
	}
	s, _ := v.AsString()
	return s, nil
}

func (t *Table) GetInteger(key string) (int64, error) {
	v, err := t.getTyped(key, KindInteger)
	if err != nil {
		return 0, err
	}
	i, _ := v.AsInteger()
	return i, nil
}

func (t *Table) GetFloat(key string) (float64, error) {
	v, err := t.getTyped(key, KindFloat)
	if err != nil {
		return 0, err
	}
	f, _ := v.AsFloat()
	return f, nil
}

func (t *Table) GetBoolean(key string) (bool, error) {
	v, err := t.getTyped(key, KindBoolean)
	if err != nil {
		return false, err
	}
	b, _ := v.AsBoolean()
	return b, nil
}

func (t *Table) GetTime(key string) (Time, error) {
	v, err := t.getTyped(key, KindTime)
	if err != nil {
		return Time{}, err
	}
	tm, _ := v.AsTime()
	return tm, nil
}

func (t *Table) GetDate(key string) (Date, error) {
	v, err := t.getTyped(key, KindDate)
	if err != nil {
		return Date{}, err
	}
	d, _ := v.AsDate()
	return d, nil
}

func (t *Table) GetDateTime(key string) (DateTime, error) {
	v, err := t.getTyped(key, KindDateTime)
	if err != nil {
		return DateTime{}, err
	}
	dt, _ := v.AsDateTime()
	return dt, nil
}

func (t *Table) GetOffsetDateTime(key string) (OffsetDateTime, error) {
	v, err := t.getTyped(key, KindOffsetDateTime)
	if err != nil {
		return OffsetDateTime{}, err
	}
	odt, _ := v.AsOffsetDateTime()
	return odt, nil
}

func (t *Table) GetArray(key string) ([]*Value, error) {
	v, err := t.getTyped(key, KindArray)
	if err != nil {
		return nil, err
	}
	a, _ := v.AsArray()
	return a, nil
}

func (t *Table) GetTable(key string) (*Table, error) {
	v, err := t.getTyped(key, KindTable)
	if err != nil {
		return nil, err
	}
	tb, _ := v.AsTable()
	return tb, nil
}

// navigatePrefix walks segments (all but the final one of a dotted key),
// creating implicit Tables as needed. It fails with ReusedKey when a
// segment names something that cannot be descended into: an inline-literal
// table, an array that isn't an array-of-tables, or any scalar value.
func (t *Table) navigatePrefix(src []byte, segs []keySegment) (*Table, *Error) {
	cur := t
	for _, seg := range segs {
		existing, ok := cur.entries[seg.text]
		if !ok {
			nt := newTable()
			cur.entries[seg.text] = newTableValue(nt)
			cur.origins[seg.text] = originImplicitDotted
			cur = nt
			continue
		}

		switch existing.Kind {
		case KindTable:
			if cur.origins[seg.text] == originInlineLiteral {
				return nil, newError(src, seg.sp, ErrReusedKey)
			}
			cur = existing.tbl
		case KindArray:
			if !existing.arrTbl || len(existing.arr) == 0 {
				return nil, newError(src, seg.sp, ErrReusedKey)
			}
			last := existing.arr[len(existing.arr)-1]
			cur = last.tbl
		default:
			return nil, newError(src, seg.sp, ErrReusedKey)
		}
	}
	return cur, nil
}

// insertAssignment inserts a key = value pair, per spec §4.8/§4.9: the
// final segment's slot must be vacant. If the value being inserted is
// itself a Table (only possible via an inline-table literal), it is
// tagged as closed so no later header or dotted key may extend it.
func (t *Table) insertAssignment(src []byte, segs []keySegment, value *Value) *Error {
	parent, err := t.navigatePrefix(src, segs[:len(segs)-1])
	if err != nil {
		return err
	}
	last := segs[len(segs)-1]
	if _, exists := parent.entries[last.text]; exists {
		return newError(src, last.sp, ErrReusedKey)
	}
	parent.entries[last.text] = value
	if value.Kind == KindTable {
		parent.origins[last.text] = originInlineLiteral
	}
	return nil
}

// insertHeader resolves a `[header]` key path, creating implicit tables
// along the way, and returns the table that subsequent key-value lines
// should land in. See spec §4.3.
func (t *Table) insertHeader(src []byte, segs []keySegment) (*Table, *Error) {
	parent, err := t.navigatePrefix(src, segs[:len(segs)-1])
	if err != nil {
		return nil, err
	}
	last := segs[len(segs)-1]
	existing, ok := parent.entries[last.text]
	if !ok {
		nt := newTable()
		parent.entries[last.text] = newTableValue(nt)
		parent.origins[last.text] = originExplicitHeader
		return nt, nil
	}

	switch existing.Kind {
	case KindTable:
		if parent.origins[last.text] == originImplicitDotted {
			parent.origins[last.text] = originExplicitHeader
			return existing.tbl, nil
		}
		return nil, newError(src, last.sp, ErrReusedKey)
	case KindArray:
		if !existing.arrTbl || len(existing.arr) == 0 {
			return nil, newError(src, last.sp, ErrReusedKey)
		}
		return existing.arr[len(existing.arr)-1].tbl, nil
	default:
		return nil, newError(src, last.sp, ErrReusedKey)
	}
}

// insertArrayHeader resolves a `[[header]]` key path: the final segment
// must be vacant or already an array-of-tables, and a fresh Table is
// appended and returned as the new current target. See spec §4.3.
func (t *Table) insertArrayHeader(src []byte, segs []keySegment) (*Table, *Error) {
	parent, err := t.navigatePrefix(src, segs[:len(segs)-1])
	if err != nil {
		return nil, err
	}
	last := segs[len(segs)-1]
	fresh := newTable()

	existing, ok := parent.entries[last.text]
	if !ok {
		parent.entries[last.text] = newArrayValue([]*Value{newTableValue(fresh)}, true)
		parent.origins[last.text] = originArrayElement
		return fresh, nil
	}
	if existing.Kind != KindArray || !existing.arrTbl {
		return nil, newError(src, last.sp, ErrReusedKey)
	}
	existing.arr = append(existing.arr, newTableValue(fresh))
	return fresh, nil
}
