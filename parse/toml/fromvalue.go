package toml

import "strconv"

// ConvertErrorKind distinguishes why a FromValue conversion failed.
// Mirrors original_source/src/convert_traits.rs's `FromTomlError`.
type ConvertErrorKind uint8

const (
	ConvertMissing ConvertErrorKind = iota
	ConvertTypeMismatch
	ConvertInvalidKey
)

// ConvertError is returned by FromValue implementations and the built-in
// container adaptors below. Path accumulates the dotted key trail from
// the outermost container down to the field that failed, the way
// original_source's `add_key_context` builds up its error as it
// unwinds out of nested containers.
type ConvertError struct {
	Kind ConvertErrorKind
	Path string
	Got  Kind
}

func (e *ConvertError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "<value>"
	}
	switch e.Kind {
	case ConvertMissing:
		return "toml: " + loc + ": missing value"
	case ConvertTypeMismatch:
		return "toml: " + loc + ": type mismatch, got " + e.Got.String()
	case ConvertInvalidKey:
		return "toml: " + loc + ": invalid key"
	default:
		return "toml: " + loc + ": conversion error"
	}
}

func (e *ConvertError) withKeyContext(key string) *ConvertError {
	path := key
	if e.Path != "" {
		path = key + "." + e.Path
	}
	return &ConvertError{Kind: e.Kind, Path: path, Got: e.Got}
}

// FromValue is the adaptor contract a caller implements to decode a
// Value into a domain type. present distinguishes "key absent" from
// "key present but null-like" (TOML has no null, but present still
// matters for optional fields decoded via FromOptional).
type FromValue interface {
	FromTomlValue(v *Value, present bool) error
}

// FromValueFunc adapts a plain function to the FromValue interface.
type FromValueFunc func(v *Value, present bool) error

func (f FromValueFunc) FromTomlValue(v *Value, present bool) error { return f(v, present) }

// StringFromValue, IntegerFromValue, FloatFromValue, and BooleanFromValue
// are the leaf converters built-in containers below compose with.
func StringFromValue(v *Value, present bool) (string, error) {
	if !present || v == nil {
		return "", &ConvertError{Kind: ConvertMissing}
	}
	s, ok := v.AsString()
	if !ok {
		return "", &ConvertError{Kind: ConvertTypeMismatch, Got: v.Kind}
	}
	return s, nil
}

func IntegerFromValue(v *Value, present bool) (int64, error) {
	if !present || v == nil {
		return 0, &ConvertError{Kind: ConvertMissing}
	}
	i, ok := v.AsInteger()
	if !ok {
		return 0, &ConvertError{Kind: ConvertTypeMismatch, Got: v.Kind}
	}
	return i, nil
}

func FloatFromValue(v *Value, present bool) (float64, error) {
	if !present || v == nil {
		return 0, &ConvertError{Kind: ConvertMissing}
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0, &ConvertError{Kind: ConvertTypeMismatch, Got: v.Kind}
	}
	return f, nil
}

func BooleanFromValue(v *Value, present bool) (bool, error) {
	if !present || v == nil {
		return false, &ConvertError{Kind: ConvertMissing}
	}
	b, ok := v.AsBoolean()
	if !ok {
		return false, &ConvertError{Kind: ConvertTypeMismatch, Got: v.Kind}
	}
	return b, nil
}

// StringViewFromValue is the borrowed-string leaf converter: unlike
// StringFromValue, it hands back the StringView itself (owned or
// borrowed) instead of decoding into a fresh string, matching spec.md's
// "borrowed string" case.
func StringViewFromValue(v *Value, present bool) (StringView, error) {
	if !present || v == nil {
		return StringView{}, &ConvertError{Kind: ConvertMissing}
	}
	sv, ok := v.AsStringView()
	if !ok {
		return StringView{}, &ConvertError{Kind: ConvertTypeMismatch, Got: v.Kind}
	}
	return sv, nil
}

// FromArray adapts an Array Value into a []T, applying convert to each
// element and annotating any failure with its index. Grounded on
// original_source/src/convert_traits.rs's blanket `Vec<T>` impl.
func FromArray[T any](v *Value, present bool, convert func(*Value, bool) (T, error)) ([]T, error) {
	if !present || v == nil {
		return nil, &ConvertError{Kind: ConvertMissing}
	}
	arr, ok := v.AsArray()
	if !ok {
		return nil, &ConvertError{Kind: ConvertTypeMismatch, Got: v.Kind}
	}
	out := make([]T, 0, len(arr))
	for i, elem := range arr {
		t, err := convert(elem, true)
		if err != nil {
			return nil, annotateIndex(err, i)
		}
		out = append(out, t)
	}
	return out, nil
}

// FromOptional adapts a possibly-absent Value into a *T: missing yields
// (nil, nil) rather than an error. Grounded on the `Option<T>` blanket
// impl in original_source/src/convert_traits.rs.
func FromOptional[T any](v *Value, present bool, convert func(*Value, bool) (T, error)) (*T, error) {
	if !present || v == nil {
		return nil, nil
	}
	t, err := convert(v, true)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FromStringMap adapts a Table Value into a map[string]T, applying
// convert to each entry and annotating any failure with its key.
// Grounded on the `HashMap<&str, T>` blanket impl in
// original_source/src/convert_traits.rs.
func FromStringMap[T any](v *Value, present bool, convert func(*Value, bool) (T, error)) (map[string]T, error) {
	if !present || v == nil {
		return nil, &ConvertError{Kind: ConvertMissing}
	}
	tbl, ok := v.AsTable()
	if !ok {
		return nil, &ConvertError{Kind: ConvertTypeMismatch, Got: v.Kind}
	}
	out := make(map[string]T, tbl.Len())
	for _, key := range tbl.Keys() {
		elem, _ := tbl.Get(key)
		t, err := convert(elem, true)
		if err != nil {
			return nil, annotateKey(err, key)
		}
		out[key] = t
	}
	return out, nil
}

func annotateIndex(err error, i int) error {
	if ce, ok := err.(*ConvertError); ok {
		return ce.withKeyContext("[" + strconv.Itoa(i) + "]")
	}
	return err
}

func annotateKey(err error, key string) error {
	if ce, ok := err.(*ConvertError); ok {
		return ce.withKeyContext(key)
	}
	return err
}
