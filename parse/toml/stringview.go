package toml

// StringView is either a borrowed slice of the original input (no escape
// processing needed) or an owned, decoded string (a single-line basic
// string with escapes, or any multiline basic string). Both forms compare and hash as their decoded
// text, so either can be used interchangeably as a Table key or a String
// value.
//
// This is the Go rendition of the teacher lineage's `TomlString` (see
// original_source/src/toml_string.rs): a borrowed-vs-owned sum type that
// behaves like a plain string to callers. Go has no borrow checker, so
// "borrowed" here just means "a substring of the original []byte/string
// without a fresh allocation" rather than a lifetime-tracked reference.
type StringView struct {
	owned bool
	text  string // always holds the decoded text, borrowed or owned
}

// borrowedString builds a StringView that references the input directly.
func borrowedString(s string) StringView {
	return StringView{owned: false, text: s}
}

// ownedString builds a StringView holding freshly allocated, decoded text.
func ownedString(s string) StringView {
	return StringView{owned: true, text: s}
}

// String returns the decoded text, regardless of storage.
func (s StringView) String() string {
	return s.text
}

// IsOwned reports whether this view required allocation to produce.
func (s StringView) IsOwned() bool {
	return s.owned
}
