package xmltext

import "strings"

// escapes lists the replacement pairs in application order. The
// ampersand must come first: replacing it later would corrupt the
// entities produced by the other replacements.
var escapes = [...][2]string{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&apos;"},
}

// Escape replaces the five XML reserved characters in s with their
// entity references. The result is safe for element text and for
// double- or single-quoted attribute values.
func Escape(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	for _, e := range escapes {
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	return s
}

// Unescape reverses Escape. Entities are replaced in the opposite
// order, the ampersand last, so that entity text produced from literal
// input round-trips.
func Unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	for i := len(escapes) - 1; i >= 0; i-- {
		s = strings.ReplaceAll(s, escapes[i][1], escapes[i][0])
	}
	return s
}
