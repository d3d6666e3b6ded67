package util

// Unquote strips one matching pair of surrounding quotes, either "..." or
// '...', from s.  Strings without a matching pair come back unchanged, and
// only a single layer is removed.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q == '"' || q == '\'') && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}
