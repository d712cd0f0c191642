package biject

import "strings"

// Clean strips separator and whitespace characters from a string and regroups
// the remainder into chunks of the given size joined by sep. It is a lossy,
// best-effort helper for normalizing human-entered codes ("42AB 17-CD" with
// size 4 becomes "42AB-17CD"): the original separators and grouping cannot be
// recovered, so Clean is deliberately not a Codec and is never covered by the
// round-trip law. A size of 0 disables regrouping.
func Clean(s string, size int, sep string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ' ', '\t', '\n', '\r', '-', '_', '.':
		default:
			b.WriteByte(c)
		}
	}
	stripped := b.String()

	if size <= 0 || sep == "" || len(stripped) <= size {
		return stripped
	}

	var out strings.Builder
	out.Grow(len(stripped) + (len(stripped)/size)*len(sep))
	for i := 0; i < len(stripped); i += size {
		if i > 0 {
			out.WriteString(sep)
		}
		end := i + size
		if end > len(stripped) {
			end = len(stripped)
		}
		out.WriteString(stripped[i:end])
	}
	return out.String()
}
