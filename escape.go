package pullbadge

import "strings"

const upperhex = "0123456789ABCDEF"

// escapeComponent percent-encodes s as one URL path segment. Only ASCII
// letters, digits and -_.!~*'() are left as is, so reserved characters such
// as + @ : = & $ never reach the path unescaped.
func escapeComponent(s string) string {
	return escape(s, "-_.!~*'()", false)
}

// escapeFormValue encodes s as an application/x-www-form-urlencoded value:
// letters, digits and *-._ are kept and a space becomes '+'.
func escapeFormValue(s string) string {
	return escape(s, "*-._", true)
}

func escape(s, keep string, spaceAsPlus bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			sb.WriteByte(c)
		case c < 0x80 && strings.IndexByte(keep, c) >= 0:
			sb.WriteByte(c)
		case c == ' ' && spaceAsPlus:
			sb.WriteByte('+')
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
		}
	}
	return sb.String()
}
