package convention

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToCamel converts s to camelCase.
// Examples:
//   - "WallOfChina" -> "wallOfChina"
//   - "nothing_new" -> "nothingNew"
//   - "ID" -> "id"
func ToCamel(s string) string {
	if s == "" {
		return ""
	}

	parts := splitIgnored(s)
	if len(parts) == 1 {
		return camelSimple(s)
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i, p := range parts {
		if i == 0 {
			sb.WriteString(camelSimple(p))
			continue
		}

		sb.WriteString(pascalSimple(p))
	}

	return sb.String()
}

// ToPascal converts s to PascalCase.
// Examples:
//   - "wallOfChina" -> "WallOfChina"
//   - "HTTPServer" -> "HttpServer"
//   - "nothing-new" -> "NothingNew"
func ToPascal(s string) string {
	if s == "" {
		return ""
	}

	parts := splitIgnored(s)
	if len(parts) == 1 {
		return pascalSimple(s)
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for _, p := range parts {
		sb.WriteString(pascalSimple(p))
	}

	return sb.String()
}

// ToScreaming converts s to SCREAMING_CASE.
// Examples:
//   - "WallOfChina" -> "WALL_OF_CHINA"
//   - "wall of china" -> "WALL_OF_CHINA"
func ToScreaming(s string) string {
	return screaming(s, '_')
}

// ToDash converts s to dash-case, treating anything that is not a letter or a
// digit as a word break.
// Examples:
//   - "WallOfChina" -> "wall-of-china"
//   - "wall_of__china" -> "wall-of-china"
func ToDash(s string) string {
	return dash(s, '-')
}

// ToLower lowers every letter of s without splitting words.
func ToLower(s string) string {
	return strings.ToLower(s)
}

func screaming(s string, sep rune) string {
	if s == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(s) + 4)

	var last rune
	written := false

	for _, r := range strings.TrimSpace(s) {
		upper := unicode.ToUpper(r)
		isSpace := unicode.IsSpace(r)

		switch {
		case isSpace && written:
			if unicode.IsLetter(last) || unicode.IsDigit(last) {
				sb.WriteRune(sep)
				last = sep
			}
		case !written:
			if isSpace {
				last = 0
				continue
			}
			sb.WriteRune(upper)
			last, written = r, true
		case r == sep || last == sep:
			if r != last {
				sb.WriteRune(upper)
			}
			last = r
		case (unicode.IsLower(last) || !unicode.IsLetter(last)) && unicode.IsUpper(r):
			sb.WriteRune(sep)
			sb.WriteRune(upper)
			last = r
		default:
			sb.WriteRune(upper)
			last = r
		}
	}

	return sb.String()
}

func dash(s string, sep rune) string {
	if s == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(s) + 4)

	var last rune
	written := false

	for _, r := range s {
		lower := unicode.ToLower(r)
		ignore := (!unicode.IsDigit(r) && !unicode.IsLetter(r)) || r == '_'

		switch {
		case ignore && written:
			// pending word break, emitted before the next content rune
			last = sep
		case !written:
			if ignore {
				last = 0
				continue
			}
			sb.WriteRune(lower)
			last, written = r, true
		case last == sep:
			sb.WriteRune(sep)
			sb.WriteRune(lower)
			last = r
		case unicode.IsUpper(r) && !unicode.IsUpper(last):
			sb.WriteRune(sep)
			sb.WriteRune(lower)
			last = r
		default:
			sb.WriteRune(lower)
			last = r
		}
	}

	return sb.String()
}

// splitIgnored splits on every rune outside [a-zA-Z0-9], keeping empty parts.
func splitIgnored(s string) []string {
	var parts []string

	start := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		if !isASCIIAlnum(r) {
			parts = append(parts, s[start:i])
			start = i + width
		}
		i += width
	}

	return append(parts, s[start:])
}

func isASCIIAlnum(r rune) bool {
	return isASCIIUpper(r) || isASCIILower(r) || ('0' <= r && r <= '9')
}

func isASCIIUpper(r rune) bool { return 'A' <= r && r <= 'Z' }

func isASCIILower(r rune) bool { return 'a' <= r && r <= 'z' }

func isASCIILetter(r rune) bool { return isASCIIUpper(r) || isASCIILower(r) }

// camelSimple lowers the leading uppercase run.
func camelSimple(s string) string {
	if s == "" {
		return ""
	}

	n := leadingRun(s, isASCIIUpper)
	if n == 0 {
		return s
	}

	return strings.ToLower(s[:n]) + s[n:]
}

// pascalSimple splits s on case transitions and capitalizes every piece.
// A piece that starts with a single uppercase letter is kept as is, acronym
// runs are reduced to a leading capital ("HTTP" -> "Http").
func pascalSimple(s string) string {
	if s == "" {
		return ""
	}

	pieces := splitCaseTransitions(s)
	if len(pieces) > 1 {
		var sb strings.Builder
		sb.Grow(len(s))

		for _, p := range pieces {
			sb.WriteString(pascalSimple(p))
		}

		return sb.String()
	}

	if leadingRun(s, isASCIILower) == 0 && leadingRun(s, isASCIIUpper) <= 1 {
		return s
	}

	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

// splitCaseTransitions splits between two runes a and b (with c following b) when:
//   - a is upper and b is upper followed by a lower c ("HTTPServer" -> "HTTP", "Server")
//   - a is not upper and b is upper ("wallOf" -> "wall", "Of")
//   - a is a letter and b is not ("abc1" -> "abc", "1")
func splitCaseTransitions(s string) []string {
	runes := []rune(s)

	var pieces []string

	start := 0

	for i := 1; i < len(runes); i++ {
		a, b := runes[i-1], runes[i]
		hasNextLower := i+1 < len(runes) && isASCIILower(runes[i+1])

		split := (isASCIIUpper(a) && isASCIIUpper(b) && hasNextLower) ||
			(!isASCIIUpper(a) && isASCIIUpper(b)) ||
			(isASCIILetter(a) && !isASCIILetter(b))
		if split {
			pieces = append(pieces, string(runes[start:i]))
			start = i
		}
	}

	return append(pieces, string(runes[start:]))
}

func leadingRun(s string, pred func(rune) bool) int {
	n := 0
	for _, r := range s {
		if !pred(r) {
			break
		}
		n++
	}

	return n
}
