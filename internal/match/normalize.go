package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier or container key for fuzzy matching:
// letters are case-folded and separators (_, -, ., spaces) are dropped, so
// "Order_ID", "order-id" and "orderId" all normalize to "orderid".
func NormalizeIdent(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// NormalizeIdentWithSuffixStrip normalizes and strips common suffixes.
// Common tokens to strip: id, ids, at, utc, timestamp.
// Short suffixes like "ts" are not stripped, they are too aggressive.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	// longer suffixes first to avoid partial matches
	for _, suffix := range []string{"timestamp", "ids", "utc", "id", "at"} {
		if strings.HasSuffix(normalized, suffix) && len(normalized) > len(suffix) {
			return strings.TrimSuffix(normalized, suffix)
		}
	}

	return normalized
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
