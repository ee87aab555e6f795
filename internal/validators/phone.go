package validators

import "strings"

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// NormalizePhone strips common separators and keeps digits plus an optional
// leading "+". It reports false when the result is not a plausible number.
func NormalizePhone(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	digits := 0
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return "", false
		}
	}

	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return "", false
	}
	return b.String(), true
}
