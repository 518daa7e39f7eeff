package profile

import (
	"strings"
	"unicode"
)

const suffixLen = 4

// Username derives the default username of a user: the lowercase alphanumeric
// characters of the email local part followed by the first four alphanumeric
// characters of the user id.
func Username(email, userID string) string {
	local, _, _ := strings.Cut(email, "@")
	base := alnumLower(local, -1)
	if base == "" {
		base = "user"
	}
	return base + alnumLower(userID, suffixLen)
}

// alnumLower keeps at most limit lowercase ASCII letters and digits of s. A negative
// limit keeps all of them.
func alnumLower(s string, limit int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if limit >= 0 && b.Len() >= limit {
			break
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Initial is the uppercase first letter shown in the avatar.
func Initial(displayName, email string) string {
	for _, s := range []string{displayName, email} {
		if s = strings.TrimSpace(s); s != "" {
			return strings.ToUpper(string([]rune(s)[0]))
		}
	}
	return "?"
}
