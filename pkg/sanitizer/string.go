package sanitizer

import (
	"net/mail"
	"strings"
	"unicode"
)

// TrimAndNormalize trims s and collapses each run of whitespace to one space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
			continue
		}
		result.WriteRune(r)
		lastWasSpace = false
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeEmail lowercases the domain of a parseable address and strips any
// display name. Unparseable input is returned trimmed but otherwise intact.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return email
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok {
		return addr.Address
	}
	return local + "@" + strings.ToLower(domain)
}

// MaskEmail keeps the first character of the local part and the domain,
// for log lines that must not carry full guest addresses.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(NormalizeEmail(email), "@")
	if !ok || local == "" {
		return ""
	}
	first := []rune(local)[0]
	return string(first) + "***@" + domain
}
