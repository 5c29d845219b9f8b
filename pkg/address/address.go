// Package address provides structural checks for email addresses.
//
// The checks are intentionally permissive: they reject obviously malformed
// input and never touch the network.
package address

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoDomain is returned by Domain when the address has no "@".
var ErrNoDomain = errors.New("address: missing domain part")

// emailPattern: non-whitespace local part, "@", non-whitespace domain with at
// least one dot. RE2's \s is ASCII only, so the class also excludes \v, every
// Unicode separator (\p{Z}, which covers NBSP and U+2028) and the BOM.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// IsValid reports whether addr looks like an email address.
// It is not RFC 5322 complete; "a..b@c.d" passes.
func IsValid(addr string) bool {
	return emailPattern.MatchString(addr)
}

// Domain returns the part of addr after the final "@", lower-cased.
func Domain(addr string) (string, error) {
	i := strings.LastIndexByte(addr, '@')
	if i < 0 || i == len(addr)-1 {
		return "", ErrNoDomain
	}
	return strings.ToLower(addr[i+1:]), nil
}

// Format builds an RFC 5322 mailbox: "Name <email>", or just email when name is empty.
func Format(name, email string) string {
	if name == "" {
		return email
	}
	return name + " <" + email + ">"
}
