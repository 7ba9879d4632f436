package sanitizer

import (
	"net/mail"
	"strings"
)

// EmailAddress reduces a display-name form such as "Jane <jane@example.com>"
// to the bare address. Anything else, including unparseable input, is
// returned unchanged.
func EmailAddress(email string) string {
	if !strings.Contains(email, "<") {
		return email
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return email
	}
	return addr.Address
}
