package utils

import (
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email address")

// NormalizeEmail lower-cases the domain part of an email address. The local
// part is kept as-is because local-part case sensitivity is up to the
// receiving mail server.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", ErrInvalidEmail
	}

	local, domain := email[:at], email[at+1:]
	return local + "@" + strings.ToLower(domain), nil
}
