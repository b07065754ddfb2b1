package apperrors

import "net/http"

// Domain error factories. Status codes follow the observable API contract:
// a duplicate registration and a failed credential check are both plain 400s,
// and the credential failure is deliberately identical whether the account
// exists or not.

// ErrInvalidEmail rejects an empty or malformed email at user creation.
func ErrInvalidEmail(message string) *AppError {
	return New(CodeValidationFailed, "user", message, http.StatusBadRequest)
}

// ErrDuplicateEmail rejects a registration for an already-taken email.
func ErrDuplicateEmail(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "user", "User with this email already exists", http.StatusBadRequest)
}

// ErrInvalidCredentials is the uniform token-issuance failure. It must not
// reveal whether the account exists.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Unable to authenticate with provided credentials",
	http.StatusBadRequest,
)

