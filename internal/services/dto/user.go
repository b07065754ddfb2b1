package dto

// RegisterRequest is the public registration payload.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"max=250"`
}

// UserResponse is returned after registration. It never carries the
// password or its hash.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenRequest is the credential payload for token issuance. The email is
// only required, not format-checked: a malformed address fails the lookup
// and yields the same uniform credentials error.
type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the opaque bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateMeRequest is the partial self-service profile update.
type UpdateMeRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=250"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// MeResponse is the authenticated profile view.
type MeResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
