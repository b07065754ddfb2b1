package models

// AuthToken is an opaque bearer token bound 1:1 to a user. Tokens are reused
// across logins and never expire; the unique index on UserID is what makes
// concurrent issuance resolve to a single row.
type AuthToken struct {
	BaseModel
	UserID string `gorm:"not null;uniqueIndex"`
	Key    string `gorm:"not null;uniqueIndex;size:64"`
}
