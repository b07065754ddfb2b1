package models

import "time"

// Review is a user-submitted rating of a company. ReviewerID and IP are
// always server-assigned; client input for them is discarded.
type Review struct {
	BaseModel
	Title          string    `gorm:"size:64;not null"`
	Rating         int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Summary        string    `gorm:"size:10000;not null"`
	Company        string    `gorm:"size:255;not null"`
	IP             string    `gorm:"size:45;not null"`
	SubmissionDate time.Time `gorm:"autoCreateTime"`
	ReviewerID     string    `gorm:"not null;index"`

	// Relations
	Reviewer User `gorm:"foreignKey:ReviewerID"`
}
