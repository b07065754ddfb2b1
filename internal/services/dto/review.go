package dto

import "time"

// CreateReviewRequest is the client payload for a new review. Reviewer and
// IP are deliberately absent: they are server-assigned and anything a client
// sends for them is dropped at binding time.
type CreateReviewRequest struct {
	Title   string `json:"title" validate:"required,max=64"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Summary string `json:"summary" validate:"required,max=10000"`
	Company string `json:"company" validate:"required,max=255"`
}

// ReviewResponse mirrors the read-side field list.
type ReviewResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Rating         int       `json:"rating"`
	Summary        string    `json:"summary"`
	SubmissionDate time.Time `json:"submission_date"`
	Company        string    `json:"company"`
}
