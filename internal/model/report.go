package model

import "time"

// Report flags a review or a comment for admin attention. Exactly one of
// ReviewID / CommentID is set.
type Report struct {
	ID         string     `json:"id"`
	ReporterID string     `json:"reporter_id"`
	ReviewID   *string    `json:"review_id,omitempty"`
	CommentID  *string    `json:"comment_id,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
