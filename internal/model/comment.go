package model

type Comment struct {
	ID          string `json:"id"`
	ReviewID    string `json:"review_id"`
	UserID      string `json:"user_id"`
	CommentText string `json:"comment_text"`
	Username    string `json:"username,omitempty"`
}
