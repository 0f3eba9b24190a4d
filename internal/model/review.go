package model

type Review struct {
	ID         string `json:"id"`
	GameID     string `json:"game_id"`
	UserID     string `json:"user_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
	// Username is populated on joined reads (game detail, profile listings).
	Username string `json:"username,omitempty"`
	// GameTitle is populated on per-user listings.
	GameTitle string `json:"game_title,omitempty"`
}
