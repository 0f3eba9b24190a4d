package model

type Game struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CategoryID  *string `json:"category_id,omitempty"`
	ImageURL    string  `json:"image_url"`
	OwnerID     *string `json:"owner_id,omitempty"`
}

// GameDetail is a game joined with its category name and the read-time
// rating aggregate. AverageRating is nil when the game has no reviews;
// a game every reviewer scored low still carries a number.
type GameDetail struct {
	Game
	CategoryName  *string  `json:"category_name"`
	AverageRating *float64 `json:"average_rating"`
}
