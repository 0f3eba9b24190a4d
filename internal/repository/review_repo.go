package repository

import (
	"context"

	"GameReviewAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	DB *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *model.Review) error {
	query := `INSERT INTO reviews (id, game_id, user_id, rating, review_text) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.Exec(ctx, query, rev.ID, rev.GameID, rev.UserID, rev.Rating, rev.ReviewText)
	return translate(err, "review")
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	var rev model.Review
	query := `SELECT id, game_id, user_id, rating, review_text FROM reviews WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&rev.ID, &rev.GameID, &rev.UserID, &rev.Rating, &rev.ReviewText); err != nil {
		return nil, translate(err, "review")
	}
	return &rev, nil
}

func (r *ReviewRepository) ListByGame(ctx context.Context, gameID string) ([]model.Review, error) {
	query := `
		SELECT r.id, r.game_id, r.user_id, r.rating, r.review_text, u.username
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.game_id = $1
		ORDER BY r.id
	`
	rows, err := r.DB.Query(ctx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Review{}
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.GameID, &rev.UserID, &rev.Rating, &rev.ReviewText, &rev.Username); err != nil {
			return nil, err
		}
		list = append(list, rev)
	}
	return list, rows.Err()
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	query := `
		SELECT r.id, r.game_id, r.user_id, r.rating, r.review_text, g.title
		FROM reviews r
		JOIN games g ON r.game_id = g.id
		WHERE r.user_id = $1
		ORDER BY r.id
	`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Review{}
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.GameID, &rev.UserID, &rev.Rating, &rev.ReviewText, &rev.GameTitle); err != nil {
			return nil, err
		}
		list = append(list, rev)
	}
	return list, rows.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, id string, rating int, text string) (*model.Review, error) {
	var rev model.Review
	query := `
		UPDATE reviews SET rating=$1, review_text=$2
		WHERE id=$3
		RETURNING id, game_id, user_id, rating, review_text
	`
	if err := r.DB.QueryRow(ctx, query, rating, text, id).Scan(&rev.ID, &rev.GameID, &rev.UserID, &rev.Rating, &rev.ReviewText); err != nil {
		return nil, translate(err, "review")
	}
	return &rev, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound("review")
	}
	return nil
}

func (r *ReviewRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reviews WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
