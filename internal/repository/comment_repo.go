package repository

import (
	"context"

	"GameReviewAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	DB *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(ctx context.Context, cm *model.Comment) error {
	query := `INSERT INTO comments (id, review_id, user_id, comment_text) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(ctx, query, cm.ID, cm.ReviewID, cm.UserID, cm.CommentText)
	return translate(err, "comment")
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var cm model.Comment
	query := `SELECT id, review_id, user_id, comment_text FROM comments WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&cm.ID, &cm.ReviewID, &cm.UserID, &cm.CommentText); err != nil {
		return nil, translate(err, "comment")
	}
	return &cm, nil
}

func (r *CommentRepository) ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error) {
	query := `
		SELECT c.id, c.review_id, c.user_id, c.comment_text, u.username
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.review_id = $1
		ORDER BY c.id
	`
	rows, err := r.DB.Query(ctx, query, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Comment{}
	for rows.Next() {
		var cm model.Comment
		if err := rows.Scan(&cm.ID, &cm.ReviewID, &cm.UserID, &cm.CommentText, &cm.Username); err != nil {
			return nil, err
		}
		list = append(list, cm)
	}
	return list, rows.Err()
}

func (r *CommentRepository) ListByUser(ctx context.Context, userID string) ([]model.Comment, error) {
	query := `SELECT id, review_id, user_id, comment_text FROM comments WHERE user_id=$1 ORDER BY id`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Comment{}
	for rows.Next() {
		var cm model.Comment
		if err := rows.Scan(&cm.ID, &cm.ReviewID, &cm.UserID, &cm.CommentText); err != nil {
			return nil, err
		}
		list = append(list, cm)
	}
	return list, rows.Err()
}

func (r *CommentRepository) Update(ctx context.Context, id, text string) (*model.Comment, error) {
	var cm model.Comment
	query := `UPDATE comments SET comment_text=$1 WHERE id=$2 RETURNING id, review_id, user_id, comment_text`
	if err := r.DB.QueryRow(ctx, query, text, id).Scan(&cm.ID, &cm.ReviewID, &cm.UserID, &cm.CommentText); err != nil {
		return nil, translate(err, "comment")
	}
	return &cm, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound("comment")
	}
	return nil
}

func (r *CommentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM comments WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
