package repository

import (
	"context"
	"fmt"
	"strings"

	"GameReviewAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GameRepository struct {
	DB *pgxpool.Pool
}

func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{DB: db}
}

func (r *GameRepository) Create(ctx context.Context, g *model.Game) error {
	query := `INSERT INTO games (id, title, description, category_id, image_url, owner_id) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.Exec(ctx, query, g.ID, g.Title, g.Description, g.CategoryID, g.ImageURL, g.OwnerID)
	return translate(err, "game")
}

// GetByID joins the category name and computes the rating aggregate at read
// time. AVG over zero rows is NULL, which scans into a nil pointer; the
// aggregate is never defaulted to zero.
func (r *GameRepository) GetByID(ctx context.Context, id string) (*model.GameDetail, error) {
	var g model.GameDetail
	query := `
		SELECT g.id, g.title, g.description, g.category_id, g.image_url, g.owner_id,
		       c.name,
		       (SELECT AVG(rating) FROM reviews WHERE game_id = g.id)
		FROM games g
		LEFT JOIN categories c ON g.category_id = c.id
		WHERE g.id = $1
	`
	if err := r.DB.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Title, &g.Description, &g.CategoryID, &g.ImageURL, &g.OwnerID,
		&g.CategoryName, &g.AverageRating,
	); err != nil {
		return nil, translate(err, "game")
	}
	return &g, nil
}

func (r *GameRepository) List(ctx context.Context, search, categoryID string) ([]model.GameDetail, error) {
	query := `
		SELECT g.id, g.title, g.description, g.category_id, g.image_url, g.owner_id,
		       c.name,
		       (SELECT AVG(rating) FROM reviews WHERE game_id = g.id)
		FROM games g
		LEFT JOIN categories c ON g.category_id = c.id
	`
	var where []string
	var params []any
	if search != "" {
		params = append(params, "%"+strings.ToLower(search)+"%")
		where = append(where, fmt.Sprintf("LOWER(g.title) LIKE $%d", len(params)))
	}
	if categoryID != "" {
		params = append(params, categoryID)
		where = append(where, fmt.Sprintf("g.category_id = $%d", len(params)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY g.title"

	rows, err := r.DB.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.GameDetail{}
	for rows.Next() {
		var g model.GameDetail
		if err := rows.Scan(
			&g.ID, &g.Title, &g.Description, &g.CategoryID, &g.ImageURL, &g.OwnerID,
			&g.CategoryName, &g.AverageRating,
		); err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (r *GameRepository) Update(ctx context.Context, g *model.Game) (*model.Game, error) {
	var out model.Game
	query := `
		UPDATE games SET title=$1, description=$2, category_id=$3, image_url=$4
		WHERE id=$5
		RETURNING id, title, description, category_id, image_url, owner_id
	`
	if err := r.DB.QueryRow(ctx, query, g.Title, g.Description, g.CategoryID, g.ImageURL, g.ID).Scan(
		&out.ID, &out.Title, &out.Description, &out.CategoryID, &out.ImageURL, &out.OwnerID,
	); err != nil {
		return nil, translate(err, "game")
	}
	return &out, nil
}

func (r *GameRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM games WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound("game")
	}
	return nil
}

func (r *GameRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM games WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
