package repository

import (
	"context"

	"GameReviewAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (id, username, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	if err := r.DB.QueryRow(ctx, query, u.ID, u.Username, u.Email, u.PasswordHash, u.Role).Scan(&u.CreatedAt); err != nil {
		return translate(err, "user")
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT id, username, email, password_hash, role, created_at FROM users WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		return nil, translate(err, "user")
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	query := `SELECT id, username, email, password_hash, role, created_at FROM users WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		return nil, translate(err, "user")
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, username, email, role, created_at FROM users ORDER BY created_at`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, username, email string) (*model.User, error) {
	var u model.User
	query := `UPDATE users SET username=$1, email=$2 WHERE id=$3 RETURNING id, username, email, role, created_at`
	if err := r.DB.QueryRow(ctx, query, username, email, id).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
		return nil, translate(err, "user")
	}
	return &u, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) (*model.User, error) {
	var u model.User
	query := `UPDATE users SET role=$1 WHERE id=$2 RETURNING id, username, email, role, created_at`
	if err := r.DB.QueryRow(ctx, query, role, id).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
		return nil, translate(err, "user")
	}
	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound("user")
	}
	return nil
}
