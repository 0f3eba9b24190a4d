package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Migrate creates the schema if it does not exist yet. average_rating is not
// stored on games; it is computed at read time from reviews.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS games (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		category_id UUID REFERENCES categories(id) ON DELETE SET NULL,
		image_url TEXT NOT NULL,
		owner_id UUID REFERENCES users(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		game_id UUID NOT NULL REFERENCES games(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		review_text TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS comments (
		id UUID PRIMARY KEY,
		review_id UUID NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		comment_text TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reports (
		id UUID PRIMARY KEY,
		reporter_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		review_id UUID REFERENCES reviews(id) ON DELETE CASCADE,
		comment_id UUID REFERENCES comments(id) ON DELETE CASCADE,
		reason TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CHECK (review_id IS NOT NULL OR comment_id IS NOT NULL)
	);
	`
	_, err := pool.Exec(ctx, schema)
	return err
}
