package repository

import (
	"context"

	"GameReviewAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepository struct {
	DB *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(ctx context.Context, rp *model.Report) error {
	query := `INSERT INTO reports (id, reporter_id, review_id, comment_id, reason) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	if err := r.DB.QueryRow(ctx, query, rp.ID, rp.ReporterID, rp.ReviewID, rp.CommentID, rp.Reason).Scan(&rp.CreatedAt); err != nil {
		return translate(err, "report")
	}
	return nil
}

func (r *ReportRepository) List(ctx context.Context) ([]model.Report, error) {
	query := `SELECT id, reporter_id, review_id, comment_id, reason, created_at FROM reports ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Report{}
	for rows.Next() {
		var rp model.Report
		if err := rows.Scan(&rp.ID, &rp.ReporterID, &rp.ReviewID, &rp.CommentID, &rp.Reason, &rp.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rp)
	}
	return list, rows.Err()
}
