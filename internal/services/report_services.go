package services

import (
	"context"
	"fmt"
	"strings"

	"GameReviewAPI/internal/access"
	"GameReviewAPI/internal/model"

	"github.com/google/uuid"
)

// ReportMailer notifies admins about new content reports. Nil-able: when no
// mailer is configured reports are stored silently.
type ReportMailer interface {
	SendReportNotification(ctx context.Context, toEmail string, report *model.Report) error
}

type ReportService struct {
	Repo     ReportStore
	Reviews  ReviewStore
	Comments CommentStore
	Mailer   ReportMailer
	NotifyTo string
}

func NewReportService(repo ReportStore, reviews ReviewStore, comments CommentStore, mailer ReportMailer, notifyTo string) *ReportService {
	return &ReportService{Repo: repo, Reviews: reviews, Comments: comments, Mailer: mailer, NotifyTo: notifyTo}
}

// CreateReport flags a review or a comment. Exactly one target id must be
// set and the target must exist.
func (s *ReportService) CreateReport(ctx context.Context, actor *access.Actor, reviewID, commentID *string, reason string) (*model.Report, error) {
	if d := access.Decide(actor, access.ActionCreate, access.KindReport, nil, false); !d.Allowed {
		return nil, d.Err()
	}
	if (reviewID == nil) == (commentID == nil) {
		return nil, fmt.Errorf("%w: exactly one of review_id or comment_id is required", model.ErrValidation)
	}
	if reviewID != nil {
		ok, err := s.Reviews.Exists(ctx, *reviewID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("review %w", model.ErrNotFound)
		}
	}
	if commentID != nil {
		ok, err := s.Comments.Exists(ctx, *commentID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("comment %w", model.ErrNotFound)
		}
	}
	rp := &model.Report{
		ID:         uuid.NewString(),
		ReporterID: actor.ID,
		ReviewID:   reviewID,
		CommentID:  commentID,
		Reason:     strings.TrimSpace(reason),
	}
	if err := s.Repo.Create(ctx, rp); err != nil {
		return nil, err
	}
	// Notification failure never fails the report itself.
	if s.Mailer != nil && s.NotifyTo != "" {
		_ = s.Mailer.SendReportNotification(ctx, s.NotifyTo, rp)
	}
	return rp, nil
}

// ListReports is admin only.
func (s *ReportService) ListReports(ctx context.Context, actor *access.Actor) ([]model.Report, error) {
	if d := access.Decide(actor, access.ActionRead, access.KindReport, nil, true); !d.Allowed {
		return nil, d.Err()
	}
	return s.Repo.List(ctx)
}
