package postgres

import (
	"context"
	"database/sql"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, application_id, reviewer_id, technical_score, idea_score, comments, status, decision_sent_date, created_on, updated_on`

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (application_id, reviewer_id, technical_score, idea_score, comments, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	rv.CreatedOn = now
	rv.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, rv.ApplicationID, rv.ReviewerID, rv.TechnicalScore, rv.IdeaScore, rv.Comments, rv.Status, now, now).Scan(&rv.ID)
}

func (r *reviewRepository) GetByID(ctx context.Context, id int32) (*domain.Review, error) {
	rv := &domain.Review{}
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rv.ID, &rv.ApplicationID, &rv.ReviewerID, &rv.TechnicalScore, &rv.IdeaScore, &rv.Comments, &rv.Status, &rv.DecisionSentDate, &rv.CreatedOn, &rv.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reviewRepository) GetByApplicationID(ctx context.Context, appID int32) (*domain.Review, error) {
	rv := &domain.Review{}
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE application_id = $1`
	err := r.db.QueryRowContext(ctx, query, appID).Scan(&rv.ID, &rv.ApplicationID, &rv.ReviewerID, &rv.TechnicalScore, &rv.IdeaScore, &rv.Comments, &rv.Status, &rv.DecisionSentDate, &rv.CreatedOn, &rv.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	query := `UPDATE reviews SET technical_score=$1, idea_score=$2, comments=$3, status=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, rv.TechnicalScore, rv.IdeaScore, rv.Comments, rv.Status, time.Now(), rv.ID)
	return err
}

func (r *reviewRepository) ListPendingDecisions(ctx context.Context, status domain.ReviewStatus, from, to time.Time, limit int32) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews
	          WHERE status = $1 AND decision_sent_date IS NULL
	            AND updated_on >= $2 AND updated_on <= $3
	          ORDER BY updated_on ASC LIMIT $4`
	rows, err := r.db.QueryContext(ctx, query, status, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.ApplicationID, &rv.ReviewerID, &rv.TechnicalScore, &rv.IdeaScore, &rv.Comments, &rv.Status, &rv.DecisionSentDate, &rv.CreatedOn, &rv.UpdatedOn); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) MarkDecisionSent(ctx context.Context, reviewID int32, sentOn time.Time) error {
	query := `UPDATE reviews SET decision_sent_date=$1 WHERE id=$2`
	_, err := r.db.ExecContext(ctx, query, sentOn, reviewID)
	return err
}

func (r *reviewRepository) ClearDecision(ctx context.Context, reviewID int32) error {
	query := `UPDATE reviews SET decision_sent_date=NULL, status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, domain.ReviewStatusWaitlisted, time.Now(), reviewID)
	return err
}
