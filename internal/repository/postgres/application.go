package postgres

import (
	"context"
	"database/sql"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"

	"github.com/lib/pq"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (user_id, team_id, description, rsvped, submitted_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	a.SubmittedOn = now
	a.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, a.UserID, a.TeamID, a.Description, a.RSVPed, now, now).Scan(&a.ID)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	a := &domain.Application{}
	query := `SELECT id, user_id, team_id, description, rsvped, submitted_on, updated_on FROM applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.UserID, &a.TeamID, &a.Description, &a.RSVPed, &a.SubmittedOn, &a.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *applicationRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Application, error) {
	a := &domain.Application{}
	query := `SELECT id, user_id, team_id, description, rsvped, submitted_on, updated_on FROM applications WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&a.ID, &a.UserID, &a.TeamID, &a.Description, &a.RSVPed, &a.SubmittedOn, &a.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *applicationRepository) ListByTeam(ctx context.Context, teamID int32) ([]domain.Application, error) {
	query := `SELECT id, user_id, team_id, description, rsvped, submitted_on, updated_on FROM applications WHERE team_id = $1 ORDER BY submitted_on`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.TeamID, &a.Description, &a.RSVPed, &a.SubmittedOn, &a.UpdatedOn); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) SetRSVP(ctx context.Context, appID int32, rsvped bool) error {
	query := `UPDATE applications SET rsvped=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, rsvped, time.Now(), appID)
	return err
}

// NextReviewableTeam orders candidate teams by their most recent submission,
// oldest first, so long-waiting teams are handed out before fresh ones.
func (r *applicationRepository) NextReviewableTeam(ctx context.Context, excluded []int32) (int32, error) {
	if excluded == nil {
		excluded = []int32{}
	}
	var teamID int32
	query := `SELECT a.team_id FROM applications a
	          LEFT JOIN reviews r ON r.application_id = a.id
	          WHERE NOT (a.team_id = ANY($1))
	          GROUP BY a.team_id
	          HAVING COUNT(a.id) > 0 AND COUNT(r.id) < COUNT(a.id)
	          ORDER BY MAX(a.submitted_on) ASC
	          LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, pq.Array(excluded)).Scan(&teamID)
	if err != nil {
		return 0, err
	}
	return teamID, nil
}
