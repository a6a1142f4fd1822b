package postgres

import (
	"context"
	"database/sql"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

const teamColumns = `t.id, t.code, t.project_description, t.created_on, t.updated_on,
	(SELECT COUNT(*) FROM profiles p WHERE p.team_id = t.id) AS member_count`

func scanTeam(row *sql.Row) (*domain.Team, error) {
	t := &domain.Team{}
	err := row.Scan(&t.ID, &t.Code, &t.ProjectDescription, &t.CreatedOn, &t.UpdatedOn, &t.MemberCount)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *teamRepository) Create(ctx context.Context, t *domain.Team) error {
	query := `INSERT INTO teams (code, project_description, created_on, updated_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now()
	t.CreatedOn = now
	t.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, t.Code, t.ProjectDescription, now, now).Scan(&t.ID)
}

func (r *teamRepository) GetByID(ctx context.Context, id int32) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams t WHERE t.id = $1`
	return scanTeam(r.db.QueryRowContext(ctx, query, id))
}

func (r *teamRepository) GetByCode(ctx context.Context, code string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams t WHERE t.code = $1`
	return scanTeam(r.db.QueryRowContext(ctx, query, code))
}

func (r *teamRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM teams WHERE code = $1)`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&exists)
	return exists, err
}

func (r *teamRepository) MemberCount(ctx context.Context, teamID int32) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM profiles WHERE team_id = $1`
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(&count)
	return count, err
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID int32) ([]domain.Profile, error) {
	query := `SELECT id, user_id, team_id, attended, id_provided, rules_acknowledged, e_signature, signature_receipt, created_on
	          FROM profiles WHERE team_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.TeamID, &p.Attended, &p.IDProvided, &p.RulesAcknowledged, &p.ESignature, &p.SignatureReceipt, &p.CreatedOn); err != nil {
			return nil, err
		}
		members = append(members, p)
	}
	return members, rows.Err()
}

func (r *teamRepository) UpdateProjectDescription(ctx context.Context, teamID int32, description string) error {
	query := `UPDATE teams SET project_description=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, description, time.Now(), teamID)
	return err
}

// DeleteIfEmpty re-checks emptiness inside the delete itself so that two
// overlapping cleanup attempts cannot double-delete or remove a team that
// picked up a member in between.
func (r *teamRepository) DeleteIfEmpty(ctx context.Context, teamID int32) (bool, error) {
	query := `DELETE FROM teams t WHERE t.id = $1
	          AND NOT EXISTS (SELECT 1 FROM profiles p WHERE p.team_id = t.id)`
	res, err := r.db.ExecContext(ctx, query, teamID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *teamRepository) MoveMember(ctx context.Context, profileID, fromTeamID, toTeamID, maxMembers int32) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	// The capacity check is part of the UPDATE so a concurrent join cannot
	// overfill the target between validation and apply.
	moveQuery := `UPDATE profiles SET team_id = $1 WHERE id = $2
	              AND (SELECT COUNT(*) FROM profiles WHERE team_id = $1) < $3`
	res, err := tx.ExecContext(ctx, moveQuery, toTeamID, profileID, maxMembers)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	cleanupQuery := `DELETE FROM teams t WHERE t.id = $1
	                 AND NOT EXISTS (SELECT 1 FROM profiles p WHERE p.team_id = t.id)`
	if _, err := tx.ExecContext(ctx, cleanupQuery, fromTeamID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
