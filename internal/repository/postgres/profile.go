package postgres

import (
	"context"
	"database/sql"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, team_id, attended, id_provided, rules_acknowledged, e_signature, signature_receipt, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	p.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, p.UserID, p.TeamID, p.Attended, p.IDProvided, p.RulesAcknowledged, p.ESignature, p.SignatureReceipt, p.CreatedOn).Scan(&p.ID)
}

func (r *profileRepository) GetByID(ctx context.Context, id int32) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT id, user_id, team_id, attended, id_provided, rules_acknowledged, e_signature, signature_receipt, created_on FROM profiles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.UserID, &p.TeamID, &p.Attended, &p.IDProvided, &p.RulesAcknowledged, &p.ESignature, &p.SignatureReceipt, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT id, user_id, team_id, attended, id_provided, rules_acknowledged, e_signature, signature_receipt, created_on FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.TeamID, &p.Attended, &p.IDProvided, &p.RulesAcknowledged, &p.ESignature, &p.SignatureReceipt, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET team_id=$1, attended=$2, id_provided=$3, rules_acknowledged=$4, e_signature=$5, signature_receipt=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, p.TeamID, p.Attended, p.IDProvided, p.RulesAcknowledged, p.ESignature, p.SignatureReceipt, p.ID)
	return err
}
