package postgres

import (
	"context"
	"database/sql"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"
)

type incidentRepository struct {
	db *sql.DB
}

func NewIncidentRepository(db *sql.DB) repository.IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) Create(ctx context.Context, in *domain.Incident) error {
	query := `INSERT INTO incidents (order_item_id, state, description, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	in.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, in.OrderItemID, in.State, in.Description, in.CreatedOn).Scan(&in.ID)
}

func (r *incidentRepository) List(ctx context.Context) ([]domain.Incident, error) {
	query := `SELECT id, order_item_id, state, description, created_on FROM incidents ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIncidents(rows)
}

func (r *incidentRepository) ListByOrder(ctx context.Context, orderID int32) ([]domain.Incident, error) {
	query := `SELECT i.id, i.order_item_id, i.state, i.description, i.created_on FROM incidents i
	          JOIN order_items oi ON oi.id = i.order_item_id
	          WHERE oi.order_id = $1 ORDER BY i.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIncidents(rows)
}

func scanIncidents(rows *sql.Rows) ([]domain.Incident, error) {
	var incidents []domain.Incident
	for rows.Next() {
		var in domain.Incident
		if err := rows.Scan(&in.ID, &in.OrderItemID, &in.State, &in.Description, &in.CreatedOn); err != nil {
			return nil, err
		}
		incidents = append(incidents, in)
	}
	return incidents, rows.Err()
}
