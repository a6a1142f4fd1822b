package postgres

import (
	"context"
	"database/sql"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"

	"github.com/lib/pq"
)

type hardwareRepository struct {
	db *sql.DB
}

func NewHardwareRepository(db *sql.DB) repository.HardwareRepository {
	return &hardwareRepository{db: db}
}

func (r *hardwareRepository) Create(ctx context.Context, hw *domain.Hardware) error {
	query := `INSERT INTO hardware (name, manufacturer, model, description, categories, quantity_available, max_per_team, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	hw.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, hw.Name, hw.Manufacturer, hw.Model, hw.Description,
		pq.Array(hw.Categories), hw.QuantityAvailable, hw.MaxPerTeam, hw.CreatedOn).Scan(&hw.ID)
}

func (r *hardwareRepository) GetByID(ctx context.Context, id int32) (*domain.Hardware, error) {
	hw := &domain.Hardware{}
	query := `SELECT id, name, manufacturer, model, description, categories, quantity_available, max_per_team, created_on
	          FROM hardware WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&hw.ID, &hw.Name, &hw.Manufacturer, &hw.Model,
		&hw.Description, pq.Array(&hw.Categories), &hw.QuantityAvailable, &hw.MaxPerTeam, &hw.CreatedOn)
	if err != nil {
		return nil, err
	}
	return hw, nil
}

func (r *hardwareRepository) List(ctx context.Context) ([]domain.Hardware, error) {
	query := `SELECT id, name, manufacturer, model, description, categories, quantity_available, max_per_team, created_on
	          FROM hardware ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Hardware
	for rows.Next() {
		var hw domain.Hardware
		if err := rows.Scan(&hw.ID, &hw.Name, &hw.Manufacturer, &hw.Model, &hw.Description,
			pq.Array(&hw.Categories), &hw.QuantityAvailable, &hw.MaxPerTeam, &hw.CreatedOn); err != nil {
			return nil, err
		}
		items = append(items, hw)
	}
	return items, rows.Err()
}

func (r *hardwareRepository) CountOutstandingItems(ctx context.Context, hardwareID int32) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM order_items oi
	          JOIN orders o ON o.id = oi.order_id
	          WHERE oi.hardware_id = $1
	            AND oi.part_returned_health IS NULL
	            AND o.status NOT IN ('CART', 'CANCELLED')`
	err := r.db.QueryRowContext(ctx, query, hardwareID).Scan(&count)
	return count, err
}
