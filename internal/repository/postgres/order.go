package postgres

import (
	"context"
	"database/sql"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	o.CreatedOn = now
	o.UpdatedOn = now
	orderQuery := `INSERT INTO orders (team_id, status, pickup_note, created_on, updated_on)
	               VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := tx.QueryRowContext(ctx, orderQuery, o.TeamID, o.Status, o.PickupNote, now, now).Scan(&o.ID); err != nil {
		return err
	}

	itemQuery := `INSERT INTO order_items (order_id, hardware_id) VALUES ($1, $2) RETURNING id`
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		if err := tx.QueryRowContext(ctx, itemQuery, o.ID, o.Items[i].HardwareID).Scan(&o.Items[i].ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	o := &domain.Order{}
	query := `SELECT id, team_id, status, pickup_note, created_on, updated_on FROM orders WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.TeamID, &o.Status, &o.PickupNote, &o.CreatedOn, &o.UpdatedOn)
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID int32) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, hardware_id, part_returned_health, returned_on FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.HardwareID, &it.PartReturnedHealth, &it.ReturnedOn); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *orderRepository) ListByTeam(ctx context.Context, teamID int32) ([]domain.Order, error) {
	query := `SELECT id, team_id, status, pickup_note, created_on, updated_on FROM orders WHERE team_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.TeamID, &o.Status, &o.PickupNote, &o.CreatedOn, &o.UpdatedOn); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int32, status domain.OrderStatus) error {
	query := `UPDATE orders SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), orderID)
	return err
}

func (r *orderRepository) HasActiveOrders(ctx context.Context, teamID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM orders WHERE team_id = $1 AND status NOT IN ('CART', 'CANCELLED', 'RETURNED'))`
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(&exists)
	return exists, err
}

func (r *orderRepository) GetItem(ctx context.Context, itemID int32) (*domain.OrderItem, error) {
	it := &domain.OrderItem{}
	query := `SELECT id, order_id, hardware_id, part_returned_health, returned_on FROM order_items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(&it.ID, &it.OrderID, &it.HardwareID, &it.PartReturnedHealth, &it.ReturnedOn)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *orderRepository) MarkItemReturned(ctx context.Context, itemID int32, health domain.ReturnHealth, returnedOn time.Time) error {
	query := `UPDATE order_items SET part_returned_health=$1, returned_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, health, returnedOn, itemID)
	return err
}

func (r *orderRepository) CountUnreturnedItems(ctx context.Context, orderID int32) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM order_items WHERE order_id = $1 AND part_returned_health IS NULL`
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(&count)
	return count, err
}

func (r *orderRepository) CountOutstandingItemsForTeam(ctx context.Context, teamID, hardwareID int32) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM order_items oi
	          JOIN orders o ON o.id = oi.order_id
	          WHERE o.team_id = $1
	            AND oi.hardware_id = $2
	            AND oi.part_returned_health IS NULL
	            AND o.status NOT IN ('CART', 'CANCELLED')`
	err := r.db.QueryRowContext(ctx, query, teamID, hardwareID).Scan(&count)
	return count, err
}
