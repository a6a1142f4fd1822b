package postgres_test

import (
	"context"
	"testing"

	"hackathon-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOrderRepository_HasActiveOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewOrderRepository(db)
	ctx := context.Background()

	// An unsubmitted cart never blocks its team, so the predicate must skip
	// CART alongside the settled statuses.
	activeQuery := `SELECT EXISTS\(SELECT 1 FROM orders WHERE team_id = \$1 AND status NOT IN \('CART', 'CANCELLED', 'RETURNED'\)\)`

	t.Run("CartOnlyDoesNotCount", func(t *testing.T) {
		mock.ExpectQuery(activeQuery).
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		active, err := repo.HasActiveOrders(ctx, 3)
		assert.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("SubmittedOrderCounts", func(t *testing.T) {
		mock.ExpectQuery(activeQuery).
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		active, err := repo.HasActiveOrders(ctx, 3)
		assert.NoError(t, err)
		assert.True(t, active)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
