package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestTeamRepository_GetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTeamRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "code", "project_description", "created_on", "updated_on", "member_count"}).
			AddRow(2, "ABC12", "robots", time.Now(), time.Now(), 3)

		mock.ExpectQuery("SELECT (.+) FROM teams t WHERE t.code = \\$1").
			WithArgs("ABC12").
			WillReturnRows(rows)

		team, err := repo.GetByCode(ctx, "ABC12")
		assert.NoError(t, err)
		assert.Equal(t, int32(2), team.ID)
		assert.Equal(t, int32(3), team.MemberCount)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM teams t WHERE t.code = \\$1").
			WithArgs("ZZZZZ").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByCode(ctx, "ZZZZZ")
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestTeamRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTeamRepository(db)
	ctx := context.Background()

	team := &domain.Team{Code: "ABC12"}
	mock.ExpectQuery("INSERT INTO teams").
		WithArgs("ABC12", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	err = repo.Create(ctx, team)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), team.ID)
}

func TestTeamRepository_DeleteIfEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTeamRepository(db)
	ctx := context.Background()

	t.Run("DeletesEmptyTeam", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM teams t WHERE t.id = \\$1").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.DeleteIfEmpty(ctx, 3)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("NoopWhenPopulated", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM teams t WHERE t.id = \\$1").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.DeleteIfEmpty(ctx, 3)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestTeamRepository_MoveMember(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTeamRepository(db)
	ctx := context.Background()

	t.Run("MovesAndCleansUp", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE profiles SET team_id = \\$1").
			WithArgs(int32(2), int32(10), int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM teams t WHERE t.id = \\$1").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		moved, err := repo.MoveMember(ctx, 10, 1, 2, 4)
		assert.NoError(t, err)
		assert.True(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RefusedWhenTargetFull", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE profiles SET team_id = \\$1").
			WithArgs(int32(2), int32(10), int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		moved, err := repo.MoveMember(ctx, 10, 1, 2, 4)
		assert.NoError(t, err)
		assert.False(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
