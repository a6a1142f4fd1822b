package postgres

import (
	"database/sql"

	"hackathon-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ProfileRepository
	repository.TeamRepository
	repository.HardwareRepository
	repository.OrderRepository
	repository.IncidentRepository
	repository.ApplicationRepository
	repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		ProfileRepository:     NewProfileRepository(db),
		TeamRepository:        NewTeamRepository(db),
		HardwareRepository:    NewHardwareRepository(db),
		OrderRepository:       NewOrderRepository(db),
		IncidentRepository:    NewIncidentRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		ReviewRepository:      NewReviewRepository(db),
	}
}
