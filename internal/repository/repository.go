package repository

import (
	"context"
	"time"

	"hackathon-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int32) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int32) (*domain.Team, error)
	GetByCode(ctx context.Context, code string) (*domain.Team, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	MemberCount(ctx context.Context, teamID int32) (int32, error)
	ListMembers(ctx context.Context, teamID int32) ([]domain.Profile, error)
	UpdateProjectDescription(ctx context.Context, teamID int32, description string) error

	// DeleteIfEmpty removes the team only when it has no members left. It
	// reports whether a row was actually deleted; an already-deleted or
	// still-populated team is a no-op, not an error.
	DeleteIfEmpty(ctx context.Context, teamID int32) (bool, error)

	// MoveMember reassigns a profile to another team and cleans up the prior
	// team if it emptied, all inside one transaction. The move is refused at
	// the database when the target already holds maxMembers profiles; the
	// return value reports whether the move was applied.
	MoveMember(ctx context.Context, profileID, fromTeamID, toTeamID, maxMembers int32) (bool, error)
}

type HardwareRepository interface {
	Create(ctx context.Context, hw *domain.Hardware) error
	GetByID(ctx context.Context, id int32) (*domain.Hardware, error)
	List(ctx context.Context) ([]domain.Hardware, error)

	// CountOutstandingItems counts order items for the hardware that are still
	// out: no return health recorded and parent order neither a cart nor
	// cancelled.
	CountOutstandingItems(ctx context.Context, hardwareID int32) (int32, error)
}

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	ListByTeam(ctx context.Context, teamID int32) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int32, status domain.OrderStatus) error
	HasActiveOrders(ctx context.Context, teamID int32) (bool, error)
	GetItem(ctx context.Context, itemID int32) (*domain.OrderItem, error)
	MarkItemReturned(ctx context.Context, itemID int32, health domain.ReturnHealth, returnedOn time.Time) error
	CountUnreturnedItems(ctx context.Context, orderID int32) (int32, error)
	CountOutstandingItemsForTeam(ctx context.Context, teamID, hardwareID int32) (int32, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	List(ctx context.Context) ([]domain.Incident, error)
	ListByOrder(ctx context.Context, orderID int32) ([]domain.Incident, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int32) (*domain.Application, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Application, error)
	ListByTeam(ctx context.Context, teamID int32) ([]domain.Application, error)
	SetRSVP(ctx context.Context, appID int32, rsvped bool) error

	// NextReviewableTeam finds the team whose most recent application
	// submission is oldest among teams that have at least one application and
	// at least one application without a review, skipping excluded team ids.
	// Returns sql.ErrNoRows when every team is reviewed or excluded.
	NextReviewableTeam(ctx context.Context, excluded []int32) (int32, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id int32) (*domain.Review, error)
	GetByApplicationID(ctx context.Context, appID int32) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error

	// ListPendingDecisions selects up to limit reviews with the given status,
	// updated inside [from, to] and with no decision sent yet, oldest first.
	ListPendingDecisions(ctx context.Context, status domain.ReviewStatus, from, to time.Time, limit int32) ([]domain.Review, error)
	MarkDecisionSent(ctx context.Context, reviewID int32, sentOn time.Time) error
	ClearDecision(ctx context.Context, reviewID int32) error
}
