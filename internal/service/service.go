package service

import (
	"context"

	"hackathon-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type TeamService interface {
	// CreateTeam allocates an empty team with a freshly generated unique code.
	CreateTeam(ctx context.Context) (*domain.Team, error)
	GetTeam(ctx context.Context, id int32) (*domain.Team, error)
	GetMyTeam(ctx context.Context, userID int32) (*domain.Team, error)

	// JoinTeam moves the acting member onto the team identified by code,
	// deleting the prior team if it emptied.
	JoinTeam(ctx context.Context, userID int32, code string) (*domain.Team, error)

	// LeaveTeam moves the acting member onto a brand-new team, deleting the
	// prior team if it emptied.
	LeaveTeam(ctx context.Context, userID int32) (*domain.Team, error)

	UpdateProjectDescription(ctx context.Context, userID int32, description string) (*domain.Team, error)

	// DeleteIfEmpty is the idempotent cleanup hook: a no-op when the team
	// still has members or is already gone.
	DeleteIfEmpty(ctx context.Context, teamID int32) error
}

type ProfileService interface {
	// CreateProfile admits a user to the event. It is gated on an accepted,
	// RSVP'd application; designated test accounts bypass the gate.
	CreateProfile(ctx context.Context, userID int32, eSignature string) (*domain.Profile, error)
	GetMyProfile(ctx context.Context, userID int32) (*domain.Profile, error)
	UpdateFlags(ctx context.Context, userID int32, attended, idProvided, rulesAcknowledged bool) (*domain.Profile, error)
}

type InventoryService interface {
	ListHardware(ctx context.Context) ([]domain.Hardware, error)
	GetHardware(ctx context.Context, id int32) (*domain.Hardware, error)

	// QuantityRemaining derives current lendable stock: quantity_available
	// minus outstanding order items. Pure read.
	QuantityRemaining(ctx context.Context, hardwareID int32) (int32, error)
}

type OrderService interface {
	CreateCart(ctx context.Context, userID int32, hardwareIDs []int32) (*domain.Order, error)
	SubmitCart(ctx context.Context, userID, orderID int32) (*domain.Order, error)
	ListTeamOrders(ctx context.Context, userID int32) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, actorID, orderID int32, status domain.OrderStatus) (*domain.Order, error)
	ReturnItem(ctx context.Context, actorID, itemID int32, health domain.ReturnHealth) (*domain.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int32) (*domain.Order, error)

	// HasActiveOrders is the order eligibility guard: true while any team
	// order is neither cancelled nor returned.
	HasActiveOrders(ctx context.Context, teamID int32) (bool, error)

	CreateIncident(ctx context.Context, actorID int32, incident *domain.Incident) error
	ListIncidents(ctx context.Context, actorID int32) ([]domain.Incident, error)
}

type ApplicationService interface {
	// Submit files an application; teamCode joins an existing applicant team,
	// empty code creates a fresh one.
	Submit(ctx context.Context, userID int32, description, teamCode string) (*domain.Application, error)
	GetMine(ctx context.Context, userID int32) (*domain.Application, error)
	RSVP(ctx context.Context, userID int32, attending bool) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, reviewerID int32, review *domain.Review) error
	UpdateReview(ctx context.Context, reviewerID int32, review *domain.Review) error
	RevertToWaitlisted(ctx context.Context, reviewerID, reviewID int32) error

	// AssignNextTeam hands the reviewer the next unreviewed applicant team,
	// or re-affirms their current reservation. A nil team means no teams
	// remain. Requires the review capability.
	AssignNextTeam(ctx context.Context, reviewerID int32) (*domain.Team, []domain.Application, error)
}

type DecisionMailer interface {
	// SendDecisions emails up to quantity pending decisions with the given
	// status whose reviews were updated between dateFrom and dateTo
	// (YYYY-MM-DD, event timezone). Returns how many were sent; progress is
	// kept on partial failure.
	SendDecisions(ctx context.Context, actorID int32, status domain.ReviewStatus, dateFrom, dateTo string, quantity int32) (int32, error)
}
