package service_test

import (
	"context"
	"time"

	"hackathon-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockProfileRepo) GetByID(ctx context.Context, id int32) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockTeamRepo
type MockTeamRepo struct {
	mock.Mock
}

func (m *MockTeamRepo) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}
func (m *MockTeamRepo) GetByID(ctx context.Context, id int32) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamRepo) GetByCode(ctx context.Context, code string) (*domain.Team, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
func (m *MockTeamRepo) MemberCount(ctx context.Context, teamID int32) (int32, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockTeamRepo) ListMembers(ctx context.Context, teamID int32) ([]domain.Profile, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}
func (m *MockTeamRepo) UpdateProjectDescription(ctx context.Context, teamID int32, description string) error {
	args := m.Called(ctx, teamID, description)
	return args.Error(0)
}
func (m *MockTeamRepo) DeleteIfEmpty(ctx context.Context, teamID int32) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}
func (m *MockTeamRepo) MoveMember(ctx context.Context, profileID, fromTeamID, toTeamID, maxMembers int32) (bool, error) {
	args := m.Called(ctx, profileID, fromTeamID, toTeamID, maxMembers)
	return args.Bool(0), args.Error(1)
}

// MockHardwareRepo
type MockHardwareRepo struct {
	mock.Mock
}

func (m *MockHardwareRepo) Create(ctx context.Context, hw *domain.Hardware) error {
	args := m.Called(ctx, hw)
	return args.Error(0)
}
func (m *MockHardwareRepo) GetByID(ctx context.Context, id int32) (*domain.Hardware, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hardware), args.Error(1)
}
func (m *MockHardwareRepo) List(ctx context.Context) ([]domain.Hardware, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hardware), args.Error(1)
}
func (m *MockHardwareRepo) CountOutstandingItems(ctx context.Context, hardwareID int32) (int32, error) {
	args := m.Called(ctx, hardwareID)
	return args.Get(0).(int32), args.Error(1)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) CreateWithItems(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListByTeam(ctx context.Context, teamID int32) ([]domain.Order, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) UpdateStatus(ctx context.Context, orderID int32, status domain.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}
func (m *MockOrderRepo) HasActiveOrders(ctx context.Context, teamID int32) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) GetItem(ctx context.Context, itemID int32) (*domain.OrderItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}
func (m *MockOrderRepo) MarkItemReturned(ctx context.Context, itemID int32, health domain.ReturnHealth, returnedOn time.Time) error {
	args := m.Called(ctx, itemID, health, returnedOn)
	return args.Error(0)
}
func (m *MockOrderRepo) CountUnreturnedItems(ctx context.Context, orderID int32) (int32, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockOrderRepo) CountOutstandingItemsForTeam(ctx context.Context, teamID, hardwareID int32) (int32, error) {
	args := m.Called(ctx, teamID, hardwareID)
	return args.Get(0).(int32), args.Error(1)
}

// MockIncidentRepo
type MockIncidentRepo struct {
	mock.Mock
}

func (m *MockIncidentRepo) Create(ctx context.Context, incident *domain.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}
func (m *MockIncidentRepo) List(ctx context.Context) ([]domain.Incident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Incident), args.Error(1)
}
func (m *MockIncidentRepo) ListByOrder(ctx context.Context, orderID int32) ([]domain.Incident, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Incident), args.Error(1)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByTeam(ctx context.Context, teamID int32) ([]domain.Application, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) SetRSVP(ctx context.Context, appID int32, rsvped bool) error {
	args := m.Called(ctx, appID, rsvped)
	return args.Error(0)
}
func (m *MockApplicationRepo) NextReviewableTeam(ctx context.Context, excluded []int32) (int32, error) {
	args := m.Called(ctx, excluded)
	return args.Get(0).(int32), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) GetByID(ctx context.Context, id int32) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewRepo) GetByApplicationID(ctx context.Context, appID int32) (*domain.Review, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewRepo) Update(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) ListPendingDecisions(ctx context.Context, status domain.ReviewStatus, from, to time.Time, limit int32) ([]domain.Review, error) {
	args := m.Called(ctx, status, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) MarkDecisionSent(ctx context.Context, reviewID int32, sentOn time.Time) error {
	args := m.Called(ctx, reviewID, sentOn)
	return args.Error(0)
}
func (m *MockReviewRepo) ClearDecision(ctx context.Context, reviewID int32) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}
