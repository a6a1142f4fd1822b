package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTeamService(teamRepo *MockTeamRepo, profileRepo *MockProfileRepo, orderRepo *MockOrderRepo) service.TeamService {
	return service.NewTeamService(teamRepo, profileRepo, orderRepo, 4)
}

func TestValidTeamCode(t *testing.T) {
	assert.True(t, service.ValidTeamCode("ABC12"))
	assert.True(t, service.ValidTeamCode("00000"))
	assert.False(t, service.ValidTeamCode("abc12"))
	assert.False(t, service.ValidTeamCode("ABC1"))
	assert.False(t, service.ValidTeamCode("ABC123"))
	assert.False(t, service.ValidTeamCode("AB C1"))
}

func TestTeamService_CreateTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("GeneratesUniqueCode", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		svc := newTeamService(teamRepo, new(MockProfileRepo), new(MockOrderRepo))

		teamRepo.On("CodeExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
		teamRepo.On("Create", ctx, mock.AnythingOfType("*domain.Team")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Team).ID = 7
			}).Return(nil)

		team, err := svc.CreateTeam(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), team.ID)
		assert.True(t, service.ValidTeamCode(team.Code))
	})

	t.Run("RetriesOnCollision", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		svc := newTeamService(teamRepo, new(MockProfileRepo), new(MockOrderRepo))

		teamRepo.On("CodeExists", ctx, mock.AnythingOfType("string")).Return(true, nil).Once()
		teamRepo.On("CodeExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
		teamRepo.On("Create", ctx, mock.AnythingOfType("*domain.Team")).Return(nil)

		_, err := svc.CreateTeam(ctx)
		assert.NoError(t, err)
		teamRepo.AssertNumberOfCalls(t, "CodeExists", 2)
	})
}

func TestTeamService_JoinTeam(t *testing.T) {
	ctx := context.Background()
	profile := &domain.Profile{ID: 10, UserID: 1, TeamID: 1}

	t.Run("Success", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		orderRepo := new(MockOrderRepo)
		svc := newTeamService(teamRepo, profileRepo, orderRepo)

		target := &domain.Team{ID: 2, Code: "ABC12", MemberCount: 2}
		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		teamRepo.On("GetByCode", ctx, "ABC12").Return(target, nil)
		orderRepo.On("HasActiveOrders", ctx, int32(1)).Return(false, nil)
		teamRepo.On("MoveMember", ctx, int32(10), int32(1), int32(2), int32(4)).Return(true, nil)
		teamRepo.On("GetByID", ctx, int32(2)).Return(&domain.Team{ID: 2, Code: "ABC12", MemberCount: 3}, nil)
		teamRepo.On("ListMembers", ctx, int32(2)).Return([]domain.Profile{*profile}, nil)

		team, err := svc.JoinTeam(ctx, 1, "ABC12")
		assert.NoError(t, err)
		assert.Equal(t, int32(2), team.ID)
		teamRepo.AssertExpectations(t)
	})

	t.Run("MalformedCode", func(t *testing.T) {
		svc := newTeamService(new(MockTeamRepo), new(MockProfileRepo), new(MockOrderRepo))

		_, err := svc.JoinTeam(ctx, 1, "abc")
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("UnknownCode", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		svc := newTeamService(teamRepo, profileRepo, new(MockOrderRepo))

		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		teamRepo.On("GetByCode", ctx, "ZZZZZ").Return(nil, sql.ErrNoRows)

		_, err := svc.JoinTeam(ctx, 1, "ZZZZZ")
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("TeamFull", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		svc := newTeamService(teamRepo, profileRepo, new(MockOrderRepo))

		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		teamRepo.On("GetByCode", ctx, "ABC12").Return(&domain.Team{ID: 2, MemberCount: 4}, nil)

		_, err := svc.JoinTeam(ctx, 1, "ABC12")
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})

	t.Run("BlockedByActiveOrders", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		orderRepo := new(MockOrderRepo)
		svc := newTeamService(teamRepo, profileRepo, orderRepo)

		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		teamRepo.On("GetByCode", ctx, "ABC12").Return(&domain.Team{ID: 2, MemberCount: 1}, nil)
		orderRepo.On("HasActiveOrders", ctx, int32(1)).Return(true, nil)

		_, err := svc.JoinTeam(ctx, 1, "ABC12")
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
		teamRepo.AssertNotCalled(t, "MoveMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ConcurrentFill", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		orderRepo := new(MockOrderRepo)
		svc := newTeamService(teamRepo, profileRepo, orderRepo)

		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		teamRepo.On("GetByCode", ctx, "ABC12").Return(&domain.Team{ID: 2, MemberCount: 3}, nil)
		orderRepo.On("HasActiveOrders", ctx, int32(1)).Return(false, nil)
		teamRepo.On("MoveMember", ctx, int32(10), int32(1), int32(2), int32(4)).Return(false, nil)

		_, err := svc.JoinTeam(ctx, 1, "ABC12")
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})

	t.Run("AlreadyOnTeam", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		svc := newTeamService(teamRepo, profileRepo, new(MockOrderRepo))

		own := &domain.Team{ID: 1, Code: "ABC12", MemberCount: 1}
		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		teamRepo.On("GetByCode", ctx, "ABC12").Return(own, nil)
		teamRepo.On("GetByID", ctx, int32(1)).Return(own, nil)
		teamRepo.On("ListMembers", ctx, int32(1)).Return([]domain.Profile{*profile}, nil)

		team, err := svc.JoinTeam(ctx, 1, "ABC12")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), team.ID)
		teamRepo.AssertNotCalled(t, "MoveMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NoProfile", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		svc := newTeamService(new(MockTeamRepo), profileRepo, new(MockOrderRepo))

		profileRepo.On("GetByUserID", ctx, int32(1)).Return(nil, sql.ErrNoRows)

		_, err := svc.JoinTeam(ctx, 1, "ABC12")
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestTeamService_LeaveTeam(t *testing.T) {
	ctx := context.Background()
	profile := &domain.Profile{ID: 10, UserID: 1, TeamID: 1}

	t.Run("MovesToFreshTeam", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		orderRepo := new(MockOrderRepo)
		svc := newTeamService(teamRepo, profileRepo, orderRepo)

		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		orderRepo.On("HasActiveOrders", ctx, int32(1)).Return(false, nil)
		teamRepo.On("CodeExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		teamRepo.On("Create", ctx, mock.AnythingOfType("*domain.Team")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Team).ID = 5
			}).Return(nil)
		teamRepo.On("MoveMember", ctx, int32(10), int32(1), int32(5), int32(4)).Return(true, nil)
		teamRepo.On("GetByID", ctx, int32(5)).Return(&domain.Team{ID: 5, MemberCount: 1}, nil)
		teamRepo.On("ListMembers", ctx, int32(5)).Return([]domain.Profile{*profile}, nil)

		team, err := svc.LeaveTeam(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), team.ID)
	})

	t.Run("BlockedByActiveOrders", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		orderRepo := new(MockOrderRepo)
		svc := newTeamService(teamRepo, profileRepo, orderRepo)

		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		orderRepo.On("HasActiveOrders", ctx, int32(1)).Return(true, nil)

		_, err := svc.LeaveTeam(ctx, 1)
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
		teamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("CleansUpFreshTeamWhenMoveRefused", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		orderRepo := new(MockOrderRepo)
		svc := newTeamService(teamRepo, profileRepo, orderRepo)

		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		orderRepo.On("HasActiveOrders", ctx, int32(1)).Return(false, nil)
		teamRepo.On("CodeExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		teamRepo.On("Create", ctx, mock.AnythingOfType("*domain.Team")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Team).ID = 5
			}).Return(nil)
		teamRepo.On("MoveMember", ctx, int32(10), int32(1), int32(5), int32(4)).Return(false, nil)
		teamRepo.On("DeleteIfEmpty", ctx, int32(5)).Return(true, nil)

		_, err := svc.LeaveTeam(ctx, 1)
		assert.Equal(t, domain.KindInternal, domain.KindOf(err))
		teamRepo.AssertCalled(t, "DeleteIfEmpty", ctx, int32(5))
	})

	t.Run("CleansUpFreshTeamWhenMoveErrors", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		profileRepo := new(MockProfileRepo)
		orderRepo := new(MockOrderRepo)
		svc := newTeamService(teamRepo, profileRepo, orderRepo)

		profileRepo.On("GetByUserID", ctx, int32(1)).Return(profile, nil)
		orderRepo.On("HasActiveOrders", ctx, int32(1)).Return(false, nil)
		teamRepo.On("CodeExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		teamRepo.On("Create", ctx, mock.AnythingOfType("*domain.Team")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Team).ID = 5
			}).Return(nil)
		teamRepo.On("MoveMember", ctx, int32(10), int32(1), int32(5), int32(4)).Return(false, errors.New("tx aborted"))
		teamRepo.On("DeleteIfEmpty", ctx, int32(5)).Return(true, nil)

		_, err := svc.LeaveTeam(ctx, 1)
		assert.Error(t, err)
		teamRepo.AssertCalled(t, "DeleteIfEmpty", ctx, int32(5))
	})
}

func TestTeamService_DeleteIfEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("NoopWhenPopulated", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		svc := newTeamService(teamRepo, new(MockProfileRepo), new(MockOrderRepo))

		teamRepo.On("DeleteIfEmpty", ctx, int32(3)).Return(false, nil)
		assert.NoError(t, svc.DeleteIfEmpty(ctx, 3))
	})

	t.Run("DeletesWhenEmpty", func(t *testing.T) {
		teamRepo := new(MockTeamRepo)
		svc := newTeamService(teamRepo, new(MockProfileRepo), new(MockOrderRepo))

		teamRepo.On("DeleteIfEmpty", ctx, int32(3)).Return(true, nil)
		assert.NoError(t, svc.DeleteIfEmpty(ctx, 3))
	})
}
