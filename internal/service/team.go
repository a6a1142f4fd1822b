package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/logger"
	"hackathon-backend/internal/repository"
)

const teamCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// codeGenerationAttempts bounds the optimistic collision-retry loop. With 36^5
// possible codes a handful of retries is already far more than needed.
const codeGenerationAttempts = 32

var teamCodePattern = regexp.MustCompile(`^[A-Z0-9]{5}$`)

// ValidTeamCode reports whether code is a well-formed join code.
func ValidTeamCode(code string) bool {
	return teamCodePattern.MatchString(code)
}

type teamService struct {
	teamRepo    repository.TeamRepository
	profileRepo repository.ProfileRepository
	orderRepo   repository.OrderRepository
	maxMembers  int32
}

func NewTeamService(
	teamRepo repository.TeamRepository,
	profileRepo repository.ProfileRepository,
	orderRepo repository.OrderRepository,
	maxMembers int32,
) TeamService {
	return &teamService{
		teamRepo:    teamRepo,
		profileRepo: profileRepo,
		orderRepo:   orderRepo,
		maxMembers:  maxMembers,
	}
}

func randomTeamCode() string {
	var sb strings.Builder
	sb.Grow(domain.TeamCodeLength)
	for i := 0; i < domain.TeamCodeLength; i++ {
		sb.WriteByte(teamCodeCharset[rand.Intn(len(teamCodeCharset))])
	}
	return sb.String()
}

// generateUniqueCode retries against existing codes. The code is not reserved,
// so the caller must create the team promptly; a race between two generations
// is caught by the unique constraint on teams.code.
func (s *teamService) generateUniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code := randomTeamCode()
		exists, err := s.teamRepo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique team code after %d attempts", codeGenerationAttempts)
}

func (s *teamService) CreateTeam(ctx context.Context) (*domain.Team, error) {
	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	team := &domain.Team{Code: code}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) GetTeam(ctx context.Context, id int32) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("team not found")
	}
	if err != nil {
		return nil, err
	}
	members, err := s.teamRepo.ListMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Members = members
	return team, nil
}

func (s *teamService) GetMyTeam(ctx context.Context, userID int32) (*domain.Team, error) {
	profile, err := s.memberProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.GetTeam(ctx, profile.TeamID)
}

func (s *teamService) memberProfile(ctx context.Context, userID int32) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.Forbidden("you do not have an attendee profile")
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *teamService) JoinTeam(ctx context.Context, userID int32, code string) (*domain.Team, error) {
	if !ValidTeamCode(code) {
		return nil, domain.NotFound("team not found")
	}

	profile, err := s.memberProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	target, err := s.teamRepo.GetByCode(ctx, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("team not found")
	}
	if err != nil {
		return nil, err
	}
	if target.ID == profile.TeamID {
		return s.GetTeam(ctx, target.ID)
	}
	if target.MemberCount >= s.maxMembers {
		return nil, domain.Conflict("team is full")
	}

	if err := s.checkNoActiveOrders(ctx, profile.TeamID); err != nil {
		return nil, err
	}

	moved, err := s.teamRepo.MoveMember(ctx, profile.ID, profile.TeamID, target.ID, s.maxMembers)
	if err != nil {
		return nil, err
	}
	if !moved {
		// A concurrent join filled the team between validation and apply.
		return nil, domain.Conflict("team is full")
	}
	return s.GetTeam(ctx, target.ID)
}

// LeaveTeam always moves the member onto a fresh team, even when they are the
// only member of their current one; the only blocker is an active order.
func (s *teamService) LeaveTeam(ctx context.Context, userID int32) (*domain.Team, error) {
	profile, err := s.memberProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.checkNoActiveOrders(ctx, profile.TeamID); err != nil {
		return nil, err
	}

	newTeam, err := s.CreateTeam(ctx)
	if err != nil {
		return nil, err
	}
	moved, err := s.teamRepo.MoveMember(ctx, profile.ID, profile.TeamID, newTeam.ID, s.maxMembers)
	if err != nil || !moved {
		// The member never arrived, so the fresh team must not outlive the call.
		if _, delErr := s.teamRepo.DeleteIfEmpty(ctx, newTeam.ID); delErr != nil {
			logger.Error("Could not clean up unused team", "team_id", newTeam.ID, "error", delErr)
		}
		if err != nil {
			return nil, err
		}
		return nil, domain.Internal("could not move member to new team", nil)
	}
	return s.GetTeam(ctx, newTeam.ID)
}

func (s *teamService) checkNoActiveOrders(ctx context.Context, teamID int32) error {
	active, err := s.orderRepo.HasActiveOrders(ctx, teamID)
	if err != nil {
		return err
	}
	if active {
		return domain.Conflict("cannot leave a team with already processed orders")
	}
	return nil
}

func (s *teamService) UpdateProjectDescription(ctx context.Context, userID int32, description string) (*domain.Team, error) {
	profile, err := s.memberProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.teamRepo.UpdateProjectDescription(ctx, profile.TeamID, description); err != nil {
		return nil, err
	}
	return s.GetTeam(ctx, profile.TeamID)
}

func (s *teamService) DeleteIfEmpty(ctx context.Context, teamID int32) error {
	deleted, err := s.teamRepo.DeleteIfEmpty(ctx, teamID)
	if err != nil {
		return err
	}
	if deleted {
		logger.Info("Deleted empty team", "team_id", teamID)
	}
	return nil
}
