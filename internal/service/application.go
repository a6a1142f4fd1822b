package service

import (
	"context"
	"database/sql"
	"errors"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"
)

type applicationService struct {
	appRepo    repository.ApplicationRepository
	teamRepo   repository.TeamRepository
	reviewRepo repository.ReviewRepository
	teamSvc    TeamService
	maxMembers int32
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	teamRepo repository.TeamRepository,
	reviewRepo repository.ReviewRepository,
	teamSvc TeamService,
	maxMembers int32,
) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		teamRepo:   teamRepo,
		reviewRepo: reviewRepo,
		teamSvc:    teamSvc,
		maxMembers: maxMembers,
	}
}

func (s *applicationService) Submit(ctx context.Context, userID int32, description, teamCode string) (*domain.Application, error) {
	if description == "" {
		return nil, domain.Validation("application description is required")
	}
	if _, err := s.appRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domain.Conflict("you have already applied")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	var teamID int32
	if teamCode != "" {
		if !ValidTeamCode(teamCode) {
			return nil, domain.NotFound("team not found")
		}
		team, err := s.teamRepo.GetByCode(ctx, teamCode)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("team not found")
		}
		if err != nil {
			return nil, err
		}
		apps, err := s.appRepo.ListByTeam(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		if int32(len(apps)) >= s.maxMembers {
			return nil, domain.Conflict("team is full")
		}
		teamID = team.ID
	} else {
		team, err := s.teamSvc.CreateTeam(ctx)
		if err != nil {
			return nil, err
		}
		teamID = team.ID
	}

	app := &domain.Application{
		UserID:      userID,
		TeamID:      teamID,
		Description: description,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) GetMine(ctx context.Context, userID int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("application not found")
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) RSVP(ctx context.Context, userID int32, attending bool) error {
	app, err := s.GetMine(ctx, userID)
	if err != nil {
		return err
	}

	review, err := s.reviewRepo.GetByApplicationID(ctx, app.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Conflict("there is no acceptance to RSVP for")
	}
	if err != nil {
		return err
	}
	if review.Status != domain.ReviewStatusAccepted || review.DecisionSentDate == nil {
		return domain.Conflict("there is no acceptance to RSVP for")
	}
	return s.appRepo.SetRSVP(ctx, app.ID, attending)
}
