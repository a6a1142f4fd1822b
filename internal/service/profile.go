package service

import (
	"context"
	"database/sql"
	"errors"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"

	"github.com/google/uuid"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	appRepo     repository.ApplicationRepository
	reviewRepo  repository.ReviewRepository
	teamSvc     TeamService
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	appRepo repository.ApplicationRepository,
	reviewRepo repository.ReviewRepository,
	teamSvc TeamService,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		appRepo:     appRepo,
		reviewRepo:  reviewRepo,
		teamSvc:     teamSvc,
	}
}

func (s *profileService) CreateProfile(ctx context.Context, userID int32, eSignature string) (*domain.Profile, error) {
	if eSignature == "" {
		return nil, domain.Validation("an e-signature is required")
	}

	if _, err := s.profileRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domain.Conflict("profile already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsTestAccount {
		if err := s.checkAdmitted(ctx, userID); err != nil {
			return nil, err
		}
	}

	team, err := s.teamSvc.CreateTeam(ctx)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		UserID:           userID,
		TeamID:           team.ID,
		ESignature:       eSignature,
		SignatureReceipt: uuid.New().String(),
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// checkAdmitted enforces the admission gate: accepted review, sent decision
// and a positive RSVP.
func (s *profileService) checkAdmitted(ctx context.Context, userID int32) error {
	app, err := s.appRepo.GetByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Forbidden("you have not been accepted to the event")
	}
	if err != nil {
		return err
	}

	review, err := s.reviewRepo.GetByApplicationID(ctx, app.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Forbidden("you have not been accepted to the event")
	}
	if err != nil {
		return err
	}
	if review.Status != domain.ReviewStatusAccepted || review.DecisionSentDate == nil {
		return domain.Forbidden("you have not been accepted to the event")
	}
	if !app.RSVPed {
		return domain.Forbidden("you must RSVP before checking in")
	}
	return nil
}

func (s *profileService) GetMyProfile(ctx context.Context, userID int32) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("profile not found")
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpdateFlags(ctx context.Context, userID int32, attended, idProvided, rulesAcknowledged bool) (*domain.Profile, error) {
	profile, err := s.GetMyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Attended = attended
	profile.IDProvided = idProvided
	profile.RulesAcknowledged = rulesAcknowledged
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
