package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hackathon-backend/internal/cache"
	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/logger"
	"hackathon-backend/internal/repository"
)

// AssignmentTTL bounds how long a reviewer holds an applicant team. Past it
// the reservation lapses and another reviewer may pick the team up; that race
// is accepted rather than locked against.
const AssignmentTTL = 20 * time.Minute

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	appRepo      repository.ApplicationRepository
	teamRepo     repository.TeamRepository
	userRepo     repository.UserRepository
	reservations cache.ReservationStore
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	appRepo repository.ApplicationRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	reservations cache.ReservationStore,
) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		appRepo:      appRepo,
		teamRepo:     teamRepo,
		userRepo:     userRepo,
		reservations: reservations,
	}
}

func (s *reviewService) requireReviewer(ctx context.Context, userID int32) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Role.CanReview() {
		return domain.Forbidden("review access required")
	}
	return nil
}

func (s *reviewService) CreateReview(ctx context.Context, reviewerID int32, review *domain.Review) error {
	if err := s.requireReviewer(ctx, reviewerID); err != nil {
		return err
	}
	if err := validReviewStatus(review.Status); err != nil {
		return err
	}
	if _, err := s.appRepo.GetByID(ctx, review.ApplicationID); errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("application not found")
	} else if err != nil {
		return err
	}
	if _, err := s.reviewRepo.GetByApplicationID(ctx, review.ApplicationID); err == nil {
		return domain.Conflict("application has already been reviewed")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	review.ReviewerID = reviewerID
	return s.reviewRepo.Create(ctx, review)
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewerID int32, review *domain.Review) error {
	if err := s.requireReviewer(ctx, reviewerID); err != nil {
		return err
	}
	if err := validReviewStatus(review.Status); err != nil {
		return err
	}
	existing, err := s.reviewRepo.GetByID(ctx, review.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("review not found")
	}
	if err != nil {
		return err
	}
	if existing.Frozen() {
		return domain.Conflict("decision has already been sent")
	}
	return s.reviewRepo.Update(ctx, review)
}

func (s *reviewService) RevertToWaitlisted(ctx context.Context, reviewerID, reviewID int32) error {
	if err := s.requireReviewer(ctx, reviewerID); err != nil {
		return err
	}
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("review not found")
	} else if err != nil {
		return err
	}
	return s.reviewRepo.ClearDecision(ctx, reviewID)
}

func validReviewStatus(status domain.ReviewStatus) error {
	switch status {
	case domain.ReviewStatusAccepted, domain.ReviewStatusWaitlisted, domain.ReviewStatusRejected:
		return nil
	}
	return domain.Validation("unknown review status")
}

func (s *reviewService) AssignNextTeam(ctx context.Context, reviewerID int32) (*domain.Team, []domain.Application, error) {
	if err := s.requireReviewer(ctx, reviewerID); err != nil {
		return nil, nil, err
	}

	// An unexpired reservation is re-affirmed rather than advanced, so a
	// reviewer reloading the page keeps working on the same team.
	if teamID, ok, err := s.reservations.Assignment(ctx, reviewerID); err != nil {
		return nil, nil, err
	} else if ok {
		if err := s.reservations.Reserve(ctx, reviewerID, teamID, AssignmentTTL); err != nil {
			return nil, nil, err
		}
		return s.loadAssignment(ctx, teamID)
	}

	excluded, err := s.reservedTeams(ctx)
	if err != nil {
		return nil, nil, err
	}

	teamID, err := s.appRepo.NextReviewableTeam(ctx, excluded)
	if errors.Is(err, sql.ErrNoRows) {
		if err := s.reservations.Release(ctx, reviewerID); err != nil {
			logger.Warn("Failed to release review reservation", "reviewer_id", reviewerID, "error", err)
		}
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if err := s.reservations.Reserve(ctx, reviewerID, teamID, AssignmentTTL); err != nil {
		return nil, nil, err
	}
	return s.loadAssignment(ctx, teamID)
}

// reservedTeams resolves the team ids currently held by active reviewers.
// This is a best-effort snapshot: entries may expire between the read and the
// query, in which case two reviewers can briefly hold the same team.
func (s *reviewService) reservedTeams(ctx context.Context) ([]int32, error) {
	reviewers, err := s.reservations.ActiveReviewers(ctx)
	if err != nil {
		return nil, err
	}
	var teams []int32
	for _, rid := range reviewers {
		teamID, ok, err := s.reservations.Assignment(ctx, rid)
		if err != nil {
			return nil, err
		}
		if ok {
			teams = append(teams, teamID)
		}
	}
	return teams, nil
}

func (s *reviewService) loadAssignment(ctx context.Context, teamID int32) (*domain.Team, []domain.Application, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	apps, err := s.appRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	return team, apps, nil
}
