package service

import (
	"context"
	"fmt"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/logger"
	"hackathon-backend/internal/repository"
)

type decisionMailer struct {
	reviewRepo repository.ReviewRepository
	appRepo    repository.ApplicationRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
	eventName  string
	location   *time.Location
}

func NewDecisionMailer(
	reviewRepo repository.ReviewRepository,
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	eventName string,
	location *time.Location,
) DecisionMailer {
	return &decisionMailer{
		reviewRepo: reviewRepo,
		appRepo:    appRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
		eventName:  eventName,
		location:   location,
	}
}

// SendDecisions marks each review independently right after its email goes
// out. A failure partway leaves earlier reviews sent and marked; a retry with
// the same arguments picks up only the remainder.
func (s *decisionMailer) SendDecisions(ctx context.Context, actorID int32, status domain.ReviewStatus, dateFrom, dateTo string, quantity int32) (int32, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return 0, err
	}
	if !actor.Role.CanReview() {
		return 0, domain.Forbidden("review access required")
	}
	if err := validReviewStatus(status); err != nil {
		return 0, err
	}
	if quantity <= 0 {
		return 0, domain.Validation("quantity must be positive")
	}

	from, err := time.ParseInLocation("2006-01-02", dateFrom, s.location)
	if err != nil {
		return 0, domain.Validation("invalid start date")
	}
	to, err := time.ParseInLocation("2006-01-02", dateTo, s.location)
	if err != nil {
		return 0, domain.Validation("invalid end date")
	}
	if to.Before(from) {
		return 0, domain.Validation("end date precedes start date")
	}
	// Civil dates are inclusive on both ends. Roll to the last instant of the
	// end day in the event timezone; adding 24h drifts on DST transition days.
	to = time.Date(to.Year(), to.Month(), to.Day()+1, 0, 0, 0, -1, s.location)

	reviews, err := s.reviewRepo.ListPendingDecisions(ctx, status, from, to, quantity)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, nil
	}

	sender, err := s.emailSvc.Dial()
	if err != nil {
		return 0, domain.Internal("could not open mail connection", err)
	}
	defer sender.Close()

	var sent int32
	for _, review := range reviews {
		if err := s.sendOne(ctx, sender, &review); err != nil {
			logger.Error("Decision batch aborted", "review_id", review.ID, "sent", sent, "error", err)
			return sent, err
		}
		sent++
	}
	logger.Info("Decision batch complete", "status", status, "sent", sent)
	return sent, nil
}

func (s *decisionMailer) sendOne(ctx context.Context, sender MailSender, review *domain.Review) error {
	app, err := s.appRepo.GetByID(ctx, review.ApplicationID)
	if err != nil {
		return fmt.Errorf("loading application %d: %w", review.ApplicationID, err)
	}
	user, err := s.userRepo.GetByID(ctx, app.UserID)
	if err != nil {
		return fmt.Errorf("loading applicant %d: %w", app.UserID, err)
	}

	subject, body := s.decisionMessage(user.Name, review.Status)
	if err := sender.Send(user.Email, subject, body); err != nil {
		return fmt.Errorf("sending decision to %s: %w", user.Email, err)
	}
	if err := s.reviewRepo.MarkDecisionSent(ctx, review.ID, time.Now().In(s.location)); err != nil {
		return fmt.Errorf("marking review %d sent: %w", review.ID, err)
	}
	return nil
}

func (s *decisionMailer) decisionMessage(name string, status domain.ReviewStatus) (string, string) {
	switch status {
	case domain.ReviewStatusAccepted:
		return fmt.Sprintf("You're in! %s decision", s.eventName),
			fmt.Sprintf("Hello %s,\n\nCongratulations, your application to %s has been accepted!\n\nLog in to RSVP and secure your spot.\n\nBest regards,\nThe %s Team", name, s.eventName, s.eventName)
	case domain.ReviewStatusRejected:
		return fmt.Sprintf("%s application decision", s.eventName),
			fmt.Sprintf("Hello %s,\n\nThank you for applying to %s. Unfortunately we are unable to offer you a spot this year.\n\nWe hope to see you apply again.\n\nBest regards,\nThe %s Team", name, s.eventName, s.eventName)
	default:
		return fmt.Sprintf("%s application update", s.eventName),
			fmt.Sprintf("Hello %s,\n\nYour application to %s is on the waitlist. We will let you know as soon as a spot opens up.\n\nBest regards,\nThe %s Team", name, s.eventName, s.eventName)
	}
}
