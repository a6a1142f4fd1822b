package domain

import "time"

type Application struct {
	ID          int32     `json:"id"`
	UserID      int32     `json:"user_id"`
	TeamID      int32     `json:"team_id"`
	Description string    `json:"description"`
	RSVPed      bool      `json:"rsvped"`
	SubmittedOn time.Time `json:"submitted_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

type ReviewStatus string

const (
	ReviewStatusAccepted   ReviewStatus = "ACCEPTED"
	ReviewStatusWaitlisted ReviewStatus = "WAITLISTED"
	ReviewStatusRejected   ReviewStatus = "REJECTED"
)

type Review struct {
	ID             int32        `json:"id"`
	ApplicationID  int32        `json:"application_id"`
	ReviewerID     int32        `json:"reviewer_id"`
	TechnicalScore int32        `json:"technical_score"`
	IdeaScore      int32        `json:"idea_score"`
	Comments       string       `json:"comments"`
	Status         ReviewStatus `json:"status"`
	// DecisionSentDate is nil until the decision email has gone out. Once set
	// with an ACCEPTED or REJECTED status the review is frozen except for the
	// explicit revert-to-waitlisted path.
	DecisionSentDate *time.Time `json:"decision_sent_date,omitempty"`
	CreatedOn        time.Time  `json:"created_on"`
	UpdatedOn        time.Time  `json:"updated_on"`
}

// Frozen reports whether the review may no longer be edited.
func (r *Review) Frozen() bool {
	return r.DecisionSentDate != nil &&
		(r.Status == ReviewStatusAccepted || r.Status == ReviewStatusRejected)
}
