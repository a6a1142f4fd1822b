package domain

import "time"

type UserRole string

const (
	UserRoleHacker UserRole = "HACKER"
	UserRoleStaff  UserRole = "STAFF"
	UserRoleAdmin  UserRole = "ADMIN"
)

// CanReview reports whether the role carries the review capability.
func (r UserRole) CanReview() bool {
	return r == UserRoleStaff || r == UserRoleAdmin
}

type User struct {
	ID            int32     `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Name          string    `json:"name"`
	Role          UserRole  `json:"role"`
	IsTestAccount bool      `json:"is_test_account"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

// Profile is the hackathon-specific state of an admitted attendee. A user
// acquires a profile only after their application is accepted and RSVP'd,
// except for designated test accounts.
type Profile struct {
	ID                int32     `json:"id"`
	UserID            int32     `json:"user_id"`
	TeamID            int32     `json:"team_id"`
	Attended          bool      `json:"attended"`
	IDProvided        bool      `json:"id_provided"`
	RulesAcknowledged bool      `json:"rules_acknowledged"`
	ESignature        string    `json:"e_signature"`
	SignatureReceipt  string    `json:"signature_receipt"`
	CreatedOn         time.Time `json:"created_on"`
}
