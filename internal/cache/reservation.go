package cache

import (
	"context"
	"time"
)

// ReservationStore coordinates which reviewer currently holds which applicant
// team. Reservations are advisory: entries expire after their TTL, so a
// reviewer who sits on a team too long can lose it to someone else. Callers
// must tolerate the occasional duplicate assignment.
type ReservationStore interface {
	// Reserve records reviewer -> teamID and marks the reviewer active, both
	// for ttl. Re-reserving refreshes the expiry.
	Reserve(ctx context.Context, reviewerID, teamID int32, ttl time.Duration) error

	// Release drops the reviewer's assignment and removes them from the
	// active set. Releasing a reviewer with no assignment is a no-op.
	Release(ctx context.Context, reviewerID int32) error

	// Assignment returns the team currently reserved by the reviewer, if any.
	Assignment(ctx context.Context, reviewerID int32) (int32, bool, error)

	// ActiveReviewers lists reviewers whose reservations have not expired.
	ActiveReviewers(ctx context.Context) ([]int32, error)
}
