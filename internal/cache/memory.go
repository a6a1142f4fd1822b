package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryReservationStore is an in-process ReservationStore with real TTL
// behavior. It backs tests and single-node deployments without redis.
type MemoryReservationStore struct {
	mu      sync.Mutex
	entries map[int32]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	teamID    int32
	expiresAt time.Time
}

func NewMemoryReservationStore() *MemoryReservationStore {
	return &MemoryReservationStore{
		entries: make(map[int32]memoryEntry),
		now:     time.Now,
	}
}

// SetClock overrides the time source so tests can force expiry.
func (s *MemoryReservationStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryReservationStore) Reserve(ctx context.Context, reviewerID, teamID int32, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[reviewerID] = memoryEntry{teamID: teamID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryReservationStore) Release(ctx context.Context, reviewerID int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, reviewerID)
	return nil
}

func (s *MemoryReservationStore) Assignment(ctx context.Context, reviewerID int32) (int32, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[reviewerID]
	if !ok || s.now().After(e.expiresAt) {
		delete(s.entries, reviewerID)
		return 0, false, nil
	}
	return e.teamID, true, nil
}

func (s *MemoryReservationStore) ActiveReviewers(ctx context.Context) ([]int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reviewers []int32
	for id, e := range s.entries {
		if s.now().After(e.expiresAt) {
			delete(s.entries, id)
			continue
		}
		reviewers = append(reviewers, id)
	}
	return reviewers, nil
}
