package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	activeReviewersKey  = "review:reviewers"
	assignmentKeyPrefix = "review:assignment:"
)

// RedisReservationStore keeps reservations in redis. The per-reviewer
// assignment key carries its own TTL; the active set's TTL is refreshed on
// every reserve, so an idle set eventually disappears along with its entries.
type RedisReservationStore struct {
	client *redis.Client
}

func NewRedisReservationStore(client *redis.Client) *RedisReservationStore {
	return &RedisReservationStore{client: client}
}

// NewRedisClient connects to redis and verifies the connection with a ping.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func assignmentKey(reviewerID int32) string {
	return assignmentKeyPrefix + strconv.Itoa(int(reviewerID))
}

func (s *RedisReservationStore) Reserve(ctx context.Context, reviewerID, teamID int32, ttl time.Duration) error {
	if err := s.client.Set(ctx, assignmentKey(reviewerID), int64(teamID), ttl).Err(); err != nil {
		return err
	}
	if err := s.client.SAdd(ctx, activeReviewersKey, int64(reviewerID)).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, activeReviewersKey, ttl).Err()
}

func (s *RedisReservationStore) Release(ctx context.Context, reviewerID int32) error {
	if err := s.client.Del(ctx, assignmentKey(reviewerID)).Err(); err != nil {
		return err
	}
	return s.client.SRem(ctx, activeReviewersKey, int64(reviewerID)).Err()
}

func (s *RedisReservationStore) Assignment(ctx context.Context, reviewerID int32) (int32, bool, error) {
	val, err := s.client.Get(ctx, assignmentKey(reviewerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return int32(val), true, nil
}

func (s *RedisReservationStore) ActiveReviewers(ctx context.Context) ([]int32, error) {
	members, err := s.client.SMembers(ctx, activeReviewersKey).Result()
	if err != nil {
		return nil, err
	}

	var reviewers []int32
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 32)
		if err != nil {
			continue
		}
		reviewers = append(reviewers, int32(id))
	}
	return reviewers, nil
}
