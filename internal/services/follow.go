package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/quisapi/quisapi/internal/models"
	"github.com/quisapi/quisapi/internal/repositories"
	"github.com/quisapi/quisapi/internal/tx"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrSelfFollow       = errors.New("cannot follow own quiz group")
	ErrAlreadyFollowing = errors.New("already following quiz group")
	ErrNotFollowing     = errors.New("not following quiz group")
	ErrFollowFailed     = errors.New("follow operation failed")
)

// FollowLedgerWriter defines the atomic follower-row-plus-counter mutations.
// Both methods must be called on a context carrying a transaction.
type FollowLedgerWriter interface {
	Save(ctx context.Context, userID, quizGroupID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, quizGroupID uuid.UUID) (int64, error)
}

// FollowCountCache caches per-group follower counts.
type FollowCountCache interface {
	Get(ctx context.Context, quizGroupID uuid.UUID) (int64, error)
	Set(ctx context.Context, quizGroupID uuid.UUID, followings int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

/// FollowService maintains the follow ledger: the follower relation and the
// denormalized followings counter change together or not at all. Each
// Follow/Unfollow call runs as one transaction with bounded retry on storage
// conflicts; cache refresh and event publishing happen after commit and are
// best effort.
type FollowService struct {
	db          *sqlx.DB
	groups      QuizGroupReader
	ledger      FollowLedgerWriter
	cache       FollowCountCache
	kafkaWriter KafkaWriter
}

// NewFollowService creates a new FollowService.
func NewFollowService(
	db *sqlx.DB,
	groups QuizGroupReader,
	ledger FollowLedgerWriter,
	cache FollowCountCache,
	kafkaWriter KafkaWriter,
) *FollowService {
	return &FollowService{
		db:          db,
		groups:      groups,
		ledger:      ledger,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Follow makes userID a follower of the group and returns the new follower
// count. Owners cannot follow their own groups, and a private group owned by
// someone else reads as missing.
func (s *FollowService) Follow(ctx context.Context, userID, quizGroupID uuid.UUID) (int64, error) {
	group, err := s.groups.GetByID(ctx, quizGroupID)
	if err != nil {
		logger.Log.Errorw("failed to get quiz group", "quizGroupID", quizGroupID, "error", err)
		return 0, err
	}
	if group == nil || (!group.Scope && group.UserID != userID) {
		return 0, ErrQuizGroupNotFound
	}
	if group.UserID == userID {
		return 0, ErrSelfFollow
	}

	var followings int64
	err = tx.Run(ctx, s.db, func(ctx context.Context) error {
		n, err := s.ledger.Save(ctx, userID, quizGroupID)
		followings = n
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrFollowerExists):
			return 0, ErrAlreadyFollowing
		case errors.Is(err, repositories.ErrFollowedGroupMissing):
			return 0, ErrQuizGroupNotFound
		case tx.Retryable(err):
			logger.Log.Errorw("follow transaction kept conflicting", "userID", userID, "quizGroupID", quizGroupID, "error", err)
			return 0, ErrFollowFailed
		}
		logger.Log.Errorw("failed to follow quiz group", "userID", userID, "quizGroupID", quizGroupID, "error", err)
		return 0, err
	}

	s.refreshCache(ctx, quizGroupID, followings)
	s.publishEvent(ctx, userID, quizGroupID, models.FollowActionFollow, followings)

	return followings, nil
}

// Unfollow removes userID from the group's followers and returns the new
// follower count. Without a prior follow the relation reads as missing.
func (s *FollowService) Unfollow(ctx context.Context, userID, quizGroupID uuid.UUID) (int64, error) {
	var followings int64
	err := tx.Run(ctx, s.db, func(ctx context.Context) error {
		n, err := s.ledger.Delete(ctx, userID, quizGroupID)
		followings = n
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrFollowerNotFound):
			return 0, ErrNotFollowing
		case tx.Retryable(err):
			logger.Log.Errorw("unfollow transaction kept conflicting", "userID", userID, "quizGroupID", quizGroupID, "error", err)
			return 0, ErrFollowFailed
		}
		logger.Log.Errorw("failed to unfollow quiz group", "userID", userID, "quizGroupID", quizGroupID, "error", err)
		return 0, err
	}

	s.refreshCache(ctx, quizGroupID, followings)
	s.publishEvent(ctx, userID, quizGroupID, models.FollowActionUnfollow, followings)

	return followings, nil
}

// Followings returns the follower count of a group visible to the principal,
// preferring the cache over the stored counter.
func (s *FollowService) Followings(ctx context.Context, userID *uuid.UUID, quizGroupID uuid.UUID) (int64, error) {
	group, err := s.groups.GetByID(ctx, quizGroupID)
	if err != nil {
		logger.Log.Errorw("failed to get quiz group", "quizGroupID", quizGroupID, "error", err)
		return 0, err
	}
	if group == nil || !groupVisibleTo(group, userID) {
		return 0, ErrQuizGroupNotFound
	}

	if s.cache != nil {
		if count, err := s.cache.Get(ctx, quizGroupID); err == nil {
			return count, nil
		}
		s.refreshCache(ctx, quizGroupID, group.Followings)
	}

	return group.Followings, nil
}

// refreshCache stores the latest counter value, logging failures only.
func (s *FollowService) refreshCache(ctx context.Context, quizGroupID uuid.UUID, followings int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, quizGroupID, followings); err != nil {
		logger.Log.Errorw("failed to cache follow count", "quizGroupID", quizGroupID, "followings", followings, "error", err)
	}
}

// publishEvent publishes a follow/unfollow event to Kafka.
func (s *FollowService) publishEvent(ctx context.Context, userID, quizGroupID uuid.UUID, action string, followings int64) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "quizGroupID", quizGroupID, "action", action)
		return
	}

	event := models.FollowEvent{
		EventID:     uuid.NewString(),
		UserID:      userID.String(),
		QuizGroupID: quizGroupID.String(),
		Action:      action,
		Followings:  followings,
		Timestamp:   time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal follow event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.QuizGroupID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish follow event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Follow event published to Kafka", "event_id", event.EventID, "action", action, "followings", followings)
	}
}
