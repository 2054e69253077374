package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glowSkincare/business/questionnaire"
	"glowSkincare/domain"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// QuestionnaireRepository keeps in-progress questionnaire sessions so a
// user can resume where they left off.
type QuestionnaireRepository struct {
	client *redis.Client
}

var _ questionnaire.SessionRepository = (*QuestionnaireRepository)(nil)

func NewQuestionnaireRepository(client *redis.Client) *QuestionnaireRepository {
	return &QuestionnaireRepository{client: client}
}

func sessionKey(id string) string {
	return fmt.Sprintf("questionnaire:session:%s", id)
}

func (r *QuestionnaireRepository) SaveSession(ctx context.Context, id string, record questionnaire.Record, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal questionnaire session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store questionnaire session: %w", err)
	}

	return nil
}

func (r *QuestionnaireRepository) GetSession(ctx context.Context, id string) (questionnaire.Record, error) {
	val, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return questionnaire.Record{}, fmt.Errorf("%w: questionnaire session", domain.ErrNotFound)
		}
		return questionnaire.Record{}, fmt.Errorf("failed to get questionnaire session: %w", err)
	}

	var record questionnaire.Record
	if err := json.Unmarshal(val, &record); err != nil {
		return questionnaire.Record{}, fmt.Errorf("failed to unmarshal questionnaire session: %w", err)
	}

	return record, nil
}

// CompareAndSwapSession watches the session key so the write is dropped when
// another request changes the session between the version check and EXEC.
func (r *QuestionnaireRepository) CompareAndSwapSession(ctx context.Context, id string, expectedVersion int64, next questionnaire.Record, ttl time.Duration) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to marshal questionnaire session: %w", err)
	}

	key := sessionKey(id)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return fmt.Errorf("%w: questionnaire session", domain.ErrNotFound)
			}
			return fmt.Errorf("failed to get questionnaire session: %w", err)
		}

		var current questionnaire.Record
		if err := json.Unmarshal(val, &current); err != nil {
			return fmt.Errorf("failed to unmarshal questionnaire session: %w", err)
		}
		if current.Version != expectedVersion {
			return questionnaire.ErrSessionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return questionnaire.ErrSessionConflict
	}
	if err != nil && !errors.Is(err, questionnaire.ErrSessionConflict) && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to store questionnaire session: %w", err)
	}
	return err
}

func (r *QuestionnaireRepository) DeleteSession(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete questionnaire session: %w", err)
	}
	return nil
}
