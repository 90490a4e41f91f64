package queue

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"expitrack/internal/domain/service"
	"expitrack/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	delayedSetKey   = "notifq:delayed"
	payloadHashKey  = "notifq:payloads"
	retryCounterKey = "notifq:retries"

	cancelScanBatch = 200
)

// redisJobQueue implements service.JobQueue on a Redis sorted set.
// Members of the sorted set are job keys scored by fire time (unix
// milliseconds); payloads live in a companion hash keyed by job key.
// ZADD NX gives the deterministic-key duplicate suppression.
type redisJobQueue struct {
	client *redis.Client
}

// NewRedisJobQueue is the constructor for redisJobQueue.
func NewRedisJobQueue(client *redis.Client) service.JobQueue {
	return &redisJobQueue{client: client}
}

// Submit enqueues a job to fire at job.FireAt. A key that is already
// queued returns service.ErrDuplicateJob.
func (q *redisJobQueue) Submit(ctx context.Context, job *service.Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "failed to marshal job")
	}

	added, err := q.client.ZAddNX(ctx, delayedSetKey, redis.Z{
		Score:  float64(job.FireAt.UnixMilli()),
		Member: job.Key,
	}).Result()
	if err != nil {
		return errors.Wrap(err, "failed to enqueue job")
	}
	if added == 0 {
		return service.ErrDuplicateJob
	}

	if err := q.client.HSet(ctx, payloadHashKey, job.Key, payload).Err(); err != nil {
		// Roll the member back so the key does not stay queued without a payload.
		q.client.ZRem(ctx, delayedSetKey, job.Key)

		return errors.Wrap(err, "failed to store job payload")
	}

	return nil
}

// ClaimDue atomically removes and returns up to limit due jobs. ZREM
// returning 1 is the claim: concurrent workers cannot claim the same key.
func (q *redisJobQueue) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*service.Job, error) {
	keys, err := q.client.ZRangeByScore(ctx, delayedSetKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   formatScore(now),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to range due jobs")
	}

	jobs := make([]*service.Job, 0, len(keys))
	for _, key := range keys {
		removed, err := q.client.ZRem(ctx, delayedSetKey, key).Result()
		if err != nil {
			return jobs, errors.Wrap(err, "failed to claim job")
		}
		if removed == 0 {
			// Another worker claimed it first.
			continue
		}

		payload, err := q.client.HGet(ctx, payloadHashKey, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}

			return jobs, errors.Wrap(err, "failed to load job payload")
		}
		q.client.HDel(ctx, payloadHashKey, key)

		job := &service.Job{}
		if err := json.Unmarshal([]byte(payload), job); err != nil {
			return jobs, errors.Wrap(err, "failed to unmarshal job payload")
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}

// Retry re-enqueues a claimed job to fire after the given delay,
// incrementing its attempt counter.
func (q *redisJobQueue) Retry(ctx context.Context, job *service.Job, delay time.Duration) error {
	retried := *job
	retried.Attempts++
	retried.FireAt = time.Now().Add(delay)

	payload, err := json.Marshal(&retried)
	if err != nil {
		return errors.Wrap(err, "failed to marshal retried job")
	}

	pipe := q.client.TxPipeline()
	pipe.ZAdd(ctx, delayedSetKey, redis.Z{
		Score:  float64(retried.FireAt.UnixMilli()),
		Member: retried.Key,
	})
	pipe.HSet(ctx, payloadHashKey, retried.Key, payload)
	pipe.Incr(ctx, retryCounterKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to re-enqueue job")
	}

	*job = retried

	return nil
}

// CancelByItem removes all queued jobs referencing the given item. Jobs
// are matched by scanning payloads, mirroring how delayed queue entries
// are searched for a deleted item's reminders.
func (q *redisJobQueue) CancelByItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var removed int64
	var cursor uint64

	for {
		fields, next, err := q.client.HScan(ctx, payloadHashKey, cursor, "*", cancelScanBatch).Result()
		if err != nil {
			return removed, errors.Wrap(err, "failed to scan job payloads")
		}

		// HScan yields alternating field/value pairs.
		for i := 0; i+1 < len(fields); i += 2 {
			key, payload := fields[i], fields[i+1]

			job := &service.Job{}
			if err := json.Unmarshal([]byte(payload), job); err != nil {
				continue
			}
			if job.ItemID == nil || *job.ItemID != itemID {
				continue
			}

			pipe := q.client.TxPipeline()
			pipe.ZRem(ctx, delayedSetKey, key)
			pipe.HDel(ctx, payloadHashKey, key)
			if _, err := pipe.Exec(ctx); err != nil {
				return removed, errors.Wrap(err, "failed to remove cancelled job")
			}
			removed++
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return removed, nil
}

// Counts reports current queue depth. Retry is the cumulative number of
// re-enqueues since the counter was last reset.
func (q *redisJobQueue) Counts(ctx context.Context) (*service.QueueCounts, error) {
	delayed, err := q.client.ZCard(ctx, delayedSetKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count delayed jobs")
	}

	retries, err := q.client.Get(ctx, retryCounterKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, errors.Wrap(err, "failed to read retry counter")
	}

	return &service.QueueCounts{
		Delayed: delayed,
		Retry:   retries,
	}, nil
}

func formatScore(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
