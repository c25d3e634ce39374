// Package redis keeps simulation run progress in Redis so several event
// workers behind one push subscription share what they have folded.
package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"trajmatch/config"
	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/repository"
	"trajmatch/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// Key layout under the configured prefix:
//
//	run:<id>         JSON progress, expires after ttl
//	run:<id>:events  set of seen event ids, expires after ttl
//	runs             sorted set of run ids scored by update time
const (
	runKeyPrefix = "run:"
	eventsSuffix = ":events"
	runsIndexKey = "runs"
)

// RunProgressRepository is the Redis implementation of repository.RunProgressRepository.
type RunProgressRepository struct {
	client  *goredis.Client
	prefix  string
	ttl     time.Duration
	maxRuns int
}

// Open connects and pings the configured Redis.
func Open(ctx context.Context, cfg *config.RedisConfig, maxRuns int) (*RunProgressRepository, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
	}

	return New(client, cfg.KeyPrefix, cfg.TTL, maxRuns), nil
}

func New(client *goredis.Client, prefix string, ttl time.Duration, maxRuns int) *RunProgressRepository {
	return &RunProgressRepository{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		maxRuns: maxRuns,
	}
}

func (repo *RunProgressRepository) MarkEventSeen(ctx context.Context, runID, eventID string) (bool, error) {
	key := repo.eventsKey(runID)

	var added *goredis.IntCmd
	_, err := repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		added = pipe.SAdd(ctx, key, eventID)
		pipe.Expire(ctx, key, repo.ttl)

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to record event id")
	}

	return added.Val() == 1, nil
}

func (repo *RunProgressRepository) SaveRun(ctx context.Context, progress *entity.RunProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return errors.WithStack(err)
	}

	index := repo.key(runsIndexKey)
	expiredBefore := progress.UpdatedAt.Add(-repo.ttl).UnixNano()

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, repo.runKey(progress.RunID), data, repo.ttl)
		pipe.ZAdd(ctx, index, goredis.Z{
			Score:  float64(progress.UpdatedAt.UnixNano()),
			Member: progress.RunID,
		})
		pipe.ZRemRangeByScore(ctx, index, "-inf", "("+strconv.FormatInt(expiredBefore, 10))
		if repo.maxRuns > 0 {
			pipe.ZRemRangeByRank(ctx, index, 0, int64(-repo.maxRuns-1))
		}

		return nil
	})

	return errors.Wrapf(err, "failed to save run %s", progress.RunID)
}

func (repo *RunProgressRepository) FindRun(ctx context.Context, runID string) (*entity.RunProgress, error) {
	data, err := repo.client.Get(ctx, repo.runKey(runID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrRunNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get run %s", runID)
	}

	var progress entity.RunProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, errors.Wrapf(err, "failed to decode run %s", runID)
	}

	return &progress, nil
}

// ListRuns skips index entries whose progress key already expired.
func (repo *RunProgressRepository) ListRuns(ctx context.Context, limit int) ([]*entity.RunProgress, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := repo.client.ZRevRange(ctx, repo.key(runsIndexKey), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}
	if len(ids) == 0 {
		return []*entity.RunProgress{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = repo.runKey(id)
	}
	values, err := repo.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load runs")
	}

	runs := make([]*entity.RunProgress, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var progress entity.RunProgress
		if err := json.Unmarshal([]byte(raw), &progress); err != nil {
			return nil, errors.Wrapf(err, "failed to decode run %s", ids[i])
		}
		runs = append(runs, &progress)
	}

	return runs, nil
}

func (repo *RunProgressRepository) Close() error {
	return errors.WithStack(repo.client.Close())
}

func (repo *RunProgressRepository) key(suffix string) string {
	return repo.prefix + suffix
}

func (repo *RunProgressRepository) runKey(runID string) string {
	return repo.key(runKeyPrefix + runID)
}

func (repo *RunProgressRepository) eventsKey(runID string) string {
	return repo.runKey(runID) + eventsSuffix
}
