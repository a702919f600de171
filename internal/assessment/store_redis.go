package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vcfready/vcfready/pkg/ledger"
)

// DefaultSessionTTL is how long an idle assessment is kept in Redis.
const DefaultSessionTTL = 7 * 24 * time.Hour

const indexKey = "assessments"

// RedisStore keeps assessments as JSON values with a sliding TTL. A sorted
// set indexes IDs by update time for List.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore creates a Redis-backed Store. ttl <= 0 uses DefaultSessionTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func assessmentKey(id string) string {
	return "assessment:" + id
}

// Save writes the assessment and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, a *Assessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, assessmentKey(a.ID), data, s.ttl)
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(a.UpdatedAt.UnixNano()), Member: a.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save %s: %w", a.ID, err)
	}
	return nil
}

// Get loads an assessment. Expired sessions are reported as ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (*Assessment, error) {
	data, err := s.client.Get(ctx, assessmentKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", id, err)
	}
	return decodeAssessment(data)
}

// List returns live assessments, most recently updated first. Index members
// whose session expired are pruned.
func (s *RedisStore) List(ctx context.Context) ([]*Assessment, error) {
	ids, err := s.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = assessmentKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	var (
		out   []*Assessment
		stale []any
	)
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		a, err := decodeAssessment([]byte(str))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	s.pruneIndex(ctx, stale)
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

// pruneIndex drops expired IDs from the index. Failures only leave stale
// IDs behind for the next List, so they are logged and not returned.
func (s *RedisStore) pruneIndex(ctx context.Context, ids []any) {
	if len(ids) == 0 {
		return
	}
	if err := s.client.ZRem(ctx, indexKey, ids...).Err(); err != nil {
		s.logger.Warn("prune assessment index",
			zap.Int("stale", len(ids)),
			zap.Error(err))
	}
}

func decodeAssessment(data []byte) (*Assessment, error) {
	var a Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("unmarshal assessment: %w", err)
	}
	if a.SubPaths == nil {
		a.SubPaths = []string{}
	}
	if a.Ledger == nil {
		a.Ledger = ledger.New()
	}
	return &a, nil
}
