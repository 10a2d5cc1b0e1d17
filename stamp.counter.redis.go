package stamp

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis counter store defaults
const (
	RedisCounterKeyPrefix   = "stamp:counter:"
	RedisCounterScanCount   = 100
	RedisCounterOpenTimeout = 5 * time.Second
	redisKeyWildcard        = "*"
)

// redisNextScript sets the initial value when the key is new, otherwise
// increments by step, in one atomic server-side call.
var redisNextScript = redis.NewScript(`
if redis.call('SET', KEYS[1], ARGV[1], 'NX') then
	return tonumber(ARGV[1])
end
return redis.call('INCRBY', KEYS[1], ARGV[2])
`)

// RedisCounterStore keeps counters in Redis so several processes share them.
type RedisCounterStore struct {
	client redis.UniversalClient
	prefix string
	owned  bool
	closed atomic.Bool
}

// RedisCounterOption configures a RedisCounterStore.
type RedisCounterOption func(*RedisCounterStore)

// WithRedisKeyPrefix sets the key prefix. Default: "stamp:counter:".
func WithRedisKeyPrefix(prefix string) RedisCounterOption {
	return func(s *RedisCounterStore) {
		s.prefix = prefix
	}
}

// NewRedisCounterStore wraps an existing client. The caller keeps ownership
// of the client; Close does not close it.
func NewRedisCounterStore(client redis.UniversalClient, opts ...RedisCounterOption) *RedisCounterStore {
	s := &RedisCounterStore{
		client: client,
		prefix: RedisCounterKeyPrefix,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func init() {
	RegisterCounterDriver(CounterDriverRedis, CounterDriverFunc(openRedisCounterStore))
}

// openRedisCounterStore parses a redis:// URL, connects and pings.
func openRedisCounterStore(dsn string) (CounterStore, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, NewCounterStoreError(CounterOpOpen, err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), RedisCounterOpenTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, NewCounterStoreError(CounterOpOpen, err)
	}

	s := NewRedisCounterStore(client)
	s.owned = true
	return s, nil
}

func (s *RedisCounterStore) key(name string) string {
	return s.prefix + name
}

// Next implements CounterStore.
func (s *RedisCounterStore) Next(ctx context.Context, name string, initial, step int64) (int64, error) {
	if s.closed.Load() {
		return 0, NewCounterStoreClosedError(CounterOpNext)
	}
	v, err := redisNextScript.Run(ctx, s.client, []string{s.key(name)}, initial, step).Int64()
	if err != nil {
		return 0, NewCounterStoreError(CounterOpNext, err)
	}
	return v, nil
}

// Peek implements CounterStore.
func (s *RedisCounterStore) Peek(ctx context.Context, name string) (int64, bool, error) {
	if s.closed.Load() {
		return 0, false, NewCounterStoreClosedError(CounterOpPeek)
	}
	raw, err := s.client.Get(ctx, s.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, NewCounterStoreError(CounterOpPeek, err)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, NewCounterStoreError(CounterOpPeek, err)
	}
	return v, true, nil
}

// Reset implements CounterStore.
func (s *RedisCounterStore) Reset(ctx context.Context, name string) error {
	if s.closed.Load() {
		return NewCounterStoreClosedError(CounterOpReset)
	}
	if err := s.client.Del(ctx, s.key(name)).Err(); err != nil {
		return NewCounterStoreError(CounterOpReset, err)
	}
	return nil
}

// ResetAll deletes every key under the store's prefix.
func (s *RedisCounterStore) ResetAll(ctx context.Context) error {
	if s.closed.Load() {
		return NewCounterStoreClosedError(CounterOpResetAll)
	}

	iter := s.client.Scan(ctx, 0, s.prefix+redisKeyWildcard, RedisCounterScanCount).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= RedisCounterScanCount {
			if err := s.client.Del(ctx, batch...).Err(); err != nil {
				return NewCounterStoreError(CounterOpResetAll, err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return NewCounterStoreError(CounterOpResetAll, err)
	}
	if len(batch) > 0 {
		if err := s.client.Del(ctx, batch...).Err(); err != nil {
			return NewCounterStoreError(CounterOpResetAll, err)
		}
	}
	return nil
}

// Close implements CounterStore. Only clients opened by the driver are closed.
func (s *RedisCounterStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if s.owned {
		return s.client.Close()
	}
	return nil
}
