package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
)

var (
	ErrLockNotAcquired = errors.New(errors.ErrCodeConflict, "lock already held")
	ErrLockNotHeld     = errors.New(errors.ErrCodeConflict, "lock not held by this token")
)

// releaseScript deletes the key only when it still holds our token, so an
// expired-and-reacquired lock is never released by the previous owner.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Mutex is a single-instance distributed lock.  The worker takes one per
// reaction-type tag before regenerating an evidence summary, so concurrent
// workers never double-aggregate the same partition.
type Mutex struct {
	client *Client
	prefix string
	logger logging.Logger
}

// NewMutex builds a Mutex namespaced under prefix.
func NewMutex(client *Client, prefix string, log logging.Logger) *Mutex {
	if prefix == "" {
		prefix = "condrec:lock:"
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Mutex{client: client, prefix: prefix, logger: log.Named("mutex")}
}

// Acquire takes the lock for name, returning an opaque token the holder must
// present to Release.  ErrLockNotAcquired means another holder owns it.
func (m *Mutex) Acquire(ctx context.Context, name string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	token := uuid.NewString()
	ok, err := m.client.rdb.SetNX(ctx, m.prefix+name, token, ttl).Result()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeCacheError, "acquire lock").WithDetail("name=" + name)
	}
	if !ok {
		return "", ErrLockNotAcquired
	}
	m.logger.Debug("lock acquired", logging.String("name", name))
	return token, nil
}

// Release frees the lock if token still owns it.
func (m *Mutex) Release(ctx context.Context, name, token string) error {
	n, err := releaseScript.Run(ctx, m.client.rdb, []string{m.prefix + name}, token).Int()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "release lock").WithDetail("name=" + name)
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	m.logger.Debug("lock released", logging.String("name", name))
	return nil
}
