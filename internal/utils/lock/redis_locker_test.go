package lock_test

import (
	"context"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"prep-scheduler/internal/utils/lock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires redis)")
	}
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, rdb.Ping(ctx).Err(), "redis at %s", addr)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisLocker_Serializes(t *testing.T) {
	rdb := redisClient(t)
	key := "prep-scheduler:test:" + uuid.NewString()
	ctx := context.Background()

	// Separate lockers share nothing but redis, like separate instances.
	lockers := []lock.Locker{
		lock.NewRedisLocker(rdb, 5*time.Second),
		lock.NewRedisLocker(rdb, 5*time.Second),
	}

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(l lock.Locker) {
			defer wg.Done()
			release, err := l.Obtain(ctx, key)
			require.NoError(t, err)
			n := atomic.AddInt32(&inside, 1)
			for {
				cur := atomic.LoadInt32(&maxInside)
				if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			require.NoError(t, release(ctx))
		}(lockers[i%len(lockers)])
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
}

func TestRedisLocker_NotObtainedWhileHeld(t *testing.T) {
	rdb := redisClient(t)
	key := "prep-scheduler:test:" + uuid.NewString()
	l := lock.NewRedisLocker(rdb, 5*time.Second)

	release, err := l.Obtain(context.Background(), key)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, err = l.Obtain(ctx, key)
	assert.ErrorIs(t, err, lock.ErrNotObtained)

	require.NoError(t, release(context.Background()))

	release, err = l.Obtain(context.Background(), key)
	require.NoError(t, err)
	assert.NoError(t, release(context.Background()))
}
