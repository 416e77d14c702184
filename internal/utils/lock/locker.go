package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

var ErrNotObtained = errors.New("lock not obtained")

type (
	// Locker serializes critical sections identified by key.
	Locker interface {
		Obtain(ctx context.Context, key string) (Release, error)
	}

	Release func(ctx context.Context) error

	mutexLocker struct {
		mu    sync.Mutex
		locks map[string]*sync.Mutex
	}

	redisLocker struct {
		client *redislock.Client
		ttl    time.Duration
		retry  time.Duration
	}
)

func NewMutexLocker() Locker {
	return &mutexLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *mutexLocker) Obtain(ctx context.Context, key string) (Release, error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.Lock()
	return func(context.Context) error {
		m.Unlock()
		return nil
	}, nil
}

// NewRedisLocker holds each lock for at most ttl and polls until ctx is done.
func NewRedisLocker(rdb *redis.Client, ttl time.Duration) Locker {
	return &redisLocker{
		client: redislock.New(rdb),
		ttl:    ttl,
		retry:  100 * time.Millisecond,
	}
}

func (l *redisLocker) Obtain(ctx context.Context, key string) (Release, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.ttl)
		defer cancel()
	}

	lk, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(l.retry),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrNotObtained
	}
	if err != nil {
		return nil, err
	}
	return lk.Release, nil
}
