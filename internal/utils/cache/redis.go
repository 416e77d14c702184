package cache

import (
	"context"
	"prep-scheduler/internal/utils"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_ADDRESS is empty or the server does not answer a ping.
func ConnectRedis() *redis.Client {
	addr := utils.GetConfig("REDIS_ADDRESS")
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetConfig("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		utils.LogError("cache", "ConnectRedis", "ping "+addr, nil, err)
		_ = rdb.Close()
		return nil
	}

	utils.GetLogger().WithField("addr", addr).Info("connected to redis")
	return rdb
}
