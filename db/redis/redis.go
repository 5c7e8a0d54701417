package redis

import (
	"context"
	"fmt"
	"time"

	"movie_ratings_api/configs"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func ConnectRedis() {
	if configs.GetConfigs().RedisUrl == "" {
		return
	}
	redisClient = redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := redisClient.Ping(ctx).Result()
	fmt.Println("====> [[MovieRatings Redis Client:", pong, err, "]]")
}

// Redis is optional, a missing client reads as a cache miss and writes are
// dropped.
func GetRedis(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", redis.Nil
	}
	val, err := redisClient.Get(ctx, key).Result()
	return val, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	if redisClient == nil {
		return nil
	}
	err := redisClient.Set(ctx, key, value, duration).Err()
	return err
}
