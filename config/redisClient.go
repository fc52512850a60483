package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()
var RedisClient *redis.Client

// CodeTTL bounds how long emailed verification and reset codes stay valid.
const CodeTTL = 15 * time.Minute

// ConnectRedis initializes the Redis client
func ConnectRedis() {
	var redisAddr = os.Getenv("REDIS_ADDRESS")
	var redisPassword = os.Getenv("REDIS_PASSWORD") // set if needed
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       0, // default DB
	})

	_, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	fmt.Println("Connected to Redis")
}

// StoreCode saves an emailed one-time code under kind:email with the code TTL.
func StoreCode(kind, email, code string) error {
	return RedisClient.Set(Ctx, kind+":"+email, code, CodeTTL).Err()
}

// CheckCode verifies a one-time code and consumes it on match.
func CheckCode(kind, email, code string) bool {
	key := kind + ":" + email
	stored, err := RedisClient.Get(Ctx, key).Result()
	if err != nil || stored != code {
		return false
	}
	RedisClient.Del(Ctx, key)
	return true
}
