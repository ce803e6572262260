package database

import (
	"api/utils"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	REDIS_STATISTICS_TTL   = 60 * time.Second
	KEY_STATISTICS         = "crm:statistics:all"
	KEY_PREFIX_CALCULATION = "crm:calculations:"
)

func NewRedisClient() (*redis.Client, error) {
	opts, err := redis.ParseURL(os.Getenv(utils.REDIS_URI))
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}
