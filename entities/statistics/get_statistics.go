package statistics

import (
	"api/database"
	"api/entities/requests"
	"api/logger"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// GetStatistics serves the all-time report. The computation scans the whole
// collection, so the finished report is cached in redis for a short TTL;
// redis being down only disables the cache, never the report.
func GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	if cached, ok := readCache(ctx); ok {
		utils.SendResponse(w, http.StatusOK, "", cached, 0)
		return
	}

	opts := options.Client().ApplyURI(os.Getenv(utils.MONGODB_URI))
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	snapshot, err := requests.FetchAll(ctx, mongoClient)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_REQUESTS_IN_MONGODB)
		return
	}

	stats := Compute(snapshot, time.Now())
	writeCache(ctx, stats)

	utils.SendResponse(w, http.StatusOK, "", stats, 0)
}

func readCache(ctx context.Context) (schemas.Statistics, bool) {
	stats := schemas.Statistics{}

	rdb, err := database.NewRedisClient()
	if err != nil {
		return stats, false
	}
	defer rdb.Close()

	raw, err := rdb.Get(ctx, database.KEY_STATISTICS).Result()
	if err != nil {
		return stats, false
	}

	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return stats, false
	}
	return stats, true
}

func writeCache(ctx context.Context, stats schemas.Statistics) {
	rdb, err := database.NewRedisClient()
	if err != nil {
		logger.Log().Warn("statistics cache unavailable", zap.Error(err))
		return
	}
	defer rdb.Close()

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := rdb.Set(ctx, database.KEY_STATISTICS, raw, database.REDIS_STATISTICS_TTL).Err(); err != nil {
		logger.Log().Warn("statistics cache write failed", zap.Error(err))
	}
}
