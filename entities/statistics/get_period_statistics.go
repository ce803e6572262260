package statistics

import (
	"api/database"
	"api/entities/requests"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GetPeriodStatistics serves the windowed report with categorical
// breakdowns: ?period=today|yesterday|week|month|quarter|year|all|custom
// plus ?from=/&to= (YYYY-MM-DD) when the period is custom.
func GetPeriodStatistics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	period := query.Get("period")
	if period == "" {
		period = PERIOD_WEEK
	}

	var customFrom, customTo time.Time
	if value := query.Get("from"); value != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
			customFrom = parsed
		}
	}
	if value := query.Get("to"); value != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
			customTo = utils.DayEnd(parsed)
		}
	}

	from, to, err := ResolveWindow(period, customFrom, customTo, time.Now())
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, err.Error(), nil, 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

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

	utils.SendResponse(w, http.StatusOK, "", ComputeWindow(snapshot, from, to), 0)
}
