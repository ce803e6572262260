package requests

import (
	"api/database"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GetAll lists requests with optional in-memory filtering: ?status=,
// ?company_id=, ?company_name=, ?from=, ?to=, ?q= and ?group=day.
func GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	opts := options.Client().ApplyURI(os.Getenv(utils.MONGODB_URI))
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	snapshot, err := FetchAll(ctx, mongoClient)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_REQUESTS_IN_MONGODB)
		return
	}

	query := r.URL.Query()
	filter := Filter{
		Status: query.Get("status"),
		Company: CompanyRef{
			ID:   query.Get("company_id"),
			Name: query.Get("company_name"),
		},
		From: parseQueryTime(query.Get("from"), false),
		To:   parseQueryTime(query.Get("to"), true),
		Text: query.Get("q"),
	}

	matched := filter.Apply(snapshot)

	if query.Get("group") == "day" {
		utils.SendResponse(w, http.StatusOK, "", GroupByDay(matched, time.Now()), 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", matched, 0)
}

// Accepts RFC3339 or a plain date; a plain "to" date extends to the end of
// that day so the bound stays inclusive.
func parseQueryTime(value string, endOfDay bool) time.Time {
	if value == "" {
		return time.Time{}
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed
	}

	if parsed, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		if endOfDay {
			return utils.DayEnd(parsed)
		}
		return parsed
	}

	return time.Time{}
}
