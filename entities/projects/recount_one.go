package projects

import (
	"api/database"
	"api/entities/requests"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// RecountOne rebuilds the cached rollup counters by re-scanning the request
// collection. The counters are never authoritative; recomputing them at any
// time loses nothing.
func RecountOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PROJECT_ID_FORMAT)
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

	counters := Recount(snapshot)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_PROJECTS)

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "new_requests", Value: counters.NewRequests},
		{Key: "total_requests", Value: counters.TotalRequests},
		{Key: "accepted", Value: counters.Accepted},
		{Key: "rejected", Value: counters.Rejected},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_PROJECT_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Project not found", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", counters, 0)
}

type Counters struct {
	NewRequests   int `json:"new_requests"`
	TotalRequests int `json:"total_requests"`
	Accepted      int `json:"accepted"`
	Rejected      int `json:"rejected"`
}

func Recount(collection []schemas.Request) Counters {
	counters := Counters{}
	for _, request := range collection {
		counters.TotalRequests++
		switch request.Status {
		case schemas.REQUEST_STATUS_NEW:
			counters.NewRequests++
		case schemas.REQUEST_STATUS_ACCEPTED:
			counters.Accepted++
		case schemas.REQUEST_STATUS_REJECTED:
			counters.Rejected++
		}
	}
	return counters
}
