package calculations

import (
	"api/database"
	"api/entities/requests"
	"api/middlewares"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type finalizeBody struct {
	RemainingBalance float64 `json:"remaining_balance"`
}

// FinalizeOne stops a tracking session: the end date is now, spend is
// budget minus whatever balance remains (absent balance means the full
// budget was spent), and the results are computed over the requests created
// in the session window.
func FinalizeOne(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	user := middlewares.UserFromContext(r.Context())

	body := finalizeBody{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CALCULATIONS_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	session, err := loadSession(ctx, user.ID, sessionID)
	if err == redis.Nil {
		utils.SendResponse(w, http.StatusNotFound, "", nil, utils.CALCULATION_NOT_FOUND)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_READ_CALCULATIONS_FROM_REDIS)
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

	session = Finalize(session, body.RemainingBalance, snapshot, time.Now())

	if err := saveSession(ctx, session); err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_WRITE_CALCULATION_TO_REDIS)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", session, 0)
}
