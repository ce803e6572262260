package requests

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type statusUpdateBody struct {
	Status    string `json:"status"`
	CompanyID string `json:"company_id,omitempty"`
}

// UpdateOneStatus moves a request through the triage lifecycle. The write
// is a single $set so every reader observes the transition atomically;
// concurrent transitions on the same request resolve last-write-wins.
func UpdateOneStatus(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_REQUEST_ID_FORMAT)
		return
	}

	body := statusUpdateBody{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.REQUESTS_INVALID_REQUEST_DATA)
		return
	}

	now := time.Now()
	updated, err := ApplyStatus(schemas.Request{}, body.Status, body.CompanyID, now)
	if errors.Is(err, ErrInvalidStatus) {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_REQUEST_STATUS)
		return
	}

	updateDoc := bson.D{
		{Key: "status", Value: updated.Status},
		{Key: "updated_at", Value: updated.UpdatedAt},
	}
	if updated.CompanyID != "" {
		updateDoc = append(updateDoc, bson.E{Key: "company_id", Value: updated.CompanyID})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_REQUESTS)

	update := bson.D{{Key: "$set", Value: updateDoc}}

	result, err := collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_REQUEST_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Request not found", nil, 0)
		return
	}

	go BroadcastSnapshot()

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
