package requests

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UpdateOne applies a partial update of the editable fields. Status changes
// go through UpdateOneStatus so the transition guard stays in one place.
func UpdateOne(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_REQUEST_ID_FORMAT)
		return
	}

	request := &schemas.Request{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.REQUESTS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if request.FullName != "" {
		updateDoc = append(updateDoc, bson.E{Key: "full_name", Value: request.FullName})
	}
	if request.Phone != "" {
		updateDoc = append(updateDoc, bson.E{Key: "phone", Value: request.Phone})
	}
	if request.BirthDate != "" {
		if _, err := utils.ParseDayMonthYear(request.BirthDate); err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "Field birth_date must use the DD.MM.YYYY format", nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "birth_date", Value: request.BirthDate})
	}
	if request.Source != "" {
		updateDoc = append(updateDoc, bson.E{Key: "source", Value: request.Source})
	}
	if request.Referrer != "" {
		updateDoc = append(updateDoc, bson.E{Key: "referrer", Value: request.Referrer})
	}
	if request.UserAgent != "" {
		updateDoc = append(updateDoc, bson.E{Key: "user_agent", Value: request.UserAgent})
	}
	if request.Priority != "" {
		if !schemas.ValidRequestPriority(request.Priority) {
			utils.SendResponse(w, http.StatusBadRequest, "Invalid priority value", nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "priority", Value: request.Priority})
	}
	if request.AssignedTo != "" {
		updateDoc = append(updateDoc, bson.E{Key: "assigned_to", Value: request.AssignedTo})
	}
	if request.Tags != nil {
		updateDoc = append(updateDoc, bson.E{Key: "tags", Value: request.Tags})
	}
	if request.Comment != "" {
		updateDoc = append(updateDoc, bson.E{Key: "comment", Value: request.Comment})
	}
	if request.Title != "" {
		updateDoc = append(updateDoc, bson.E{Key: "title", Value: request.Title})
	}

	if len(updateDoc) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "No fields to update were provided", nil, 0)
		return
	}

	updateDoc = append(updateDoc, bson.E{Key: "updated_at", Value: time.Now()})

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
