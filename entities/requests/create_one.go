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

func CreateOne(w http.ResponseWriter, r *http.Request) {
	request := &schemas.Request{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.REQUESTS_INVALID_REQUEST_DATA)
		return
	}

	// Manually entered requests must at least identify the person.
	if request.FullName == "" || request.Phone == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Fields full_name and phone are required", nil, 0)
		return
	}

	if request.BirthDate != "" {
		if _, err := utils.ParseDayMonthYear(request.BirthDate); err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "Field birth_date must use the DD.MM.YYYY format", nil, 0)
			return
		}
	}

	request.ID = bson.NilObjectID
	if !schemas.ValidRequestStatus(request.Status) {
		request.Status = schemas.REQUEST_STATUS_NEW
	}
	if !schemas.ValidRequestPriority(request.Priority) {
		request.Priority = schemas.REQUEST_PRIORITY_MEDIUM
	}
	if request.Tags == nil {
		request.Tags = []string{}
	}
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()

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

	result, err := collection.InsertOne(ctx, request)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_REQUEST_TO_MONGODB)
		return
	}

	go BroadcastSnapshot()

	insertedID := ""
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		insertedID = id.Hex()
	}
	utils.SendResponse(w, http.StatusCreated, "", map[string]string{"id": insertedID}, 0)
}
