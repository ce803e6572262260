package projects

import (
	"api/database"
	"api/middlewares"
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
	project := &schemas.Project{}
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.PROJECTS_INVALID_REQUEST_DATA)
		return
	}

	if project.Name == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Field name is required", nil, 0)
		return
	}

	user := middlewares.UserFromContext(r.Context())

	project.ID = bson.NilObjectID
	project.UserID = user.ID
	project.NewRequests = 0
	project.TotalRequests = 0
	project.Accepted = 0
	project.Rejected = 0
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	opts := options.Client().ApplyURI(os.Getenv(utils.MONGODB_URI))
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_PROJECTS)

	result, err := collection.InsertOne(ctx, project)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_PROJECT_TO_MONGODB)
		return
	}

	insertedID := ""
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		insertedID = id.Hex()
	}
	utils.SendResponse(w, http.StatusCreated, "", map[string]string{"id": insertedID}, 0)
}
