package companies

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

// Company names are not required to be unique; two companies may share a
// name and remain distinct records.
func CreateOne(w http.ResponseWriter, r *http.Request) {
	company := &schemas.Company{}
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.COMPANIES_INVALID_REQUEST_DATA)
		return
	}

	if company.Name == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Field name is required", nil, 0)
		return
	}

	user := middlewares.UserFromContext(r.Context())

	company.ID = bson.NilObjectID
	company.UserID = user.ID
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	opts := options.Client().ApplyURI(os.Getenv(utils.MONGODB_URI))
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_COMPANIES)

	result, err := collection.InsertOne(ctx, company)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_COMPANY_TO_MONGODB)
		return
	}

	insertedID := ""
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		insertedID = id.Hex()
	}
	utils.SendResponse(w, http.StatusCreated, "", map[string]string{"id": insertedID}, 0)
}
