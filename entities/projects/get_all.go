package projects

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// The store only filters by owner; ordering happens client side to avoid
// requiring a composite index.
func GetAll(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())

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

	cursor, err := collection.Find(ctx, bson.D{{Key: "user_id", Value: user.ID}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_PROJECTS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	projects := []schemas.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_PROJECTS_IN_MONGODB)
		return
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})

	utils.SendResponse(w, http.StatusOK, "", projects, 0)
}
