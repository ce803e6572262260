package users

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

func RegisterOne(w http.ResponseWriter, r *http.Request) {
	credentials := schemas.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.USERS_INVALID_REQUEST_DATA)
		return
	}

	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	if credentials.Email == "" || len(credentials.Password) < 8 {
		utils.SendResponse(w, http.StatusBadRequest, "Email and a password of at least 8 characters are required", nil, 0)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_USER_TO_MONGODB)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_USERS)

	count, err := collection.CountDocuments(ctx, bson.D{{Key: "email", Value: credentials.Email}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_USERS_IN_MONGODB)
		return
	}
	if count > 0 {
		utils.SendResponse(w, http.StatusConflict, "A user with this email already exists", nil, 0)
		return
	}

	user := schemas.User{
		Name:         credentials.Name,
		Email:        credentials.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	result, err := collection.InsertOne(ctx, user)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_USER_TO_MONGODB)
		return
	}

	userID := ""
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		userID = id.Hex()
	}

	token, err := middlewares.GenerateToken(userID, user.Email, credentials.Remember)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_GENERATE_TOKEN)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", map[string]string{"id": userID, "token": token}, 0)
}
