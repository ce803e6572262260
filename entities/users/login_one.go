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

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// LoginOne verifies the credentials and issues a JWT. "remember" extends
// the token lifetime to 30 days; credentials themselves are never stored
// client side.
func LoginOne(w http.ResponseWriter, r *http.Request) {
	credentials := schemas.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.USERS_INVALID_REQUEST_DATA)
		return
	}

	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	if credentials.Email == "" || credentials.Password == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Email and password are required", nil, 0)
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

	user := schemas.User{}
	err = collection.FindOne(ctx, bson.D{{Key: "email", Value: credentials.Email}}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.SendResponse(w, http.StatusUnauthorized, "", nil, utils.INVALID_USER_CREDENTIALS)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_USERS_IN_MONGODB)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		utils.SendResponse(w, http.StatusUnauthorized, "", nil, utils.INVALID_USER_CREDENTIALS)
		return
	}

	token, err := middlewares.GenerateToken(user.ID.Hex(), user.Email, credentials.Remember)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_GENERATE_TOKEN)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", map[string]string{"id": user.ID.Hex(), "token": token}, 0)
}
