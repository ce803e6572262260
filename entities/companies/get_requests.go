package companies

import (
	"api/database"
	"api/entities/requests"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GetRequests lists the requests assigned to a company. Matching is
// flexible: records created before company references existed only carry
// the denormalized company name, so both the id and the name are matched.
// ?status=accepted narrows to converted leads.
func GetRequests(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_COMPANY_ID_FORMAT)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_COMPANIES)

	company := schemas.Company{}
	err = collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		utils.SendResponse(w, http.StatusNotFound, "Company not found", nil, 0)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_COMPANIES_IN_MONGODB)
		return
	}

	snapshot, err := requests.FetchAll(ctx, mongoClient)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_REQUESTS_IN_MONGODB)
		return
	}

	filter := requests.Filter{
		Status:  r.URL.Query().Get("status"),
		Company: requests.CompanyRef{ID: company.ID.Hex(), Name: company.Name},
	}

	utils.SendResponse(w, http.StatusOK, "", filter.Apply(snapshot), 0)
}
