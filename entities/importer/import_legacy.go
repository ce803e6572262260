package importer

import (
	"api/database"
	"api/logger"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type legacyRow struct {
	Name    string
	Phone   string
	Date    string
	Company string
}

// ImportLegacy copies rows of the old spreadsheet-backed MySQL table into
// the request collection. Companies are found or created by name; imported
// leads arrive already accepted, assigned to their company. The job is a
// one-shot batch and reports per-row outcomes instead of aborting on the
// first bad row.
func ImportLegacy(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())

	sqlDB, err := database.OpenMySQL()
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MYSQL)
		return
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query("SELECT name, phone, date, company FROM " + database.TABLE_LEGACY_REQUESTS)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_READ_LEGACY_REQUESTS)
		return
	}
	defer rows.Close()

	legacyRows := []legacyRow{}
	for rows.Next() {
		row := legacyRow{}
		if err := rows.Scan(&row.Name, &row.Phone, &row.Date, &row.Company); err != nil {
			logger.Log().Warn("legacy row skipped", zap.Error(err))
			continue
		}
		legacyRows = append(legacyRows, row)
	}
	if err := rows.Err(); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_READ_LEGACY_REQUESTS)
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

	imported := 0
	skipped := 0
	companyIDs := map[string]string{}

	for _, row := range legacyRows {
		if row.Name == "" || row.Phone == "" {
			skipped++
			continue
		}

		createdAt, err := utils.ParseDayMonthYear(row.Date)
		if err != nil {
			skipped++
			continue
		}

		companyID, ok := companyIDs[row.Company]
		if !ok {
			companyID, err = findOrCreateCompany(ctx, mongoClient, row.Company, user.ID)
			if err != nil {
				logger.Log().Warn("company lookup failed", zap.String("company", row.Company), zap.Error(err))
				skipped++
				continue
			}
			companyIDs[row.Company] = companyID
		}

		request := schemas.Request{
			FullName:  row.Name,
			Phone:     row.Phone,
			Status:    schemas.REQUEST_STATUS_ACCEPTED,
			Priority:  schemas.REQUEST_PRIORITY_MEDIUM,
			Tags:      []string{"imported"},
			CompanyID: companyID,
			Source:    "import",
			CreatedAt: createdAt,
			UpdatedAt: time.Now(),
		}

		collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_REQUESTS)
		if _, err := collection.InsertOne(ctx, request); err != nil {
			logger.Log().Warn("legacy request insert failed", zap.Error(err))
			skipped++
			continue
		}
		imported++
	}

	utils.SendResponse(w, http.StatusOK, "", map[string]int{"imported": imported, "skipped": skipped}, 0)
}

func findOrCreateCompany(ctx context.Context, client *mongo.Client, name, userID string) (string, error) {
	collection := client.Database(database.GetDB()).Collection(database.COLLECTION_COMPANIES)

	existing := schemas.Company{}
	err := collection.FindOne(ctx, bson.D{
		{Key: "name", Value: name},
		{Key: "user_id", Value: userID},
	}).Decode(&existing)
	if err == nil {
		return existing.ID.Hex(), nil
	}
	if err != mongo.ErrNoDocuments {
		return "", err
	}

	company := schemas.Company{
		Name:      name,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	result, err := collection.InsertOne(ctx, company)
	if err != nil {
		return "", err
	}

	id, _ := result.InsertedID.(bson.ObjectID)
	return id.Hex(), nil
}
