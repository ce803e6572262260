package calculations

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type startBody struct {
	StartDate string  `json:"start_date"`
	Amount    float64 `json:"amount"`
}

// StartOne begins a spend-tracking session. Nothing is computed yet; the
// session only records the intent (start date and budget).
func StartOne(w http.ResponseWriter, r *http.Request) {
	body := startBody{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CALCULATIONS_INVALID_REQUEST_DATA)
		return
	}

	startDate, err := time.ParseInLocation("2006-01-02", body.StartDate, time.Local)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Field start_date must use the YYYY-MM-DD format", nil, 0)
		return
	}
	if body.Amount <= 0 {
		utils.SendResponse(w, http.StatusBadRequest, "Field amount must be greater than zero", nil, 0)
		return
	}

	user := middlewares.UserFromContext(r.Context())

	session := schemas.CalculationEntry{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		StartDate: startDate,
		Amount:    body.Amount,
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	if err := saveSession(ctx, session); err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_WRITE_CALCULATION_TO_REDIS)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", session, 0)
}
