package calculations

import (
	"api/database"
	"api/middlewares"
	"api/utils"
	"context"
	"net/http"
)

func DeleteOne(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	user := middlewares.UserFromContext(r.Context())

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	removed, err := deleteSession(ctx, user.ID, sessionID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_READ_CALCULATIONS_FROM_REDIS)
		return
	}

	if !removed {
		utils.SendResponse(w, http.StatusNotFound, "", nil, utils.CALCULATION_NOT_FOUND)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
