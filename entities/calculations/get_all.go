package calculations

import (
	"api/database"
	"api/middlewares"
	"api/utils"
	"context"
	"net/http"
)

func GetAll(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	sessions, err := loadSessions(ctx, user.ID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_READ_CALCULATIONS_FROM_REDIS)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", sessions, 0)
}
