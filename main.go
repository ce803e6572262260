package main

import (
	"api/entities/calculations"
	"api/entities/companies"
	"api/entities/importer"
	"api/entities/projects"
	"api/entities/requests"
	"api/entities/statistics"
	"api/entities/users"
	"api/logger"
	"api/middlewares"
	"api/utils"
	"fmt"
	"net/http"
	"os"
	"time"
)

func main() {
	utils.LoadEnvVariables()

	env := os.Getenv(utils.ENV)
	if env == utils.ENV_RELEASE {
		fmt.Printf("\033[1;31;47m[WARNING] Running in PRODUCTION environment!\033[0m\n")
	} else {
		fmt.Printf("[INFO] Current environment: %s\n", env)
	}

	logLevel := "info"
	if env == utils.ENV_DEVELOPMENT {
		logLevel = "debug"
	}
	zaplog, err := logger.NewZapLog(logLevel)
	if err != nil {
		panic("[LOG] Unable to build logger: " + err.Error())
	}
	defer zaplog.Sync()

	mux := http.NewServeMux()

	mux.Handle("POST /v1/auth/register", http.HandlerFunc(users.RegisterOne))
	mux.Handle("POST /v1/auth/login", http.HandlerFunc(users.LoginOne))

	mux.Handle("GET /v1/requests", middlewares.Auth(http.HandlerFunc(requests.GetAll)))
	mux.Handle("GET /v1/requests/{id}", middlewares.Auth(http.HandlerFunc(requests.GetOne)))
	mux.Handle("POST /v1/requests", middlewares.Auth(http.HandlerFunc(requests.CreateOne)))
	mux.Handle("PATCH /v1/requests/{id}", middlewares.Auth(http.HandlerFunc(requests.UpdateOne)))
	mux.Handle("PATCH /v1/requests/{id}/status", middlewares.Auth(http.HandlerFunc(requests.UpdateOneStatus)))
	mux.Handle("DELETE /v1/requests/{id}", middlewares.Auth(http.HandlerFunc(requests.DeleteOne)))
	mux.HandleFunc("/v1/ws/requests", requests.RequestWebSocketHandler)

	mux.Handle("GET /v1/statistics", middlewares.Auth(http.HandlerFunc(statistics.GetStatistics)))
	mux.Handle("GET /v1/statistics/period", middlewares.Auth(http.HandlerFunc(statistics.GetPeriodStatistics)))

	mux.Handle("GET /v1/calculations", middlewares.Auth(http.HandlerFunc(calculations.GetAll)))
	mux.Handle("POST /v1/calculations", middlewares.Auth(http.HandlerFunc(calculations.StartOne)))
	mux.Handle("POST /v1/calculations/{id}/finalize", middlewares.Auth(http.HandlerFunc(calculations.FinalizeOne)))
	mux.Handle("DELETE /v1/calculations/{id}", middlewares.Auth(http.HandlerFunc(calculations.DeleteOne)))

	mux.Handle("GET /v1/companies", middlewares.Auth(http.HandlerFunc(companies.GetAll)))
	mux.Handle("POST /v1/companies", middlewares.Auth(http.HandlerFunc(companies.CreateOne)))
	mux.Handle("PATCH /v1/companies/{id}", middlewares.Auth(http.HandlerFunc(companies.UpdateOne)))
	mux.Handle("DELETE /v1/companies/{id}", middlewares.Auth(http.HandlerFunc(companies.DeleteOne)))
	mux.Handle("GET /v1/companies/{id}/requests", middlewares.Auth(http.HandlerFunc(companies.GetRequests)))

	mux.Handle("GET /v1/projects", middlewares.Auth(http.HandlerFunc(projects.GetAll)))
	mux.Handle("POST /v1/projects", middlewares.Auth(http.HandlerFunc(projects.CreateOne)))
	mux.Handle("PATCH /v1/projects/{id}", middlewares.Auth(http.HandlerFunc(projects.UpdateOne)))
	mux.Handle("DELETE /v1/projects/{id}", middlewares.Auth(http.HandlerFunc(projects.DeleteOne)))
	mux.Handle("POST /v1/projects/{id}/recount", middlewares.Auth(http.HandlerFunc(projects.RecountOne)))

	mux.Handle("POST /v1/import/legacy", middlewares.Auth(http.HandlerFunc(importer.ImportLegacy)))

	fmt.Printf("Server started on port %s at %s\n", os.Getenv(utils.PORT), time.Now().Format("2006-01-02 15:04:05"))
	http.ListenAndServe(fmt.Sprintf(":%s", os.Getenv(utils.PORT)),
		logger.RequestLogMdlw(middlewares.SecurityHeaders(middlewares.Cors(mux)), zaplog))
}
