package utils

import "fmt"

// Code 0 is reserved: SendResponse treats it as "no internal error".
const (
	REQUESTS_INVALID_REQUEST_DATA = iota + 1
	CANNOT_CONNECT_TO_MONGODB
	CANNOT_FIND_REQUESTS_IN_MONGODB
	CANNOT_INSERT_REQUEST_TO_MONGODB
	CANNOT_UPDATE_REQUEST_IN_MONGODB
	CANNOT_DELETE_REQUEST_IN_MONGODB
	INVALID_REQUEST_ID_FORMAT
	INVALID_REQUEST_STATUS
	COMPANIES_INVALID_REQUEST_DATA
	CANNOT_FIND_COMPANIES_IN_MONGODB
	CANNOT_INSERT_COMPANY_TO_MONGODB
	CANNOT_UPDATE_COMPANY_IN_MONGODB
	CANNOT_DELETE_COMPANY_IN_MONGODB
	INVALID_COMPANY_ID_FORMAT
	PROJECTS_INVALID_REQUEST_DATA
	CANNOT_FIND_PROJECTS_IN_MONGODB
	CANNOT_INSERT_PROJECT_TO_MONGODB
	CANNOT_UPDATE_PROJECT_IN_MONGODB
	CANNOT_DELETE_PROJECT_IN_MONGODB
	INVALID_PROJECT_ID_FORMAT
	USERS_INVALID_REQUEST_DATA
	CANNOT_FIND_USERS_IN_MONGODB
	CANNOT_INSERT_USER_TO_MONGODB
	INVALID_USER_CREDENTIALS
	CANNOT_GENERATE_TOKEN
	CALCULATIONS_INVALID_REQUEST_DATA
	CANNOT_CONNECT_TO_REDIS
	CANNOT_READ_CALCULATIONS_FROM_REDIS
	CANNOT_WRITE_CALCULATION_TO_REDIS
	CALCULATION_NOT_FOUND
	CANNOT_CONNECT_TO_MYSQL
	CANNOT_READ_LEGACY_REQUESTS
)

func SendInternalError(internalErrorCode int) string {
	return fmt.Sprintf("An internal server error has occurred. Please try again later (Cod: %d)", internalErrorCode)
}
