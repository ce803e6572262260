package database

import (
	"api/utils"
	"database/sql"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const (
	MYSQL_CONN_MAX_LIFETIME = 5 * time.Minute
	MYSQL_MAX_OPEN_CONNS    = 10
	MYSQL_MAX_IDLE_CONNS    = 10

	TABLE_LEGACY_REQUESTS = "legacy_requests"
)

func OpenMySQL() (*sql.DB, error) {
	db, err := sql.Open("mysql", os.Getenv(utils.MYSQL_URI))
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(MYSQL_CONN_MAX_LIFETIME)
	db.SetMaxOpenConns(MYSQL_MAX_OPEN_CONNS)
	db.SetMaxIdleConns(MYSQL_MAX_IDLE_CONNS)

	return db, nil
}
