package dsn

import (
	"fmt"
	"os"
)

// FromEnv builds the postgres DSN from DB_* variables.
func FromEnv() string {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	pass := getenv("DB_PASS", "postgres")
	dbname := getenv("DB_NAME", "triage")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
}

// MongoURIFromEnv returns MONGO_URI, or a local default.
func MongoURIFromEnv() string {
	return getenv("MONGO_URI", "mongodb://localhost:27017")
}

// MongoDatabaseFromEnv returns MONGO_DB, or the default database name.
func MongoDatabaseFromEnv() string {
	return getenv("MONGO_DB", "aiSupportAgent")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
