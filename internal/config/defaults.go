package config

import "time"

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceMongo    = "mongo"
	SourceR2       = "r2"
)

const (
	DefaultPort      = "8000"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMenuSource  = SourceFile
	DefaultMenuFile    = "menu.json"
	DefaultLoadTimeout = 10 * time.Second
	DefaultMode        = "safe"

	DefaultMongoDatabase   = "shangshi"
	DefaultMongoCollection = "dishes"

	DefaultR2MenuKey = "menu.json"
)

var DefaultCORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
