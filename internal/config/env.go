package config

const (
	EnvAppEnv = "APP_ENV"

	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvMenuSource      = "MENU_SOURCE"
	EnvMenuFile        = "MENU_FILE"
	EnvLoadTimeout     = "LOAD_TIMEOUT"
	EnvDefaultMode     = "DEFAULT_MODE"
	EnvInferCategories = "INFER_CATEGORIES"

	EnvDatabaseURL = "DATABASE_URL"

	EnvMongoURI        = "MONGO_URI"
	EnvMongoDatabase   = "MONGO_DATABASE"
	EnvMongoCollection = "MONGO_COLLECTION"

	EnvR2Endpoint   = "R2_ENDPOINT"
	EnvR2AccessKey  = "R2_ACCESS_KEY"
	EnvR2SecretKey  = "R2_SECRET_KEY"
	EnvR2BucketName = "R2_BUCKET_NAME"
	EnvR2MenuKey    = "R2_MENU_KEY"

	EnvCORSOrigins = "CORS_ORIGINS"
)
