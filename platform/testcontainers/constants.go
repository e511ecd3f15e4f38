package testcontainers

// Images pinned for integration tests.
const (
	PostgresImage = "postgres:17.0-alpine3.20"
	RedisImage    = "redis:7.4-alpine"
	KafkaImage    = "confluentinc/cp-kafka:7.6.1"
)

// Environment variables read by the application config.
const (
	PostgresHostKey     = "POSTGRES_HOST"
	PostgresPortKey     = "POSTGRES_PORT"
	PostgresUserKey     = "POSTGRES_USER"
	PostgresPasswordKey = "POSTGRES_PASSWORD" //nolint:gosec
	PostgresDBKey       = "POSTGRES_DB"
	MigrationDirKey     = "MIGRATION_DIRECTORY"

	RedisAddrKey    = "REDIS_ADDR"
	KafkaBrokersKey = "KAFKA_BROKERS"
)
