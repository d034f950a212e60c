package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Events   EventsConfig   `yaml:"events"`
	Feed     FeedConfig     `yaml:"feed"`
	Relay    RelayConfig    `yaml:"relay"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"600"`
}

// MongoConfig holds the materialized view store settings.
type MongoConfig struct {
	URI                    string        `yaml:"uri"                      env:"MONGODB_URL"                      env-required:"true"`
	Database               string        `yaml:"database"                 env:"MONGODB_DB_NAME"                  env-default:"facts-mng"`
	Collection             string        `yaml:"collection"               env:"MONGODB_COLLECTION"               env-default:"SharkAttack"`
	ConnectTimeout         time.Duration `yaml:"connect_timeout"          env:"MONGODB_CONNECT_TIMEOUT"          env-default:"10s"`
	ServerSelectionTimeout time.Duration `yaml:"server_selection_timeout" env:"MONGODB_SERVER_SELECTION_TIMEOUT" env-default:"5s"`
	MaxPoolSize            uint64        `yaml:"max_pool_size"            env:"MONGODB_MAX_POOL_SIZE"            env-default:"50"`
}

// DatabaseConfig holds PostgreSQL connection settings for the durable event log.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds the broker settings (event stream, notifications, dedupe).
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"facts-mng"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// EventsConfig holds event emission and recovery settings.
type EventsConfig struct {
	// AckKey identifies this process on the event stream so it can skip its own events.
	AckKey        string        `yaml:"ack_key"         env:"MICROBACKEND_KEY"      env-required:"true"`
	Stream        string        `yaml:"stream"          env:"EVENTS_STREAM"         env-default:"events:SharkAttack"`
	ConsumerGroup string        `yaml:"consumer_group"  env:"EVENTS_CONSUMER_GROUP" env-default:"facts-mng"`
	MaxInFlight   int           `yaml:"max_in_flight"   env:"EVENTS_MAX_IN_FLIGHT"  env-default:"16"`
	SyncOnStart   bool          `yaml:"sync_on_start"   env:"EVENTS_SYNC_ON_START"  env-default:"true"`
	SyncBatchSize int           `yaml:"sync_batch_size" env:"EVENTS_SYNC_BATCH"     env-default:"500"`
	SyncHoldBack  time.Duration `yaml:"sync_hold_back"  env:"EVENTS_SYNC_HOLD_BACK" env-default:"5s"`
	DedupeTTL     time.Duration `yaml:"dedupe_ttl"      env:"EVENTS_DEDUPE_TTL"     env-default:"24h"`
	BlockTimeout  time.Duration `yaml:"block_timeout"   env:"EVENTS_BLOCK_TIMEOUT"  env-default:"5s"`
}

// FeedConfig holds the external open data feed settings.
type FeedConfig struct {
	URL     string        `yaml:"url"     env:"GAME_FEED_URL" env-default:"https://public.opendatasoft.com/api/explore/v2.1/catalog/datasets/global-shark-attack/records?limit=100"`
	Timeout time.Duration `yaml:"timeout" env:"FEED_TIMEOUT"  env-default:"10s"`
}

// RelayConfig holds the secondary sink that receives recovered payloads.
type RelayConfig struct {
	Driver           string `yaml:"driver"            env:"RELAY_DRIVER"            env-default:"none"`
	Target           string `yaml:"target"            env:"RELAY_TARGET"            env-default:"neb-university-sophi"`
	ConnectionString string `yaml:"connection_string" env:"RELAY_CONNECTION_STRING"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Relay drivers.
const (
	RelayNone    = "none"
	RelayRedis   = "redis"
	RelayAzQueue = "azqueue"
)
