package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const envFile = ".env"

// Config is loaded from the environment, optionally seeded from a .env file.
// Variable names follow the nesting, e.g. SERVER_SHUTDOWN_GRACE_PERIOD_SECONDS.
type Config struct {
	Server   Server   `envconfig:"SERVER"`
	App      App      `envconfig:"APP"`
	Cache    Cache    `envconfig:"CACHE"`
	JWT      JWT      `envconfig:"JWT"`
	DB       DB       `envconfig:"DB"`
	Payment  Payment  `envconfig:"PAYMENT"`
	Kafka    Kafka    `envconfig:"KAFKA"`
	External External `envconfig:"EXTERNAL"`
}

type Server struct {
	Env      string `envconfig:"ENV"       default:"production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Port     string `envconfig:"PORT"      default:"8080"`
	Host     string `envconfig:"HOST"`
	Shutdown struct {
		CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
		GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
	} `envconfig:"SHUTDOWN"`
}

type App struct {
	Name     string `envconfig:"APP_NAME" default:"poolhire"`
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`
	CORS     struct {
		AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
		AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
		AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
		AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
		Enable           bool     `envconfig:"ENABLE"`
		MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
	} `envconfig:"CORS"`
	RateLimiter struct {
		Enable        bool `envconfig:"ENABLE"`
		MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
		WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		// ExemptPaths skips limiting for provider callbacks and health checks.
		ExemptPaths []string `envconfig:"EXEMPT_PATHS" default:"/v1/webhooks/stripe,/v1/health"`
	} `envconfig:"RATE_LIMITER"`
	// APIKey guards internal endpoints such as /v1/crm/sync. Empty rejects every key.
	APIKey string `envconfig:"API_KEY"`
}

type Cache struct {
	Redis struct {
		Primary struct {
			Host     string `envconfig:"HOST" default:"localhost"`
			Port     string `envconfig:"PORT" default:"6379"`
			Password string `envconfig:"PASSWORD"`
			DB       int    `envconfig:"DB"`
		} `envconfig:"PRIMARY"`
	} `envconfig:"REDIS"`
	// TTL in seconds.
	TTL int `envconfig:"TTL" default:"300"`
}

type JWT struct {
	AccessSecret     string `envconfig:"ACCESS_SECRET"`
	RefreshSecret    string `envconfig:"REFRESH_SECRET"`
	AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"`
	RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
}

// PostgresEndpoint is one side of the read/write split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

type DB struct {
	Postgres struct {
		MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
		RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
		MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
		AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
		Prefix         string `envconfig:"PREFIX"`
		MaxOpenConns   int    `envconfig:"MAX_OPEN_CONNS"  default:"10"`
		MaxIdleConns   int    `envconfig:"MAX_IDLE_CONNS"  default:"10"`
		// ConnMaxLifetimeMin recycles pooled connections, 0 keeps them forever.
		ConnMaxLifetimeMin int              `envconfig:"CONN_MAX_LIFETIME_MIN" default:"30"`
		Read               PostgresEndpoint `envconfig:"READ"`
		Write              PostgresEndpoint `envconfig:"WRITE"`
	} `envconfig:"POSTGRES"`
}

type Payment struct {
	Currency string `envconfig:"CURRENCY" default:"gbp"`
	// PlatformFeeBasisPoints is the platform share of every payment, 1000 = 10%.
	PlatformFeeBasisPoints int64 `envconfig:"PLATFORM_FEE_BASIS_POINTS" default:"1000"`
	// FeeRoundingUnit is the granularity, in minor units, the platform fee is rounded half-up to.
	FeeRoundingUnit int64 `envconfig:"FEE_ROUNDING_UNIT" default:"1"`
}

// Kafka publishing is skipped when Brokers is empty.
type Kafka struct {
	Brokers []string `envconfig:"BROKERS"`
	SASL    struct {
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
	} `envconfig:"SASL"`
	Topics struct {
		Payment string `envconfig:"PAYMENT"  default:"payment.events"`
		CrmSync string `envconfig:"CRM_SYNC" default:"crm.sync.events"`
	} `envconfig:"TOPICS"`
}

type External struct {
	Otel struct {
		// Endpoint is the OTLP gRPC collector, spans are dropped when it is empty.
		Endpoint    string  `envconfig:"ENDPOINT"`
		SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
	} `envconfig:"OTEL"`
	S3 struct {
		APIEndpoint     string `envconfig:"API_ENDPOINT"`
		AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
		SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
		BucketName      string `envconfig:"BUCKET_NAME"`
		PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
	} `envconfig:"S3"`
	Stripe struct {
		SecretKey      string `envconfig:"SECRET_KEY"`
		WebhookSecret  string `envconfig:"WEBHOOK_SECRET"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		// ArchiveBucket receives a copy of every verified event, unset disables archiving.
		ArchiveBucket string `envconfig:"ARCHIVE_BUCKET"`
	} `envconfig:"STRIPE"`
	CRM struct {
		BaseURL        string `envconfig:"BASE_URL"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"30"`
		Schedule       string `envconfig:"SCHEDULE"        default:"0 */15 * * * *"`
	} `envconfig:"CRM"`
}

var (
	conf    Config
	once    sync.Once
	initErr error
)

// Init loads the configuration once. A missing .env file is not an error.
func Init() error {
	once.Do(func() {
		switch err := godotenv.Load(envFile); {
		case err == nil:
			log.Info().Msg("Loaded variables from .env file into environment")
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Msg("No .env file, using the process environment")
		default:
			log.Warn().Err(err).Msg("Could not parse .env file, continuing with existing environment variables")
		}

		conf, initErr = load()
		if initErr == nil {
			log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized")
		}
	})

	return initErr
}

func load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return cfg, nil
}

// Get returns the process configuration, exiting when it cannot be loaded.
func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return &conf
}
