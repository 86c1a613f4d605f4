package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"poolhire/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Connection splits reads (replica) from writes (primary); both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type poolSettings struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
	maxRetry    int
	retryWait   time.Duration
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres
	settings := poolSettings{
		maxOpen:     pg.MaxOpenConns,
		maxIdle:     pg.MaxIdleConns,
		maxLifetime: time.Duration(pg.ConnMaxLifetimeMin) * time.Minute,
		maxRetry:    max(pg.MaxRetry, 1),
		retryWait:   time.Duration(pg.RetryWaitTime) * time.Second,
	}

	return &Connection{
		Read:  connect("read", DSN(pg.Read, pg.Prefix+pg.Read.Name, nil), settings),
		Write: connect("write", DSN(pg.Write, pg.Prefix+pg.Write.Name, nil), settings),
	}
}

// DSN builds a lib/pq connection URL. Extra params are appended to the query string.
func DSN(endpoint config.PostgresEndpoint, dbName string, params url.Values) string {
	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(name, dsn string, settings poolSettings) *sqlx.DB {
	for attempt := 1; attempt <= settings.maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxOpenConns(settings.maxOpen)
			db.SetMaxIdleConns(settings.maxIdle)
			db.SetConnMaxLifetime(settings.maxLifetime)

			log.Info().Str("name", name).Msg("connected to database")

			return db
		}

		log.Error().Err(err).Str("name", name).Int("attempt", attempt).Msg("failed connecting to database, retrying")

		time.Sleep(settings.retryWait)
	}

	log.Error().Str("name", name).Msg("giving up on database connection")

	return nil
}
