package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"hotelboard/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10

	// Stored timestamps are naive UTC; sessions must not shift them.
	postgresSessionTimezone = "UTC"
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type connectionOptions struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
	timezone string
	maxRetry int
	waitTime int
}

func New(config *config.Config) *Connection {
	conn := &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Msg("Could not establish postgres connections")
	}

	return conn
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func sessionTimezone(value string) string {
	if value == "" {
		return postgresSessionTimezone
	}

	return value
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return CreatePostgresConnection(connectionOptions{
		name:     "write",
		username: write.Username,
		password: write.Password,
		host:     write.Host,
		port:     write.Port,
		dbName:   getDBName(config, write.Name),
		sslMode:  write.SSLMode,
		timezone: sessionTimezone(write.Timezone),
		maxRetry: config.DB.Postgres.MaxRetry,
		waitTime: config.DB.Postgres.RetryWaitTime,
	})
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return CreatePostgresConnection(connectionOptions{
		name:     "read",
		username: read.Username,
		password: read.Password,
		host:     read.Host,
		port:     read.Port,
		dbName:   getDBName(config, read.Name),
		sslMode:  read.SSLMode,
		timezone: sessionTimezone(read.Timezone),
		maxRetry: config.DB.Postgres.MaxRetry,
		waitTime: config.DB.Postgres.RetryWaitTime,
	})
}

func (o connectionOptions) descriptor() string {
	query := url.Values{}
	query.Set("sslmode", o.sslMode)
	query.Set("timezone", o.timezone)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.username, o.password),
		Host:     net.JoinHostPort(o.host, o.port),
		Path:     o.dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// CreatePostgresConnection creates a database connection, retrying up to maxRetry times.
func CreatePostgresConnection(opts connectionOptions) *sqlx.DB {
	descriptor := opts.descriptor()

	for retry := range max(opts.maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", opts.name).
				Str("host", opts.host).
				Str("port", opts.port).
				Str("dbName", opts.dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", opts.name).
			Str("host", opts.host).
			Str("port", opts.port).
			Str("dbName", opts.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(opts.waitTime) * time.Second)
	}

	return nil
}
