package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"fmt"
	"log"
	"strings"

	"github.com/DataDog/go-sqllexer"
	"github.com/Masterminds/squirrel"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
	_ "modernc.org/sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Dialect identifies the SQL backend the conversation store runs on.
type Dialect string

const (
	Dialect_Postgres Dialect = "postgres"
	Dialect_SQLite   Dialect = "sqlite"
)

// PlaceholderFormat returns the bind parameter style of the dialect.
func (d Dialect) PlaceholderFormat() squirrel.PlaceholderFormat {
	if d == Dialect_Postgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// InitDB opens the database selected by DB_DRIVER, runs migrations and registers
// the *sql.DB and its Dialect in the dependency container.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger `resolve:""`
	Driver             string      `config:"DB_DRIVER" default:"sqlite"`
	DBPath             string      `config:"DB_PATH" default:"weatherbot.db"`
	DBUser             string      `config:"DB_USER" default:"weatherbot"`
	DBPass             string      `config:"DB_PASS" default:"weatherbot"`
	DBHost             string      `config:"DB_HOST" default:"localhost"`
	DBPort             string      `config:"DB_PORT" default:"5432"`
	DBName             string      `config:"DB_NAME" default:"weatherbot"`
}

// Initialize sets up the database connection and runs migrations.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	dialect := Dialect(strings.ToLower(di.Driver))

	var (
		dbSystemAttributes otelsql.Option
		err                error
	)
	switch dialect {
	case Dialect_Postgres:
		dbSystemAttributes = otelsql.WithAttributes(
			semconv.DBSystemNamePostgreSQL,
			semconv.DBNamespace(di.DBName),
		)
		di.db, err = di.openPostgres(ctx, dbSystemAttributes)
	case Dialect_SQLite:
		dbSystemAttributes = otelsql.WithAttributes(
			semconv.DBSystemNameKey.String(string(Dialect_SQLite)),
			semconv.DBNamespace(di.DBPath),
		)
		di.db, err = di.openSQLite(dbSystemAttributes)
	default:
		return ctx, fmt.Errorf("unsupported DB_DRIVER %q: must be postgres or sqlite", di.Driver)
	}
	if err != nil {
		return ctx, err
	}

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(
		di.db,
		dbSystemAttributes,
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := di.runMigrations(dialect); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	depend.Register(di.db)
	depend.Register(dialect)

	return ctx, nil
}

func (di *InitDB) openPostgres(ctx context.Context, attrs otelsql.Option) (*sql.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		di.DBUser,
		di.DBPass,
		di.DBHost,
		di.DBPort,
		di.DBName,
	)

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	return otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		attrs,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(di.Logger)),
	), nil
}

func (di *InitDB) openSQLite(attrs otelsql.Option) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite", di.DBPath)

	db, err := otelsql.Open("sqlite", dsn,
		attrs,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(di.Logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One connection keeps in-memory databases alive and serializes writers.
	db.SetMaxOpenConns(1)
	return db, nil
}

func (di *InitDB) runMigrations(dialect Dialect) error {
	source, err := iofs.New(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	var driver migratedb.Driver
	switch dialect {
	case Dialect_Postgres:
		driver, err = postgres.WithInstance(di.db, &postgres.Config{})
	case Dialect_SQLite:
		driver, err = sqlite.WithInstance(di.db, &sqlite.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to create %s driver: %w", dialect, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(dialect), driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	di.Logger.Printf("InitDB: %s migrations applied successfully", dialect)
	return nil
}

// Close closes the database connection and unregisters its metrics.
func (di *InitDB) Close() {
	if di.db != nil {
		if err := di.db.Close(); err != nil {
			di.Logger.Printf("InitDB: failed to close database connection: %v", err)
		}
		if di.metricRegistration != nil {
			if err := di.metricRegistration.Unregister(); err != nil {
				di.Logger.Printf("InitDB: failed to unregister metric registration: %v", err)
			}
		}
	}
}

func withQueryAttributes(logger *log.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}
		attrs := []attribute.KeyValue{}

		operations, tables := extractSQLOperation(logger, query)
		if len(operations) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(fmt.Sprintf("%s %s", strings.Join(operations, ","), strings.Join(tables, ","))))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}

		return attrs
	}
}

// extractSQLOperation extracts the SQL commands and target tables from a query.
func extractSQLOperation(logger *log.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		logger.Printf("Failed to extract SQL operation from query: %v", err)
		return nil, nil
	}

	return meta.Commands, meta.Tables
}
