package database

import (
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	// ConnectionString is either a postgres:// URL or a SQLite file path
	ConnectionString string
	// CACertPath points at the PEM trust anchor for the Postgres TLS
	// transport. Ignored for SQLite.
	CACertPath      string
	MigrationsPath  string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Logger          *logrus.Logger
}

// DefaultConnectionConfig returns a default configuration
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		ConnectionString: "./data/quotes.db",
		MigrationsPath:   "./migrations/sqlite",
		MaxOpenConns:     1,
		MaxIdleConns:     1,
		ConnMaxLifetime:  time.Hour,
		Logger:           logrus.New(),
	}
}

// ConnectionManager manages the database connection lifecycle
type ConnectionManager struct {
	config *ConnectionConfig
	db     *sql.DB
	driver string
}

// NewConnectionManager creates a new connection manager
func NewConnectionManager(config *ConnectionConfig) *ConnectionManager {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &ConnectionManager{
		config: config,
		driver: DriverFor(config.ConnectionString),
	}
}

// DriverFor selects the SQL driver from the connection-string scheme
func DriverFor(connectionString string) string {
	if strings.HasPrefix(connectionString, "postgres://") ||
		strings.HasPrefix(connectionString, "postgresql://") {
		return "pgx"
	}
	return "sqlite3"
}

// Connect establishes the database connection
func (cm *ConnectionManager) Connect() error {
	if cm.db != nil {
		return fmt.Errorf("database connection already established")
	}

	var (
		db  *sql.DB
		err error
	)

	switch cm.driver {
	case "pgx":
		db, err = cm.openPostgres()
	default:
		db, err = cm.openSQLite()
	}
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(cm.config.MaxOpenConns)
	db.SetMaxIdleConns(cm.config.MaxIdleConns)
	db.SetConnMaxLifetime(cm.config.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	cm.db = db
	cm.config.Logger.WithField("driver", cm.driver).Info("Database connection established")
	return nil
}

// openPostgres opens a TLS-secured Postgres connection through the pgx
// stdlib driver
func (cm *ConnectionManager) openPostgres() (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(cm.config.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cm.config.CACertPath != "" {
		tlsConfig, err := buildTLSConfig(cm.config.CACertPath, connCfg.Host)
		if err != nil {
			return nil, err
		}
		connCfg.TLSConfig = tlsConfig
	}

	dsn := stdlib.RegisterConnConfig(connCfg)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// openSQLite opens a local SQLite file, creating its directory first
func (cm *ConnectionManager) openSQLite() (*sql.DB, error) {
	dbPath, err := filepath.Abs(cm.config.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute database path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// buildTLSConfig loads the CA certificate and builds the TLS transport
// configuration for the Postgres connection
func buildTLSConfig(caCertPath, serverName string) (*tls.Config, error) {
	pem, err := os.ReadFile(caCertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate %s: %w", caCertPath, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", caCertPath)
	}

	return &tls.Config{
		RootCAs:    pool,
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	}, nil
}

// GetDB returns the underlying database handle
func (cm *ConnectionManager) GetDB() *sql.DB {
	return cm.db
}

// Driver returns the selected SQL driver name
func (cm *ConnectionManager) Driver() string {
	return cm.driver
}

// GetMigrationManager returns a migration manager bound to this connection
func (cm *ConnectionManager) GetMigrationManager() *MigrationManager {
	return NewMigrationManager(cm.db, cm.driver, cm.config.MigrationsPath, cm.config.Logger)
}

// CheckHealth verifies the connection is usable
func (cm *ConnectionManager) CheckHealth() error {
	if cm.db == nil {
		return fmt.Errorf("database not connected")
	}
	return cm.db.Ping()
}

// LogStats logs connection pool statistics
func (cm *ConnectionManager) LogStats() {
	if cm.db == nil {
		return
	}

	stats := cm.db.Stats()
	cm.config.Logger.WithFields(logrus.Fields{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
	}).Debug("Database pool stats")
}

// Close closes the database connection
func (cm *ConnectionManager) Close() error {
	if cm.db == nil {
		return nil
	}

	err := cm.db.Close()
	cm.db = nil
	return err
}
