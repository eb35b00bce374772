package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/usersvc/internal/logging"
	"github.com/dmitrijs2005/usersvc/internal/server/migrations"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/users"
)

type PostgresRepositoryManager struct {
	db     *sql.DB
	users  users.Repository
	logger logging.Logger
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresRepositoryManager) SchemaReady(ctx context.Context) bool {
	if err := m.db.PingContext(ctx); err != nil {
		m.logger.Error(ctx, "database unreachable", "error", err.Error())
		return false
	}

	var exists bool
	err := m.db.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = 'users' AND table_schema = 'public'
		)`).Scan(&exists)
	if err != nil {
		m.logger.Error(ctx, "schema check failed", "error", err.Error())
		return false
	}
	if !exists {
		m.logger.Error(ctx, "users table does not exist")
		return false
	}

	var count int64
	if err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		m.logger.Error(ctx, "row count failed", "error", err.Error())
		return false
	}

	m.logger.Info(ctx, "users table ready", "registros", count)
	return true
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func NewPostgresRepositoryManager(dsn string, logger logging.Logger) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:     db,
		users:  users.NewPostgresRepository(db),
		logger: logger.With("module", "db"),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
