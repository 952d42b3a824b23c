package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/platform/logger"
	"github.com/serviscore/serviscore-api/internal/store"
)

// PostgresRoleStore implements store.RoleStore using a PostgreSQL database.
type PostgresRoleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRoleStore creates a new PostgreSQL implementation of the
// RoleStore interface.
func NewPostgresRoleStore(db store.DBTX, log *slog.Logger) *PostgresRoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresRoleStore{
		db:     db,
		logger: log.With(slog.String("component", "role_store")),
	}
}

var _ store.RoleStore = (*PostgresRoleStore)(nil)

// WithTx implements store.RoleStore.WithTx
func (s *PostgresRoleStore) WithTx(tx *sql.Tx) store.RoleStore {
	return &PostgresRoleStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.RoleStore.Create
func (s *PostgresRoleStore) Create(ctx context.Context, role *domain.Role) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := role.Validate(); err != nil {
		log.Warn("role validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO roles (name, is_active)
		VALUES ($1, $2)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, role.Name, role.IsActive).Scan(&role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("role creation rejected: name taken",
				slog.String("name", role.Name))
			return store.ErrRoleExists
		}
		log.Error("failed to create role",
			slog.String("error", err.Error()),
			slog.String("name", role.Name))
		return err
	}

	log.Info("role created",
		slog.Int64("role_id", role.ID),
		slog.String("name", role.Name))
	return nil
}

// GetByID implements store.RoleStore.GetByID
func (s *PostgresRoleStore) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var role domain.Role
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, is_active FROM roles WHERE id = $1`, id,
	).Scan(&role.ID, &role.Name, &role.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("role not found", slog.Int64("role_id", id))
			return nil, store.ErrRoleNotFound
		}
		log.Error("failed to get role by ID",
			slog.String("error", err.Error()),
			slog.Int64("role_id", id))
		return nil, err
	}

	return &role, nil
}

// List implements store.RoleStore.List
func (s *PostgresRoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, is_active FROM roles ORDER BY id`)
	if err != nil {
		log.Error("failed to list roles",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var roles []*domain.Role
	for rows.Next() {
		var r domain.Role
		if err := rows.Scan(&r.ID, &r.Name, &r.IsActive); err != nil {
			log.Error("failed to scan role row",
				slog.String("error", err.Error()))
			return nil, err
		}
		roles = append(roles, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}
