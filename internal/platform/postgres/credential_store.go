package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/platform/logger"
	"github.com/serviscore/serviscore-api/internal/service/auth"
	"github.com/serviscore/serviscore-api/internal/store"
)

// PostgresCredentialStore implements store.CredentialStore using a
// PostgreSQL database as the storage backend. Password hashing happens
// here, inside Create, so no plaintext ever reaches a query.
type PostgresCredentialStore struct {
	db     store.DBTX
	sqlDB  *sql.DB // nil when bound to a transaction via WithTx
	hasher auth.PasswordHasher
	logger *slog.Logger
}

// NewPostgresCredentialStore creates a new PostgreSQL implementation of the
// CredentialStore interface. The connection should be initialized and
// managed by the caller. If log is nil, a default logger will be used.
func NewPostgresCredentialStore(
	db *sql.DB,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) *PostgresCredentialStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresCredentialStore{
		db:     db,
		sqlDB:  db,
		hasher: hasher,
		logger: log.With(slog.String("component", "credential_store")),
	}
}

// Ensure PostgresCredentialStore implements store.CredentialStore interface
var _ store.CredentialStore = (*PostgresCredentialStore)(nil)

// WithTx implements store.CredentialStore.WithTx
func (s *PostgresCredentialStore) WithTx(tx *sql.Tx) store.CredentialStore {
	return &PostgresCredentialStore{
		db:     tx,
		hasher: s.hasher,
		logger: s.logger,
	}
}

// Create implements store.CredentialStore.Create
// The duplicate-email pre-check and the insert share one transaction when
// the store is connection-bound; a concurrent writer that slips past the
// pre-check is still caught by the unique index and mapped to
// store.ErrEmailExists.
func (s *PostgresCredentialStore) Create(ctx context.Context, credential *domain.Credential) error {
	if s.sqlDB != nil {
		return store.RunInTransaction(ctx, s.sqlDB, func(ctx context.Context, tx *sql.Tx) error {
			return s.createIn(ctx, tx, credential)
		})
	}
	return s.createIn(ctx, s.db, credential)
}

func (s *PostgresCredentialStore) createIn(
	ctx context.Context,
	db store.DBTX,
	credential *domain.Credential,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := credential.Validate(); err != nil {
		log.Warn("credential validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM credentials WHERE email = $1)`,
		credential.Email,
	).Scan(&exists)
	if err != nil {
		log.Error("failed to check email uniqueness",
			slog.String("error", err.Error()))
		return err
	}
	if exists {
		log.Debug("credential creation rejected: email taken")
		return store.ErrEmailExists
	}

	hashed, err := s.hasher.Hash(credential.Password)
	if err != nil {
		log.Error("failed to hash password",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}
	credential.HashedPassword = hashed
	credential.Password = "" // plaintext must not outlive hashing

	now := time.Now().UTC()
	credential.CreatedAt = now
	credential.UpdatedAt = now

	query := `
		INSERT INTO credentials (email, hashed_password, role_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = db.QueryRowContext(
		ctx,
		query,
		credential.Email,
		credential.HashedPassword,
		credential.RoleID,
		credential.IsActive,
		credential.CreatedAt,
		credential.UpdatedAt,
	).Scan(&credential.ID)

	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race against a concurrent registration.
			log.Debug("credential creation rejected: unique index violation")
			return store.ErrEmailExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("credential references unknown role",
				slog.Int64("role_id", credential.RoleID))
			return fmt.Errorf("%w: role %d", store.ErrInvalidReference, credential.RoleID)
		}
		log.Error("failed to create credential",
			slog.String("error", err.Error()))
		return err
	}

	log.Info("credential created",
		slog.Int64("credential_id", credential.ID),
		slog.Int64("role_id", credential.RoleID))
	return nil
}

const credentialColumns = `id, email, hashed_password, role_id, is_active, created_at, updated_at`

func scanCredential(row *sql.Row) (*domain.Credential, error) {
	var c domain.Credential
	err := row.Scan(
		&c.ID,
		&c.Email,
		&c.HashedPassword,
		&c.RoleID,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID implements store.CredentialStore.GetByID
// Only active credentials are visible through this lookup; the access
// guard relies on that to reject tokens for deactivated accounts.
func (s *PostgresCredentialStore) GetByID(ctx context.Context, id int64) (*domain.Credential, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE id = $1 AND is_active = TRUE`
	credential, err := scanCredential(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("credential not found", slog.Int64("credential_id", id))
			return nil, store.ErrCredentialNotFound
		}
		log.Error("failed to get credential by ID",
			slog.String("error", err.Error()),
			slog.Int64("credential_id", id))
		return nil, err
	}

	return credential, nil
}

// GetByEmail implements store.CredentialStore.GetByEmail
func (s *PostgresCredentialStore) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE email = $1 AND is_active = TRUE`
	credential, err := scanCredential(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("credential not found by email")
			return nil, store.ErrCredentialNotFound
		}
		log.Error("failed to get credential by email",
			slog.String("error", err.Error()))
		return nil, err
	}

	return credential, nil
}

// List implements store.CredentialStore.List
func (s *PostgresCredentialStore) List(ctx context.Context, includeInactive bool) ([]*domain.Credential, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + credentialColumns + ` FROM credentials ORDER BY id`
	if !includeInactive {
		query = `SELECT ` + credentialColumns + ` FROM credentials WHERE is_active = TRUE ORDER BY id`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list credentials",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var credentials []*domain.Credential
	for rows.Next() {
		var c domain.Credential
		if err := rows.Scan(
			&c.ID,
			&c.Email,
			&c.HashedPassword,
			&c.RoleID,
			&c.IsActive,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			log.Error("failed to scan credential row",
				slog.String("error", err.Error()))
			return nil, err
		}
		credentials = append(credentials, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return credentials, nil
}

// UpdateEmail implements store.CredentialStore.UpdateEmail
func (s *PostgresCredentialStore) UpdateEmail(ctx context.Context, id int64, newEmail string) (*domain.Credential, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if newEmail == "" {
		// Sentinel no-op: nothing to change, nothing was written.
		return nil, store.ErrNoUpdate
	}

	query := `
		UPDATE credentials
		SET email = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + credentialColumns

	credential, err := scanCredential(s.db.QueryRowContext(ctx, query, newEmail, time.Now().UTC(), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("credential not found for email update",
				slog.Int64("credential_id", id))
			return nil, store.ErrCredentialNotFound
		}
		if isUniqueViolation(err) {
			log.Debug("email update rejected: email taken",
				slog.Int64("credential_id", id))
			return nil, store.ErrEmailExists
		}
		log.Error("failed to update credential email",
			slog.String("error", err.Error()),
			slog.Int64("credential_id", id))
		return nil, err
	}

	log.Info("credential email updated",
		slog.Int64("credential_id", id))
	return credential, nil
}

// ToggleActive implements store.CredentialStore.ToggleActive
func (s *PostgresCredentialStore) ToggleActive(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE credentials
		SET is_active = NOT is_active, updated_at = $1
		WHERE id = $2
		RETURNING is_active
	`

	var isActive bool
	err := s.db.QueryRowContext(ctx, query, time.Now().UTC(), id).Scan(&isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("credential not found for toggle",
				slog.Int64("credential_id", id))
			return false, store.ErrCredentialNotFound
		}
		log.Error("failed to toggle credential",
			slog.String("error", err.Error()),
			slog.Int64("credential_id", id))
		return false, err
	}

	log.Info("credential active flag toggled",
		slog.Int64("credential_id", id),
		slog.Bool("is_active", isActive))
	return isActive, nil
}

// HardDelete implements store.CredentialStore.HardDelete
// Reserved for the registration saga's compensation path.
func (s *PostgresCredentialStore) HardDelete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to hard-delete credential",
			slog.String("error", err.Error()),
			slog.Int64("credential_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrCredentialNotFound
	}

	log.Info("credential hard-deleted",
		slog.Int64("credential_id", id))
	return nil
}
