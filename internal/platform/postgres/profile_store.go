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
	"github.com/serviscore/serviscore-api/internal/store"
)

// PostgresProfileStore implements store.ProfileStore using a PostgreSQL
// database as the storage backend.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProfileStore creates a new PostgreSQL implementation of the
// ProfileStore interface. If log is nil, a default logger will be used.
func NewPostgresProfileStore(db store.DBTX, log *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresProfileStore{
		db:     db,
		logger: log.With(slog.String("component", "profile_store")),
	}
}

// Ensure PostgresProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// WithTx implements store.ProfileStore.WithTx
func (s *PostgresProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &PostgresProfileStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ProfileStore.Create
// Whether the credential exists is the registration service's concern by
// call order; the foreign key and the one-to-one unique constraint are the
// storage-level backstops.
func (s *PostgresProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("profile validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `
		INSERT INTO profiles (first_name, last_name, credential_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		profile.FirstName,
		profile.LastName,
		profile.CredentialID,
		profile.IsActive,
		profile.CreatedAt,
		profile.UpdatedAt,
	).Scan(&profile.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("profile creation rejected: credential already has a profile",
				slog.Int64("credential_id", profile.CredentialID))
			return store.ErrProfileExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("profile references unknown credential",
				slog.Int64("credential_id", profile.CredentialID))
			return fmt.Errorf("%w: credential %d", store.ErrInvalidReference, profile.CredentialID)
		}
		log.Error("failed to create profile",
			slog.String("error", err.Error()),
			slog.Int64("credential_id", profile.CredentialID))
		return err
	}

	log.Info("profile created",
		slog.Int64("profile_id", profile.ID),
		slog.Int64("credential_id", profile.CredentialID))
	return nil
}

const profileColumns = `id, first_name, last_name, credential_id, is_active, created_at, updated_at`

func scanProfile(row *sql.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.CredentialID,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID implements store.ProfileStore.GetByID
func (s *PostgresProfileStore) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1 AND is_active = TRUE`
	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found", slog.Int64("profile_id", id))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile by ID",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", id))
		return nil, err
	}

	return profile, nil
}

// List implements store.ProfileStore.List
func (s *PostgresProfileStore) List(ctx context.Context) ([]*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE is_active = TRUE ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list profiles",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var profiles []*domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(
			&p.ID,
			&p.FirstName,
			&p.LastName,
			&p.CredentialID,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			log.Error("failed to scan profile row",
				slog.String("error", err.Error()))
			return nil, err
		}
		profiles = append(profiles, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update implements store.ProfileStore.Update
func (s *PostgresProfileStore) Update(ctx context.Context, id int64, firstName, lastName string) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if firstName == "" && lastName == "" {
		return nil, store.ErrNoUpdate
	}

	query := `
		UPDATE profiles
		SET first_name = COALESCE(NULLIF($1, ''), first_name),
		    last_name  = COALESCE(NULLIF($2, ''), last_name),
		    updated_at = $3
		WHERE id = $4
		RETURNING ` + profileColumns

	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, firstName, lastName, time.Now().UTC(), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found for update",
				slog.Int64("profile_id", id))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", id))
		return nil, err
	}

	log.Info("profile updated", slog.Int64("profile_id", id))
	return profile, nil
}

// ToggleActive implements store.ProfileStore.ToggleActive
func (s *PostgresProfileStore) ToggleActive(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE profiles
		SET is_active = NOT is_active, updated_at = $1
		WHERE id = $2
		RETURNING is_active
	`

	var isActive bool
	err := s.db.QueryRowContext(ctx, query, time.Now().UTC(), id).Scan(&isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found for toggle",
				slog.Int64("profile_id", id))
			return false, store.ErrProfileNotFound
		}
		log.Error("failed to toggle profile",
			slog.String("error", err.Error()),
			slog.Int64("profile_id", id))
		return false, err
	}

	log.Info("profile active flag toggled",
		slog.Int64("profile_id", id),
		slog.Bool("is_active", isActive))
	return isActive, nil
}
