package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/serviscore/serviscore-api/internal/domain"
	"github.com/serviscore/serviscore-api/internal/store"
)

// AccessInput carries the credential half of a registration request.
// A zero RoleID selects the default (basic user) role. A nil IsActive
// means active; an explicit false registers the credential deactivated.
type AccessInput struct {
	Email    string
	Password string
	RoleID   int64
	IsActive *bool
}

// ProfileInput carries the profile half of a registration request.
type ProfileInput struct {
	FirstName string
	LastName  string
}

// RegistrationService turns the two independent writes (credential, then
// profile) into one user-visible operation with compensating cleanup.
type RegistrationService interface {
	// Register creates the credential, then the linked profile.
	//
	// Failure semantics:
	//   - duplicate email: store.ErrEmailExists, nothing was created;
	//   - credential creation fails otherwise: ErrRegistrationFailed;
	//   - profile creation fails and the compensating hard-delete of the
	//     credential succeeds: ErrRegistrationFailed, state is consistent;
	//   - profile creation fails and compensation fails even after a retry:
	//     ErrPartialFailure, an orphaned credential remains.
	Register(ctx context.Context, access AccessInput, profile ProfileInput) (*domain.Profile, error)
}

// RegistrationServiceImpl implements RegistrationService over the two stores.
//
// This is an application-level saga, not a single database transaction:
// the stores stay independently testable, and a failed compensation is
// surfaced to the caller as ErrPartialFailure instead of being swallowed.
type RegistrationServiceImpl struct {
	credentials store.CredentialStore
	profiles    store.ProfileStore
	logger      *slog.Logger
}

var _ RegistrationService = (*RegistrationServiceImpl)(nil)

// NewRegistrationService creates a RegistrationService.
func NewRegistrationService(
	credentials store.CredentialStore,
	profiles store.ProfileStore,
	log *slog.Logger,
) *RegistrationServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &RegistrationServiceImpl{
		credentials: credentials,
		profiles:    profiles,
		logger:      log.With(slog.String("component", "registration_service")),
	}
}

// Register implements RegistrationService.
func (s *RegistrationServiceImpl) Register(
	ctx context.Context,
	access AccessInput,
	profile ProfileInput,
) (*domain.Profile, error) {
	roleID := access.RoleID
	if roleID == 0 {
		roleID = domain.DefaultRoleID
	}

	credential, err := domain.NewCredential(access.Email, access.Password, roleID)
	if err != nil {
		return nil, err
	}
	if access.IsActive != nil {
		credential.IsActive = *access.IsActive
	}

	// Validate the profile half before any write so a bad name never
	// triggers the compensation path.
	if profile.FirstName == "" {
		return nil, domain.ErrEmptyFirstName
	}
	if profile.LastName == "" {
		return nil, domain.ErrEmptyLastName
	}

	// Step 1: credential.
	if err := s.credentials.Create(ctx, credential); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			// Nothing was created; propagate the conflict untouched.
			s.logger.Debug("registration rejected: email already registered")
			return nil, err
		}
		if isValidationError(err) {
			return nil, err
		}
		s.logger.Error("credential creation failed during registration",
			"error", err)
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	// Step 2: profile, linked to the credential we just created.
	newProfile, err := domain.NewProfile(profile.FirstName, profile.LastName, credential.ID)
	if err == nil {
		err = s.profiles.Create(ctx, newProfile)
	}
	if err == nil {
		s.logger.Info("registration completed",
			"credential_id", credential.ID,
			"profile_id", newProfile.ID)
		return newProfile, nil
	}

	// Compensation: remove the credential so no orphan survives the
	// failed registration. One retry before giving up.
	s.logger.Warn("profile creation failed, compensating",
		"error", err,
		"credential_id", credential.ID)

	compErr := s.credentials.HardDelete(ctx, credential.ID)
	if compErr != nil {
		s.logger.Warn("compensating delete failed, retrying once",
			"error", compErr,
			"credential_id", credential.ID)
		compErr = s.credentials.HardDelete(ctx, credential.ID)
	}

	if compErr != nil {
		s.logger.Error("compensating delete failed after retry; orphaned credential remains",
			"error", compErr,
			"credential_id", credential.ID,
			"profile_error", err)
		return nil, fmt.Errorf("%w (credential %d): profile error: %v, compensation error: %v",
			ErrPartialFailure, credential.ID, err, compErr)
	}

	s.logger.Info("compensation succeeded, credential removed",
		"credential_id", credential.ID)
	return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
}

// isValidationError reports whether the error stems from domain validation
// rather than the persistence layer.
func isValidationError(err error) bool {
	var validationErr *domain.ValidationError
	return errors.As(err, &validationErr) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrEmailTooShort) ||
		errors.Is(err, domain.ErrEmptyPassword) ||
		errors.Is(err, domain.ErrPasswordTooShort) ||
		errors.Is(err, domain.ErrPasswordTooLong) ||
		errors.Is(err, domain.ErrInvalidRoleID)
}
