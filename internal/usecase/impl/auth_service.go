// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "blindauth/internal/delivery/context"
	domainerrors "blindauth/internal/domain/errors"
	"blindauth/internal/domain/repository"
	"blindauth/internal/domain/service"
	"blindauth/internal/errors"
	"blindauth/internal/usecase"

	"go.uber.org/fx"
)

const (
	hashKindSecret = "hash"
	hashKindVerify = "verify"

	// Verified against when the identifier is unknown so that login takes
	// roughly the same time whether or not the account exists.
	dummySecret = "blindauth-dummy-secret"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo         repository.UserRepository
	identifierHasher service.IdentifierHasher
	secretHasher     service.SecretHasher
	sessions         service.SessionRegistry
	metrics          service.AuthMetrics
	logger           *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	IdentifierHasher service.IdentifierHasher
	SecretHasher     service.SecretHasher
	Sessions         service.SessionRegistry
	Metrics          service.AuthMetrics `optional:"true"`
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &authService{
		userRepo:         params.UserRepo,
		identifierHasher: params.IdentifierHasher,
		secretHasher:     params.SecretHasher,
		sessions:         params.Sessions,
		metrics:          metrics,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) record(operation string, err error) {
	if err == nil {
		srv.metrics.RecordOperation(operation, service.OutcomeSuccess, "")

		return
	}
	srv.metrics.RecordOperation(operation, service.OutcomeFailure, domainerrors.CodeOf(err))
}

// Register creates an account and returns a fresh token.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (out *usecase.AuthOutput, err error) {
	defer func() { srv.record(usecase.OperationRegister, err) }()

	if isBlank(input.Identifier) || input.Secret == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	identifierHash := srv.identifierHasher.HashIdentifier(input.Identifier)

	_, err = srv.userRepo.FindByIdentifierHash(ctx, identifierHash)
	switch {
	case err == nil:
		srv.log(ctx).Debug("Registration rejected, identifier already registered")

		return nil, errors.WithStack(domainerrors.ErrAlreadyExists)
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Error("Failed to look up identifier during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up identifier")
	}

	secretHash, err := srv.hashSecret(input.Secret)
	if err != nil {
		srv.log(ctx).Error("Failed to hash secret during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash secret")
	}

	user, err := srv.userRepo.Insert(ctx, identifierHash, secretHash)
	if err != nil {
		if errors.Is(err, repository.ErrIdentifierConflict) {
			srv.log(ctx).Debug("Registration lost insert race")

			return nil, errors.Wrap(domainerrors.ErrAlreadyExists, "identifier registered concurrently")
		}
		srv.log(ctx).Error("Failed to insert user", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to insert user")
	}

	token, err := srv.sessions.Issue(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session after registration", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{Token: token}, nil
}

// Login checks the credentials and returns a fresh token. Unknown identifiers
// and wrong secrets fail with the same error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (out *usecase.AuthOutput, err error) {
	defer func() { srv.record(usecase.OperationLogin, err) }()

	if isBlank(input.Identifier) || input.Secret == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	identifierHash := srv.identifierHasher.HashIdentifier(input.Identifier)

	user, err := srv.userRepo.FindByIdentifierHash(ctx, identifierHash)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.verifySecret(input.Secret, srv.dummySecretHash())
			srv.log(ctx).Debug("Login failed, identifier not registered")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		srv.log(ctx).Error("Failed to look up identifier during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up identifier")
	}

	if !srv.verifySecret(input.Secret, user.SecretHash) {
		srv.log(ctx).Debug("Login failed, secret mismatch", slog.Int64("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.sessions.Issue(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session after login", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{Token: token}, nil
}

// ResetSecret replaces the secret of the named account. The caller's token
// stays valid.
func (srv *authService) ResetSecret(ctx context.Context, input usecase.ResetSecretInput) (err error) {
	defer func() { srv.record(usecase.OperationResetSecret, err) }()

	if !srv.sessions.Validate(ctx, input.Token) {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	if isBlank(input.Identifier) || input.CurrentSecret == "" || input.NewSecret == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	identifierHash := srv.identifierHasher.HashIdentifier(input.Identifier)

	user, err := srv.userRepo.FindByIdentifierHash(ctx, identifierHash)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "reset failed")
		}
		srv.log(ctx).Error("Failed to look up identifier during reset", slog.Any("error", err))

		return errors.Wrap(err, "failed to look up identifier")
	}

	if !srv.verifySecret(input.CurrentSecret, user.SecretHash) {
		srv.log(ctx).Debug("Reset rejected, current secret mismatch", slog.Int64("userID", user.ID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "reset failed")
	}

	newHash, err := srv.hashSecret(input.NewSecret)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new secret", slog.Int64("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash secret")
	}

	if err := srv.userRepo.UpdateSecretHash(ctx, identifierHash, newHash); err != nil {
		srv.log(ctx).Error("Failed to update secret hash", slog.Int64("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update secret")
	}

	srv.log(ctx).Info("Secret reset", slog.Int64("userID", user.ID))

	return nil
}

// Logout revokes token.
func (srv *authService) Logout(ctx context.Context, token string) (err error) {
	defer func() { srv.record(usecase.OperationLogout, err) }()

	if token == "" || !srv.sessions.Revoke(ctx, token) {
		return errors.WithStack(domainerrors.ErrNoActiveSession)
	}

	srv.log(ctx).Debug("Session revoked")

	return nil
}

// ListUsers returns every stored record to any holder of a valid token.
func (srv *authService) ListUsers(ctx context.Context, token string) (out *usecase.ListUsersOutput, err error) {
	defer func() { srv.record(usecase.OperationListUsers, err) }()

	if !srv.sessions.Validate(ctx, token) {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.ListUsersOutput{Users: users, Count: len(users)}, nil
}

func (srv *authService) hashSecret(secret string) (string, error) {
	start := time.Now()
	defer func() { srv.metrics.ObserveSecretHash(hashKindSecret, time.Since(start)) }()

	return srv.secretHasher.Hash(secret)
}

func (srv *authService) verifySecret(secret, encodedHash string) bool {
	start := time.Now()
	defer func() { srv.metrics.ObserveSecretHash(hashKindVerify, time.Since(start)) }()

	return srv.secretHasher.Verify(secret, encodedHash)
}

// dummySecretHash is computed on first use. If hashing fails the empty string
// is returned, which Verify rejects without doing any work.
func (srv *authService) dummySecretHash() string {
	srv.dummyOnce.Do(func() {
		hash, err := srv.secretHasher.Hash(dummySecret)
		if err != nil {
			srv.logger.Warn("Failed to compute dummy secret hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type nopMetrics struct{}

func (nopMetrics) RecordOperation(string, string, string) {}

func (nopMetrics) ObserveSecretHash(string, time.Duration) {}
