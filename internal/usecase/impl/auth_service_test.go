package impl

import (
	"context"
	"testing"
	"time"

	"blindauth/internal/domain/entity"
	domainerrors "blindauth/internal/domain/errors"
	"blindauth/internal/domain/repository"
	"blindauth/internal/domain/service"
	"blindauth/internal/errors"
	"blindauth/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testIdentifier     = "a@b.com"
	testIdentifierHash = "identifier-hash"
	testSecret         = "pw1"
	testSecretHash     = "$argon2id$stored"
	testToken          = "token-1"
)

func storedUser() *entity.User {
	return &entity.User{
		ID:             1,
		IdentifierHash: testIdentifierHash,
		SecretHash:     testSecretHash,
		CreatedAt:      time.Now(),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
	f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(nil, repository.ErrUserNotFound)
	f.secretHasher.EXPECT().Hash(testSecret).Return(testSecretHash, nil)
	f.userRepo.EXPECT().Insert(ctx, testIdentifierHash, testSecretHash).Return(storedUser(), nil)
	f.sessions.EXPECT().Issue(ctx).Return(testToken, nil)

	out, err := f.service.Register(ctx, usecase.RegisterInput{Identifier: testIdentifier, Secret: testSecret})

	require.NoError(t, err)
	assert.Equal(t, testToken, out.Token)
	assert.Equal(t, recordedOperation{usecase.OperationRegister, service.OutcomeSuccess, ""}, f.metrics.last())
	assert.Equal(t, []string{hashKindSecret}, f.metrics.hashKinds)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{name: "missing identifier", input: usecase.RegisterInput{Secret: testSecret}},
		{name: "blank identifier", input: usecase.RegisterInput{Identifier: "   ", Secret: testSecret}},
		{name: "missing secret", input: usecase.RegisterInput{Identifier: testIdentifier}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthService(t)

			_, err := f.service.Register(context.Background(), tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAuthService_Register_AlreadyExists(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
	f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(storedUser(), nil)

	_, err := f.service.Register(ctx, usecase.RegisterInput{Identifier: testIdentifier, Secret: testSecret})

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyExists))
	assert.Equal(t, recordedOperation{usecase.OperationRegister, service.OutcomeFailure, domainerrors.CodeAlreadyExists}, f.metrics.last())
	f.secretHasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Register_InsertConflictSurfacesAsAlreadyExists(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
	f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(nil, repository.ErrUserNotFound)
	f.secretHasher.EXPECT().Hash(testSecret).Return(testSecretHash, nil)
	f.userRepo.EXPECT().Insert(ctx, testIdentifierHash, testSecretHash).
		Return(nil, errors.WithStack(repository.ErrIdentifierConflict))

	_, err := f.service.Register(ctx, usecase.RegisterInput{Identifier: testIdentifier, Secret: testSecret})

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyExists))
	assert.Equal(t, domainerrors.CodeAlreadyExists, domainerrors.CodeOf(err))
}

func TestAuthService_Register_StoreFailureIsInternal(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
	f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "find"))

	_, err := f.service.Register(ctx, usecase.RegisterInput{Identifier: testIdentifier, Secret: testSecret})

	require.Error(t, err)
	assert.Equal(t, domainerrors.CodeInternal, domainerrors.CodeOf(err))
}

func TestAuthService_Register_IssueFailure(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
	f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(nil, repository.ErrUserNotFound)
	f.secretHasher.EXPECT().Hash(testSecret).Return(testSecretHash, nil)
	f.userRepo.EXPECT().Insert(ctx, testIdentifierHash, testSecretHash).Return(storedUser(), nil)
	f.sessions.EXPECT().Issue(ctx).Return("", errors.New("entropy exhausted"))

	_, err := f.service.Register(ctx, usecase.RegisterInput{Identifier: testIdentifier, Secret: testSecret})

	assert.ErrorContains(t, err, "failed to issue session")
	assert.Equal(t, domainerrors.CodeInternal, domainerrors.CodeOf(err))
}

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
	f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(storedUser(), nil)
	f.secretHasher.EXPECT().Verify(testSecret, testSecretHash).Return(true)
	f.sessions.EXPECT().Issue(ctx).Return(testToken, nil)

	out, err := f.service.Login(ctx, usecase.LoginInput{Identifier: testIdentifier, Secret: testSecret})

	require.NoError(t, err)
	assert.Equal(t, testToken, out.Token)
}

func TestAuthService_Login_UnknownAndWrongSecretAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
	unknown.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(nil, repository.ErrUserNotFound)
	unknown.secretHasher.EXPECT().Hash(dummySecret).Return("$argon2id$dummy", nil).Once()
	unknown.secretHasher.EXPECT().Verify(testSecret, "$argon2id$dummy").Return(true)

	_, unknownErr := unknown.service.Login(ctx, usecase.LoginInput{Identifier: testIdentifier, Secret: testSecret})

	wrong := createTestAuthService(t)
	wrong.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
	wrong.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(storedUser(), nil)
	wrong.secretHasher.EXPECT().Verify("nope", testSecretHash).Return(false)

	_, wrongErr := wrong.service.Login(ctx, usecase.LoginInput{Identifier: testIdentifier, Secret: "nope"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, unknown.metrics.last(), wrong.metrics.last())
}

func TestAuthService_Login_DummyHashComputedOnce(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.identifierHasher.EXPECT().HashIdentifier(mock.Anything).Return(testIdentifierHash)
	f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(nil, repository.ErrUserNotFound)
	f.secretHasher.EXPECT().Hash(dummySecret).Return("$argon2id$dummy", nil).Once()
	f.secretHasher.EXPECT().Verify(mock.Anything, "$argon2id$dummy").Return(false)

	for range 3 {
		_, err := f.service.Login(ctx, usecase.LoginInput{Identifier: testIdentifier, Secret: testSecret})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestAuthService_ResetSecret(t *testing.T) {
	ctx := context.Background()
	input := usecase.ResetSecretInput{
		Token:         testToken,
		Identifier:    testIdentifier,
		CurrentSecret: testSecret,
		NewSecret:     "pw2",
	}

	t.Run("success keeps the token", func(t *testing.T) {
		f := createTestAuthService(t)

		f.sessions.EXPECT().Validate(ctx, testToken).Return(true)
		f.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
		f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(storedUser(), nil)
		f.secretHasher.EXPECT().Verify(testSecret, testSecretHash).Return(true)
		f.secretHasher.EXPECT().Hash("pw2").Return("$argon2id$new", nil)
		f.userRepo.EXPECT().UpdateSecretHash(ctx, testIdentifierHash, "$argon2id$new").Return(nil)

		require.NoError(t, f.service.ResetSecret(ctx, input))
		f.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})

	t.Run("invalid token is checked first", func(t *testing.T) {
		f := createTestAuthService(t)
		f.sessions.EXPECT().Validate(ctx, "").Return(false)

		err := f.service.ResetSecret(ctx, usecase.ResetSecretInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("missing fields", func(t *testing.T) {
		f := createTestAuthService(t)
		f.sessions.EXPECT().Validate(ctx, testToken).Return(true)

		err := f.service.ResetSecret(ctx, usecase.ResetSecretInput{Token: testToken, Identifier: testIdentifier})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown identifier", func(t *testing.T) {
		f := createTestAuthService(t)
		f.sessions.EXPECT().Validate(ctx, testToken).Return(true)
		f.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
		f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(nil, repository.ErrUserNotFound)

		err := f.service.ResetSecret(ctx, input)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("wrong current secret leaves the hash alone", func(t *testing.T) {
		f := createTestAuthService(t)
		f.sessions.EXPECT().Validate(ctx, testToken).Return(true)
		f.identifierHasher.EXPECT().HashIdentifier(testIdentifier).Return(testIdentifierHash)
		f.userRepo.EXPECT().FindByIdentifierHash(ctx, testIdentifierHash).Return(storedUser(), nil)
		f.secretHasher.EXPECT().Verify(testSecret, testSecretHash).Return(false)

		err := f.service.ResetSecret(ctx, input)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		f.userRepo.AssertNotCalled(t, "UpdateSecretHash", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("active token", func(t *testing.T) {
		f := createTestAuthService(t)
		f.sessions.EXPECT().Revoke(ctx, testToken).Return(true)

		assert.NoError(t, f.service.Logout(ctx, testToken))
	})

	t.Run("unknown token", func(t *testing.T) {
		f := createTestAuthService(t)
		f.sessions.EXPECT().Revoke(ctx, "stale").Return(false)

		err := f.service.Logout(ctx, "stale")

		assert.True(t, errors.Is(err, domainerrors.ErrNoActiveSession))
	})

	t.Run("missing token", func(t *testing.T) {
		f := createTestAuthService(t)

		err := f.service.Logout(ctx, "")

		assert.True(t, errors.Is(err, domainerrors.ErrNoActiveSession))
		f.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})
}

func TestAuthService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns every record with count", func(t *testing.T) {
		f := createTestAuthService(t)
		users := []*entity.User{storedUser(), {ID: 2, IdentifierHash: "other", SecretHash: "h"}}

		f.sessions.EXPECT().Validate(ctx, testToken).Return(true)
		f.userRepo.EXPECT().ListAll(ctx).Return(users, nil)

		out, err := f.service.ListUsers(ctx, testToken)

		require.NoError(t, err)
		assert.Equal(t, 2, out.Count)
		assert.Equal(t, users, out.Users)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := createTestAuthService(t)
		f.sessions.EXPECT().Validate(ctx, "bad").Return(false)

		_, err := f.service.ListUsers(ctx, "bad")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
		assert.Equal(t, recordedOperation{usecase.OperationListUsers, service.OutcomeFailure, domainerrors.CodeUnauthorized}, f.metrics.last())
	})
}
