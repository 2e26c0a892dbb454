package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	mockRepo "blindauth/internal/mocks/repository"
	mockSvc "blindauth/internal/mocks/service"
	"blindauth/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordedOperation struct {
	operation string
	outcome   string
	code      string
}

// spyMetrics keeps everything it is told so tests can assert on outcomes.
type spyMetrics struct {
	mu         sync.Mutex
	operations []recordedOperation
	hashKinds  []string
}

func (s *spyMetrics) RecordOperation(operation, outcome, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operations = append(s.operations, recordedOperation{operation, outcome, code})
}

func (s *spyMetrics) ObserveSecretHash(kind string, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashKinds = append(s.hashKinds, kind)
}

func (s *spyMetrics) last() recordedOperation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.operations) == 0 {
		return recordedOperation{}
	}

	return s.operations[len(s.operations)-1]
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	userRepo         *mockRepo.MockUserRepository
	identifierHasher *mockSvc.MockIdentifierHasher
	secretHasher     *mockSvc.MockSecretHasher
	sessions         *mockSvc.MockSessionRegistry
	metrics          *spyMetrics
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	f := authServiceFixtures{
		userRepo:         mockRepo.NewMockUserRepository(t),
		identifierHasher: mockSvc.NewMockIdentifierHasher(t),
		secretHasher:     mockSvc.NewMockSecretHasher(t),
		sessions:         mockSvc.NewMockSessionRegistry(t),
		metrics:          &spyMetrics{},
	}

	f.service = NewAuthService(AuthServiceParams{
		UserRepo:         f.userRepo,
		IdentifierHasher: f.identifierHasher,
		SecretHasher:     f.secretHasher,
		Sessions:         f.sessions,
		Metrics:          f.metrics,
		Logger:           newDiscardLogger(),
	})

	return f
}
