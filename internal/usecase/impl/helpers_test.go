package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"taponn/config"
	"taponn/internal/domain/repository"
	mockRepo "taponn/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL: time.Hour,
			Lockout:        config.LockoutConfig{Enabled: true, MaxAttempts: 5, Duration: 2 * time.Hour},
		},
		QRCode:  &config.QRCodeConfig{Size: 200, ErrorCorrectionLevel: "M", MaxScanHistory: 100},
		Storage: &config.StorageConfig{MaxUploadBytes: 1 << 20},
	}
	cfg.App.FrontendURL = "https://taponn.app"

	return cfg
}

// repoFixtures is a transaction-bound factory with one mock per repository.
type repoFixtures struct {
	factory   *mockRepo.MockRepositoryFactory
	users     *mockRepo.MockUserRepository
	profiles  *mockRepo.MockProfileRepository
	qrCodes   *mockRepo.MockQRCodeRepository
	orders    *mockRepo.MockOrderRepository
	analytics *mockRepo.MockAnalyticsRepository
}

func newRepoFixtures(t *testing.T) *repoFixtures {
	f := &repoFixtures{
		factory:   mockRepo.NewMockRepositoryFactory(t),
		users:     mockRepo.NewMockUserRepository(t),
		profiles:  mockRepo.NewMockProfileRepository(t),
		qrCodes:   mockRepo.NewMockQRCodeRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		analytics: mockRepo.NewMockAnalyticsRepository(t),
	}
	f.factory.EXPECT().UserRepo().Return(f.users).Maybe()
	f.factory.EXPECT().ProfileRepo().Return(f.profiles).Maybe()
	f.factory.EXPECT().QRCodeRepo().Return(f.qrCodes).Maybe()
	f.factory.EXPECT().OrderRepo().Return(f.orders).Maybe()
	f.factory.EXPECT().AnalyticsRepo().Return(f.analytics).Maybe()

	return f
}

// passthroughTx runs every transaction callback against the fixture factory.
func passthroughTx(t *testing.T, repos *repoFixtures) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Maybe()

	return txManager
}

func fixedClock() time.Time { return fixedNow }
