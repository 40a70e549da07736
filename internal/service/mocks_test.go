package service

import (
	"context"
	"time"

	"devops-reference/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSnapshotLoader is a mock implementation of SnapshotLoader
type MockSnapshotLoader struct {
	mock.Mock
}

func (m *MockSnapshotLoader) Load(ctx context.Context) *domain.Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(*domain.Snapshot)
}

// MockCache is a mock implementation of domain.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ domain.Cache = (*MockCache)(nil)

// plainRenderer renders without caching
type plainRenderer struct{}

func (plainRenderer) Render(ctx context.Context, q domain.QuestionRecord) string {
	return "<p>" + q.Answer + "</p>"
}
