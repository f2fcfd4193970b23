package mocks

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

// MockEnqueuer is a testify mock for queue.Enqueuer
type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) (string, error) {
	args := m.Called(ctx, taskType, payload)
	return args.String(0), args.Error(1)
}
