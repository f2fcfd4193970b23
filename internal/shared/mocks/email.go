package mocks

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"qbrain-backend/internal/infrastructure/email"
)

// MockSender is a testify mock for email.Sender that also records every request
type MockSender struct {
	mock.Mock
	mu   sync.Mutex
	Sent []email.EmailRequest
}

func (m *MockSender) Send(ctx context.Context, req email.EmailRequest) error {
	args := m.Called(ctx, req)
	if args.Error(0) == nil {
		m.mu.Lock()
		m.Sent = append(m.Sent, req)
		m.mu.Unlock()
	}
	return args.Error(0)
}
