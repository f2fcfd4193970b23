package mocks

import (
	"context"
	"strings"

	"github.com/stretchr/testify/mock"
)

// MockBlobStore is a testify mock for storage.BlobStore. KeyFromURL is
// implemented directly against BaseURL so tests only set up Upload/Delete.
type MockBlobStore struct {
	mock.Mock
	BaseURL string
}

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{BaseURL: "https://blob.test/qbrain"}
}

func (m *MockBlobStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockBlobStore) KeyFromURL(url string) (string, bool) {
	prefix := m.BaseURL + "/"
	if !strings.HasPrefix(url, prefix) || url == prefix {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

// URL builds the public URL the store would return for key
func (m *MockBlobStore) URL(key string) string {
	return m.BaseURL + "/" + key
}
