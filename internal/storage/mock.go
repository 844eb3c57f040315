package storage

import (
	"context"
	"io"
	"path"
	"sort"
	"sync"
)

// MockClient is an in-memory Client for tests
type MockClient struct {
	mu    sync.Mutex
	files map[string][]byte

	UploadErr error
	DeleteErr error
}

func NewMockClient() *MockClient {
	return &MockClient{files: make(map[string][]byte)}
}

func (m *MockClient) Upload(ctx context.Context, remotePath string, data io.Reader) error {
	if m.UploadErr != nil {
		return m.UploadErr
	}
	content, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[remotePath] = content
	return nil
}

func (m *MockClient) Delete(ctx context.Context, remotePath string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, remotePath)
	return nil
}

func (m *MockClient) List(ctx context.Context, dir string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for p := range m.files {
		if path.Dir(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	sort.Strings(names)
	return names, nil
}

// File returns the stored bytes for assertions
func (m *MockClient) File(remotePath string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[remotePath]
	return content, ok
}
