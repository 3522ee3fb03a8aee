package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStorage is an in-memory storage.ImageStorage.
type MemoryStorage struct {
	mu    sync.Mutex
	Files map[string][]byte
	seq   int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Files: map[string][]byte{}}
}

func (m *MemoryStorage) UploadImage(_ context.Context, r io.Reader, folder, fileName string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	url := fmt.Sprintf("https://files.test/%s/%d-%s", folder, m.seq, fileName)
	m.Files[url] = data
	return url, nil
}

func (m *MemoryStorage) DeleteImage(_ context.Context, fileURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Files, fileURL)
	return nil
}

func (m *MemoryStorage) Has(fileURL string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Files[fileURL]
	return ok
}
