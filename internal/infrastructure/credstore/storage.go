package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the durable key-value backend the credential store writes to.
// Implementations must tolerate missing keys.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStorage keeps the key-value map in a single JSON file with 0600
// permissions, created on first write.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage builds a file-backed storage at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

func (f *FileStorage) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.read()
	if err != nil {
		return err
	}
	m[key] = value
	return f.write(m)
}

func (f *FileStorage) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return f.write(m)
}

func (f *FileStorage) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("credstore: read %s: %w", f.path, err)
	}
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		// Unreadable file counts as empty; the next write replaces it.
		return map[string]string{}, nil
	}
	return m, nil
}

func (f *FileStorage) write(m map[string]string) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("credstore: mkdir %s: %w", dir, err)
		}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("credstore: write %s: %w", f.path, err)
	}
	return nil
}

// Memory is an in-memory Storage for tests and ephemeral sessions.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemory builds an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{m: map[string]string{}}
}

func (s *Memory) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// Len reports how many keys are stored (test helper).
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
