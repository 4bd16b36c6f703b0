package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	public  map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
		public:  make(map[string]bool),
	}
}

func (s *MemoryStore) Save(_ context.Context, path string, data []byte, _ SaveOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[path] = buf
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok, nil
}

func (s *MemoryStore) MakePublic(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.public[path] = true
	return nil
}

func (s *MemoryStore) PublicURL(path string) string {
	return "https://storage.example.com/" + path
}

// Object returns the stored bytes for a path, or nil.
func (s *MemoryStore) Object(path string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[path]
}

// IsPublic reports whether MakePublic was called for the path.
func (s *MemoryStore) IsPublic(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.public[path]
}
