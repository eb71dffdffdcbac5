package mock

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// Storage keeps receipt objects in memory.
type Storage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewStorage() *Storage {
	return &Storage{objects: make(map[string][]byte)}
}

func (s *Storage) Put(_ context.Context, path string, r io.Reader, size int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if int64(len(data)) != size {
		return fmt.Errorf("expected %d bytes for %s, read %d", size, path, len(data))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
	return nil
}

func (s *Storage) Remove(_ context.Context, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range paths {
		delete(s.objects, p)
	}
	return nil
}

func (s *Storage) URL(_ context.Context, path string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://receipts.test/%s?expires=%d", path, int(expiry.Seconds())), nil
}

func (s *Storage) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.objects))
	for p := range s.objects {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (s *Storage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = make(map[string][]byte)
}
