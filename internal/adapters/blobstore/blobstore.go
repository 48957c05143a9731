// Package blobstore guarda archivos bajo una key y devuelve la URL pública.
// FileStore escribe en disco (servido por el router en /uploads); MemoryStore es para tests.
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

var ErrInvalidKey = errors.New("invalid blob key")

// cleanKey rechaza keys absolutas o que escapan del directorio base.
func cleanKey(key string) (string, error) {
	k := path.Clean(strings.TrimSpace(key))
	if k == "." || k == "" || strings.HasPrefix(k, "/") || k == ".." || strings.HasPrefix(k, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return k, nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}

type FileStore struct {
	dir     string
	baseURL string
}

func NewFileStore(dir, baseURL string) *FileStore {
	return &FileStore{dir: dir, baseURL: baseURL}
}

func (s *FileStore) Dir() string { return s.dir }

// Put escribe a un temporal y renombra, así nunca queda un archivo a medias con el nombre final.
func (s *FileStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	k, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(s.dir, filepath.FromSlash(k))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close blob: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("store blob: %w", err)
	}

	return joinURL(s.baseURL, k), nil
}

// Blob es lo que guarda MemoryStore.
type Blob struct {
	ContentType string
	Data        []byte
}

type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	blobs   map[string]Blob
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{baseURL: baseURL, blobs: make(map[string]Blob)}
}

func (s *MemoryStore) Put(_ context.Context, key, contentType string, r io.Reader) (string, error) {
	k, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", fmt.Errorf("read blob: %w", err)
	}

	s.mu.Lock()
	s.blobs[k] = Blob{ContentType: contentType, Data: buf.Bytes()}
	s.mu.Unlock()

	return joinURL(s.baseURL, k), nil
}

func (s *MemoryStore) Get(key string) (Blob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	return b, ok
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
