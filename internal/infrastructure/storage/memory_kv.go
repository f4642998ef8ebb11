package storage

import (
	"context"
	"sync"
)

var _ KV = (*MemoryKV)(nil)

// MemoryKV almacén clave-valor en memoria. Para tests y para correr sin
// persistencia (STORAGE_DRIVER=memory): el estado se pierde al parar el proceso.
type MemoryKV struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryKV construye el almacén vacío.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{blobs: map[string][]byte{}}
}

// Get devuelve una copia del blob, o (nil, nil) si la clave no existe.
func (s *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

// Set guarda una copia del blob.
func (s *MemoryKV) Set(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[key] = stored
	return nil
}

// Close no hace nada.
func (s *MemoryKV) Close() error { return nil }
