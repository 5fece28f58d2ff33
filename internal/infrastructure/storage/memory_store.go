package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/invenmovil/inventario-api/internal/application/equipment"
)

var _ equipment.BlobStore = (*MemoryStore)(nil)

// MemoryStore es un BlobStore en memoria para tests y desarrollo local sin S3.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// FailPut fuerza error en Put cuando está seteado (para probar fallos de subida).
	FailPut error
}

// NewMemoryStore crea un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Put guarda el contenido en el mapa interno.
func (s *MemoryStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if s.FailPut != nil {
		return s.FailPut
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

// PublicURL devuelve una URL ficticia estable para la key.
func (s *MemoryStore) PublicURL(key string) string {
	return fmt.Sprintf("memory://bucket/%s", key)
}

// Get devuelve el contenido guardado (helper de tests).
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

// Len devuelve la cantidad de objetos guardados.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
