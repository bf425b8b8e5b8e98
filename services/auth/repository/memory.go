package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/piresc/groomer/internal/pkg/models"
)

// MemorySessionRepo keeps the session in process memory. The profile is
// held serialized so a load always returns a fresh copy.
type MemorySessionRepo struct {
	mu     sync.RWMutex
	values map[string][]byte
	keys   Keys
}

// NewMemorySessionRepo creates an empty in-memory session repository
func NewMemorySessionRepo(prefix string) *MemorySessionRepo {
	return &MemorySessionRepo{
		values: make(map[string][]byte),
		keys:   KeysFor(prefix),
	}
}

// SaveSession stores the token and the serialized profile
func (r *MemorySessionRepo) SaveSession(ctx context.Context, session *models.AuthSession) error {
	data, err := json.Marshal(session.Groomer)
	if err != nil {
		return fmt.Errorf("failed to marshal groomer data: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[r.keys.Token] = []byte(session.Token)
	r.values[r.keys.GroomerData] = data
	return nil
}

// LoadSession reads the stored session
func (r *MemorySessionRepo) LoadSession(ctx context.Context) (*models.AuthSession, error) {
	r.mu.RLock()
	token, hasToken := r.values[r.keys.Token]
	data, hasData := r.values[r.keys.GroomerData]
	r.mu.RUnlock()

	if !hasToken || !hasData {
		return nil, models.ErrSessionNotFound
	}
	return decodeSession(string(token), data)
}

// ClearSession removes every session key
func (r *MemorySessionRepo) ClearSession(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, r.keys.Token)
	delete(r.values, r.keys.GroomerData)
	delete(r.values, r.keys.RefreshToken)
	return nil
}

// SetRaw stores a raw value under key, as an external writer would
func (r *MemorySessionRepo) SetRaw(key string, value []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// Keys returns the keys this repository writes
func (r *MemorySessionRepo) Keys() Keys {
	return r.keys
}
