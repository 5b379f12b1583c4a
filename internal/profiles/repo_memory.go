package profiles

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepo is an in-memory implementation of ProfilesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Profile // id -> profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Profile),
	}
}

// Create stores a profile, rejecting duplicate ids.
func (r *MemoryRepo) Create(ctx context.Context, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[p.ID]; exists {
		return fmt.Errorf("profile %s already exists", p.ID)
	}
	r.data[p.ID] = p
	return nil
}

// GetByID returns the profile with the given id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}
