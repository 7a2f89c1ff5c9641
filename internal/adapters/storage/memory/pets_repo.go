package memory

import (
	"context"
	"sort"
	"sync"

	"pet-api/internal/domain/pets"

	"github.com/google/uuid"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

// NewPetRepo crea un store en memoria. Sirve para dev y tests; no persiste nada.
func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Mismo orden que el store SQL: created_at, id
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	r.byID[p.ID] = p
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[p.ID]
	if !exists {
		return pets.ErrNotFound
	}

	current.Type = p.Type
	current.PetName = p.PetName
	current.Alive = p.Alive
	current.UpdatedAt = p.UpdatedAt
	r.byID[p.ID] = current
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return 0, pets.ErrNotFound
	}
	delete(r.byID, id)
	return 1, nil
}
