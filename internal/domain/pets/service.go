package pets

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Pet{}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create valida antes de tocar el store; el Id lo genera el repositorio.
func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	if verrs := Validate(in); verrs != nil {
		return Pet{}, verrs
	}

	now := s.now()
	return s.repo.Create(ctx, Pet{
		Type:      in.Type,
		PetName:   in.PetName,
		Alive:     in.Alive,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Update reemplaza los tres campos editables. Primero valida, después busca:
// un payload inválido sobre un id inexistente devuelve ValidationErrors.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	if verrs := Validate(in); verrs != nil {
		return verrs
	}
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}

	return s.repo.Update(ctx, Pet{
		ID:        id,
		Type:      in.Type,
		PetName:   in.PetName,
		Alive:     in.Alive,
		UpdatedAt: s.now(),
	})
}

func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	if strings.TrimSpace(id) == "" {
		return 0, ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
