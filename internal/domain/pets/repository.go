package pets

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks pet-api/internal/domain/pets Repository

var (
	ErrNotFound = errors.New("pet not found")
)

// Repository es el contrato de persistencia de Pet.
// Los adapters (memory, sqlstore, cache) devuelven ErrNotFound cuando el id no existe.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	// Create asigna el Id y devuelve el registro tal como quedó guardado.
	Create(ctx context.Context, p Pet) (Pet, error)
	// Update reemplaza Type, PetName, Alive y UpdatedAt. Id y CreatedAt no cambian.
	Update(ctx context.Context, p Pet) error
	// Delete devuelve la cantidad de filas borradas.
	Delete(ctx context.Context, id string) (int64, error)
}
