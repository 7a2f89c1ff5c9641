package pets

import "time"

// Pet es el único registro persistido por el servicio.
// Id lo asigna el store al crear y no cambia después.
type Pet struct {
	ID      string
	Type    string
	PetName string
	Alive   bool

	// Solo para orden estable en List; no viajan en el JSON.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Input es el payload de create/update. Cualquier Id que venga en el body se ignora.
type Input struct {
	Type    string
	PetName string
	Alive   bool
}
