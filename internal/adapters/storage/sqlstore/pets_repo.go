package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-api/internal/domain/pets"

	"github.com/google/uuid"
)

type PetsRepo struct {
	db      *sql.DB
	dialect Dialect
	newID   func() string
}

func NewPetsRepo(db *sql.DB, d Dialect) *PetsRepo {
	return &PetsRepo{
		db:      db,
		dialect: d,
		newID:   uuid.NewString,
	}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, pet_name, alive
		FROM pets
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Type, &p.PetName, &p.Alive); err != nil {
			return nil, fmt.Errorf("sqlstore: scan pet: %w", err)
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlstore: list pets: %w", err)
	}
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(`
		SELECT id, type, pet_name, alive
		FROM pets
		WHERE id = ?
	`), id)

	var p pets.Pet
	if err := row.Scan(&p.ID, &p.Type, &p.PetName, &p.Alive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("sqlstore: get pet %s: %w", id, err)
	}
	return p, nil
}

// Create genera el id (uuid v4) del lado del store.
func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	p.ID = r.newID()

	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		INSERT INTO pets (id, type, pet_name, alive, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`),
		p.ID,
		p.Type,
		p.PetName,
		p.Alive,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("sqlstore: insert pet: %w", err)
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		UPDATE pets
		SET
			type = ?,
			pet_name = ?,
			alive = ?,
			updated_at = ?
		WHERE id = ?
	`),
		p.Type,
		p.PetName,
		p.Alive,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlstore: update pet %s: %w", p.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlstore: update pet %s: %w", p.ID, err)
	}
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM pets WHERE id = ?`), id)
	if err != nil {
		return 0, fmt.Errorf("sqlstore: delete pet %s: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlstore: delete pet %s: %w", id, err)
	}
	if n == 0 {
		return 0, pets.ErrNotFound
	}
	return n, nil
}

// Ping lo usa /health.
func (r *PetsRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
