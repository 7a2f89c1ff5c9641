// Package rediscache agrega un cache read-through de GetByID sobre cualquier pets.Repository.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pet-api/internal/domain/pets"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix  = "pet:"
	DefaultTTL = 5 * time.Minute
)

// cachedPet es lo que se guarda en redis. Deleted marca una lápida:
// el id se borró y GetByID responde ErrNotFound sin ir al store.
type cachedPet struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	PetName string `json:"pet_name"`
	Alive   bool   `json:"alive"`
	Deleted bool   `json:"deleted,omitempty"`
}

// PetsRepo decora un repo: GetByID lee de redis y cae al store en miss.
//
// Las escrituras mandan sobre las lecturas: un miss llena la key con SETNX,
// mientras que Update pisa la key con el valor nuevo y Delete deja una lápida.
// Así un GetByID que leyó del store antes de un Update/Delete no puede
// reponer el valor viejo. Si redis falla se sirve desde el store.
type PetsRepo struct {
	next   pets.Repository
	client redis.UniversalClient
	ttl    time.Duration
	log    *zap.Logger
}

func NewPetsRepo(next pets.Repository, client redis.UniversalClient, ttl time.Duration, log *zap.Logger) *PetsRepo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PetsRepo{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.next.List(ctx)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	raw, err := r.client.Get(ctx, key(id)).Bytes()
	switch {
	case err == nil:
		var c cachedPet
		if jerr := json.Unmarshal(raw, &c); jerr == nil {
			if c.Deleted {
				return pets.Pet{}, pets.ErrNotFound
			}
			return pets.Pet{ID: c.ID, Type: c.Type, PetName: c.PetName, Alive: c.Alive}, nil
		}
		r.log.Warn("rediscache: corrupt entry", zap.String("id", id))
	case !errors.Is(err, redis.Nil):
		r.log.Warn("rediscache: get failed", zap.String("id", id), zap.Error(err))
	}

	p, err := r.next.GetByID(ctx, id)
	if err != nil {
		return pets.Pet{}, err
	}

	r.fill(ctx, p)
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	created, err := r.next.Create(ctx, p)
	if err != nil {
		return pets.Pet{}, err
	}
	r.write(ctx, created.ID, toCached(created))
	return created, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.write(ctx, p.ID, toCached(p))
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (int64, error) {
	n, err := r.next.Delete(ctx, id)
	if err != nil {
		return n, err
	}
	r.write(ctx, id, cachedPet{ID: id, Deleted: true})
	return n, nil
}

// Ping verifica redis y, si el store lo soporta, también el store.
func (r *PetsRepo) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return err
	}
	if p, ok := r.next.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}

// fill guarda lo leído del store solo si la key sigue vacía.
func (r *PetsRepo) fill(ctx context.Context, p pets.Pet) {
	b, err := json.Marshal(toCached(p))
	if err != nil {
		return
	}
	if err := r.client.SetNX(ctx, key(p.ID), b, r.ttl).Err(); err != nil {
		r.log.Warn("rediscache: setnx failed", zap.String("id", p.ID), zap.Error(err))
	}
}

// write pisa la key tras una escritura confirmada en el store.
// Si el SET falla intenta borrar la key para no dejar un valor viejo.
func (r *PetsRepo) write(ctx context.Context, id string, c cachedPet) {
	b, err := json.Marshal(c)
	if err == nil {
		err = r.client.Set(ctx, key(id), b, r.ttl).Err()
	}
	if err == nil {
		return
	}

	r.log.Warn("rediscache: set failed", zap.String("id", id), zap.Error(err))
	if err := r.client.Del(ctx, key(id)).Err(); err != nil {
		r.log.Warn("rediscache: del failed", zap.String("id", id), zap.Error(err))
	}
}

func toCached(p pets.Pet) cachedPet {
	return cachedPet{ID: p.ID, Type: p.Type, PetName: p.PetName, Alive: p.Alive}
}

func key(id string) string {
	return keyPrefix + id
}
