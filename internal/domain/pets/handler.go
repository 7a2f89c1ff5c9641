package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-api/internal/platform/problem"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Post("/", createPetHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

type petRequest struct {
	Type    string `json:"Type"`
	PetName string `json:"PetName"`
	Alive   bool   `json:"Alive"`
}

type petResponse struct {
	ID      string `json:"Id"`
	Type    string `json:"Type"`
	PetName string `json:"PetName"`
	Alive   bool   `json:"Alive"`
}

type deleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// listPetsHandler godoc
// @Summary      Lista todas las mascotas
// @Tags         pets
// @Produce      json
// @Success      200  {array}  pets.petResponse
// @Router       /pets [get]
func listPetsHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary      Obtiene una mascota por id
// @Tags         pets
// @Produce      json
// @Param        id   path      string  true  "Pet id"
// @Success      200  {object}  pets.petResponse
// @Failure      404
// @Router       /pets/{id} [get]
func getPetHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary      Crea una mascota
// @Tags         pets
// @Accept       json
// @Produce      json
// @Param        pet  body      pets.petRequest  true  "Pet"
// @Success      201  {object}  pets.petResponse
// @Failure      400  {object}  problem.Details
// @Router       /pets [post]
func createPetHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodePetRequest(w, r)
		if !ok {
			return
		}

		p, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		w.Header().Set("Location", "/pets/"+p.ID)
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary      Reemplaza Type, PetName y Alive de una mascota
// @Tags         pets
// @Accept       json
// @Param        id   path      string           true  "Pet id"
// @Param        pet  body      pets.petRequest  true  "Pet"
// @Success      204
// @Failure      400  {object}  problem.Details
// @Failure      404
// @Router       /pets/{id} [put]
func updatePetHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodePetRequest(w, r)
		if !ok {
			return
		}

		if err := svc.Update(r.Context(), chi.URLParam(r, "petID"), req.toInput()); err != nil {
			writeError(w, r, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// deletePetHandler godoc
// @Summary      Borra una mascota
// @Tags         pets
// @Produce      json
// @Param        id   path      string  true  "Pet id"
// @Success      200  {object}  pets.deleteResponse
// @Failure      404
// @Router       /pets/{id} [delete]
func deletePetHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.Delete(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, deleteResponse{Deleted: n})
	}
}

func decodePetRequest(w http.ResponseWriter, r *http.Request) (petRequest, bool) {
	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.Write(w, http.StatusBadRequest, "invalid json", err.Error())
		return petRequest{}, false
	}
	return req, true
}

func (req petRequest) toInput() Input {
	return Input{
		Type:    req.Type,
		PetName: req.PetName,
		Alive:   req.Alive,
	}
}

// writeError traduce errores del service a HTTP:
// validación => 400 problem, not found => 404 sin body, resto => 500 problem.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		problem.WriteValidation(w, verrs)
	case errors.Is(err, ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		log.Error("pets: store error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		problem.WriteInternal(w)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:      p.ID,
		Type:    p.Type,
		PetName: p.PetName,
		Alive:   p.Alive,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
