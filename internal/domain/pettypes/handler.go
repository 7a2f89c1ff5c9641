package pettypes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, s *Sampler) {
	r.Get("/get-types", getTypesHandler(s))
}

// getTypesHandler godoc
// @Summary      Estadísticas aleatorias de tipos de mascota
// @Tags         pet-types
// @Produce      json
// @Success      200  {array}  pettypes.PetType
// @Router       /get-types [get]
func getTypesHandler(s *Sampler) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, s.Sample())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
