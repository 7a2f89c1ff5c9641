package pets

import (
	"sort"
	"strings"
)

// ValidationErrors agrupa mensajes por campo (Type, PetName).
type ValidationErrors map[string][]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid input: " + strings.Join(fields, ", ")
}

func (v ValidationErrors) add(field, msg string) {
	v[field] = append(v[field], msg)
}

// Validate revisa los campos requeridos. Devuelve nil si el input es válido.
// Un string solo con espacios cuenta como vacío.
func Validate(in Input) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(in.Type) == "" {
		errs.add("Type", "The Type field is required.")
	}
	if strings.TrimSpace(in.PetName) == "" {
		errs.add("PetName", "The PetName field is required.")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
