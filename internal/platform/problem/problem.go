// Package problem escribe respuestas de error con formato application/problem+json (RFC 9457).
package problem

import (
	"encoding/json"
	"net/http"
)

const ContentType = "application/problem+json"

const (
	TitleValidation = "One or more validation errors occurred."
	TitleInternal   = "An error occurred."
)

// Details es el cuerpo del problem. Errors solo se llena en errores de validación.
type Details struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func Write(w http.ResponseWriter, status int, title, detail string) {
	write(w, Details{
		Type:   typeFor(status),
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

func WriteValidation(w http.ResponseWriter, errs map[string][]string) {
	write(w, Details{
		Type:   typeFor(http.StatusBadRequest),
		Title:  TitleValidation,
		Status: http.StatusBadRequest,
		Errors: errs,
	})
}

func WriteInternal(w http.ResponseWriter) {
	Write(w, http.StatusInternalServerError, TitleInternal, "")
}

func write(w http.ResponseWriter, d Details) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(d.Status)
	_ = json.NewEncoder(w).Encode(d)
}

func typeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "https://tools.ietf.org/html/rfc9110#section-15.5.1"
	case http.StatusNotFound:
		return "https://tools.ietf.org/html/rfc9110#section-15.5.5"
	case http.StatusServiceUnavailable:
		return "https://tools.ietf.org/html/rfc9110#section-15.6.4"
	default:
		return "https://tools.ietf.org/html/rfc9110#section-15.6.1"
	}
}
