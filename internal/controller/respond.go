// internal/controller/respond.go
package controller

import (
    "encoding/json"
    "errors"
    "net/http"

    appErrors "github.com/unclebandit/crmdesk-backend/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(v)
}

// writeError maps typed service errors onto status codes: missing entities
// answer 404, bad input 400, anything else 500.
func writeError(w http.ResponseWriter, err error) {
    var notFound *appErrors.ErrNotFound
    if errors.As(err, &notFound) {
        http.Error(w, err.Error(), http.StatusNotFound)
        return
    }
    var validation *appErrors.ErrValidation
    if errors.As(err, &validation) {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }
    http.Error(w, err.Error(), http.StatusInternalServerError)
}
