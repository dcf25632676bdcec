package utils

import (
	"net/http"

	"github.com/goccy/go-json"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteCachedJSON writes a public, cacheable JSON response.
func WriteCachedJSON(w http.ResponseWriter, maxAge string, data interface{}) {
	w.Header().Set("Cache-Control", "public, max-age="+maxAge)
	WriteJSON(w, http.StatusOK, data)
}
