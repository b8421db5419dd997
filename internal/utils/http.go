package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/doc-vault/models"
)

// WriteJSON serializes data and writes it with statusCode and a JSON
// content type. On a marshaling failure it answers 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes {"message": msg} with statusCode.
func WriteMessage(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = WriteJSON(w, models.MessageResponse{Message: msg}, statusCode)
}
