package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// JSONContentType is the content type of every API response body.
const JSONContentType = "application/json; charset=utf-8"

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Msg: "user logged out!"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", JSONContentType)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
