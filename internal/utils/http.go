package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as a JSON body with statusCode and returns the number
// of body bytes written.
//
// 204 No Content writes the status line only and ignores data. When data
// cannot be marshaled the client gets a plain 500 and the marshal error is
// returned to the caller.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return 0, nil
	}

	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error marshaling response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
