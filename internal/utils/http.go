package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-site-config/models"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// errEncodingResponse is the body sent when a response cannot be encoded.
const errEncodingResponse = "error encoding response"

// WriteJSON encodes data and writes it as an application/json response with
// statusCode.
//
// Nothing of data is sent when encoding fails (a channel, a NaN float).
// The client then gets 500 Internal Server Error with a JSON
// [models.ErrorResponse] body and the encoding error is returned.
//
// Example usage:
//
//	WriteJSON(w, site.Config.Values(), http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		fallback, _ := json.Marshal(models.ErrorResponse{Error: errEncodingResponse})

		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(fallback)

		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes text as a plain-text UTF-8 response with statusCode.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(statusCode)

	return io.WriteString(w, text)
}
