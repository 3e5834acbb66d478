// Package handler implements the relay handlers: validate the input,
// make one provider call, reshape the result for the caller.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Tedesqui/imagebook/internal/model"
)

// OCRClient is the text-detection provider seam.
type OCRClient interface {
	DetectText(ctx context.Context, image []byte) ([]model.TextBlock, error)
}

// ImageClient is the image-generation provider seam.
type ImageClient interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Handlers holds all HTTP handler dependencies. Both clients are safe
// for concurrent use; handlers keep no per-request state.
type Handlers struct {
	OCR    OCRClient
	Images ImageClient
}

// decodeJSON decodes the request body as JSON into v.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: message})
}
