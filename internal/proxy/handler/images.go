package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/Tedesqui/imagebook/internal/model"
)

// ImageGeneration handles POST /api/generate-image-openai. Forwards the
// prompt to the image-generation provider and returns the first
// result's URL. Generation parameters are fixed server-side; extra
// fields in the request body are ignored.
func (h *Handlers) ImageGeneration(w http.ResponseWriter, r *http.Request) {
	var req model.ImageGenerationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	url, err := h.Images.GenerateImage(r.Context(), req.Prompt)
	if err != nil {
		// Prompt logged for diagnosis; never echoed in the error body.
		log.Printf("images: generation failed for prompt %q: %v", req.Prompt, err)
		writeError(w, http.StatusInternalServerError, "failed to generate image")
		return
	}

	writeJSON(w, http.StatusOK, model.ImageGenerationResponse{ImageURL: url})
}
