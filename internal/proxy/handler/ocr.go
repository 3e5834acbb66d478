package handler

import (
	"encoding/base64"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/Tedesqui/imagebook/internal/model"
)

// dataURIPrefix matches the marker a browser canvas export prepends,
// e.g. "data:image/png;base64,".
var dataURIPrefix = regexp.MustCompile(`^data:[^;,]+;base64,`)

// OCRProcess handles POST /api/ocr-aws. Decodes the base64 image,
// forwards the bytes to the text-detection provider and returns the
// LINE blocks joined with single spaces.
func (h *Handlers) OCRProcess(w http.ResponseWriter, r *http.Request) {
	var req model.OCRRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.ImageBase64 == "" {
		writeError(w, http.StatusBadRequest, "imageBase64 is required")
		return
	}

	image, err := base64.StdEncoding.DecodeString(stripDataURIPrefix(req.ImageBase64))
	if err != nil {
		log.Printf("ocr: base64 decode failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to process image")
		return
	}

	blocks, err := h.OCR.DetectText(r.Context(), image)
	if err != nil {
		log.Printf("ocr: text detection failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to process image")
		return
	}

	writeJSON(w, http.StatusOK, model.OCRResponse{Text: joinLineBlocks(blocks)})
}

// stripDataURIPrefix removes a leading data-URI marker when present.
// Decoding the stripped string must equal decoding the portion after
// the marker; anything else passes through untouched.
func stripDataURIPrefix(s string) string {
	return dataURIPrefix.ReplaceAllString(s, "")
}

// joinLineBlocks flattens the provider's block list to a single string:
// LINE blocks only, provider order preserved, single ASCII space
// between fragments. Zero blocks yields "".
func joinLineBlocks(blocks []model.TextBlock) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Type == model.BlockTypeLine {
			lines = append(lines, b.Text)
		}
	}
	return strings.Join(lines, " ")
}
