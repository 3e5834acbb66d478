// Package model defines the wire types exchanged with callers and the
// block shapes returned by the OCR provider.
package model

// OCRRequest is the body of POST /api/ocr-aws.
type OCRRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// OCRResponse carries the recognized text, LINE blocks joined with
// single spaces in provider order.
type OCRResponse struct {
	Text string `json:"text"`
}

// ImageGenerationRequest is the body of POST /api/generate-image-openai.
// Generation parameters (count, size, quality) are fixed server-side;
// extra fields in the body are ignored.
type ImageGenerationRequest struct {
	Prompt string `json:"prompt"`
}

// ImageGenerationResponse carries the URL of the generated image.
type ImageGenerationResponse struct {
	ImageURL string `json:"imageURL"`
}

// BlockTypeLine marks a line-level block in the OCR provider's output.
// Blocks of any other type (WORD, PAGE, ...) are excluded from the
// flattened text.
const BlockTypeLine = "LINE"

// TextBlock is one structured unit from the text-detection provider.
type TextBlock struct {
	Type string
	Text string
}
