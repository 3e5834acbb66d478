package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tedesqui/imagebook/internal/model"
)

type fakeOCR struct {
	blocks   []model.TextBlock
	err      error
	called   bool
	gotImage []byte
}

func (f *fakeOCR) DetectText(ctx context.Context, image []byte) ([]model.TextBlock, error) {
	f.called = true
	f.gotImage = image
	return f.blocks, f.err
}

func postOCR(h *Handlers, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/ocr-aws", strings.NewReader(body))
	h.OCRProcess(w, r)
	return w
}

func TestOCRProcess_MissingImage(t *testing.T) {
	ocr := &fakeOCR{}
	h := &Handlers{OCR: ocr}

	for _, body := range []string{`{}`, `{"imageBase64": ""}`} {
		w := postOCR(h, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
	assert.False(t, ocr.called, "provider must not be invoked")
}

func TestOCRProcess_MalformedJSON(t *testing.T) {
	ocr := &fakeOCR{}
	h := &Handlers{OCR: ocr}

	w := postOCR(h, `{"imageBase64": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, ocr.called)
}

func TestOCRProcess_StripsDataURIPrefix(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	encoded := base64.StdEncoding.EncodeToString(raw)

	ocr := &fakeOCR{}
	h := &Handlers{OCR: ocr}

	w := postOCR(h, `{"imageBase64": "data:image/png;base64,`+encoded+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, raw, ocr.gotImage)
}

func TestOCRProcess_BareBase64(t *testing.T) {
	raw := []byte("plain image bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	ocr := &fakeOCR{}
	h := &Handlers{OCR: ocr}

	w := postOCR(h, `{"imageBase64": "`+encoded+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, raw, ocr.gotImage)
}

func TestOCRProcess_FiltersToLineBlocks(t *testing.T) {
	ocr := &fakeOCR{blocks: []model.TextBlock{
		{Type: "LINE", Text: "Hello"},
		{Type: "WORD", Text: "x"},
		{Type: "LINE", Text: "World"},
	}}
	h := &Handlers{OCR: ocr}

	w := postOCR(h, `{"imageBase64": "`+base64.StdEncoding.EncodeToString([]byte("img"))+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.OCRResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hello World", resp.Text)
}

func TestOCRProcess_NoBlocks(t *testing.T) {
	ocr := &fakeOCR{}
	h := &Handlers{OCR: ocr}

	w := postOCR(h, `{"imageBase64": "`+base64.StdEncoding.EncodeToString([]byte("img"))+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.OCRResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.Text)
}

func TestOCRProcess_UndecodableBase64(t *testing.T) {
	ocr := &fakeOCR{}
	h := &Handlers{OCR: ocr}

	w := postOCR(h, `{"imageBase64": "not-valid-base64!!!"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, ocr.called)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed to process image", resp.Error)
}

func TestOCRProcess_ProviderError(t *testing.T) {
	ocr := &fakeOCR{err: errors.New("AccessDeniedException: not authorized")}
	h := &Handlers{OCR: ocr}

	w := postOCR(h, `{"imageBase64": "`+base64.StdEncoding.EncodeToString([]byte("img"))+`"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Provider detail stays in the server log, never in the body.
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed to process image", resp.Error)
	assert.NotContains(t, w.Body.String(), "AccessDenied")
}

func TestStripDataURIPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"data:image/png;base64,AAAA", "AAAA"},
		{"data:image/jpeg;base64,QUJD", "QUJD"},
		{"data:application/pdf;base64,QUJD", "QUJD"},
		{"AAAA", "AAAA"},
		{"data:image/png;base64,", ""},
		// Marker only matches at the start.
		{"xdata:image/png;base64,AAAA", "xdata:image/png;base64,AAAA"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, stripDataURIPrefix(c.in), "input %q", c.in)
	}
}

func TestStripDataURIPrefix_DecodeEquivalence(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("equivalence check"))
	prefixed := "data:image/webp;base64," + payload

	a, err := base64.StdEncoding.DecodeString(stripDataURIPrefix(prefixed))
	require.NoError(t, err)
	b, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestJoinLineBlocks(t *testing.T) {
	assert.Equal(t, "", joinLineBlocks(nil))
	assert.Equal(t, "", joinLineBlocks([]model.TextBlock{{Type: "WORD", Text: "x"}}))
	assert.Equal(t, "a b c", joinLineBlocks([]model.TextBlock{
		{Type: "LINE", Text: "a"},
		{Type: "LINE", Text: "b"},
		{Type: "PAGE"},
		{Type: "LINE", Text: "c"},
	}))
}
