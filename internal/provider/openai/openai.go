// Package openai wraps the OpenAI image-generation API behind the small
// surface the image relay needs.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/Tedesqui/imagebook/internal/config"
)

// API is the slice of the OpenAI client used by this package.
type API interface {
	CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error)
}

// Client generates images from text prompts. Generation parameters are
// fixed: one image, 1024x1024, standard quality. Only the model name is
// configurable, as a deployment concern.
type Client struct {
	api   API
	model string
}

// New builds an image-generation client from the image settings. The API
// key is not verified here; a bad or missing key surfaces on the first
// GenerateImage call.
func New(cfg config.ImageSettings) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.APIBase != "" {
		clientConfig.BaseURL = cfg.APIBase
	}

	model := cfg.Model
	if model == "" {
		model = openai.CreateImageModelDallE3
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientConfig),
		model: model,
	}
}

// NewWithAPI builds a client around an existing API implementation.
func NewWithAPI(api API, model string) *Client {
	if model == "" {
		model = openai.CreateImageModelDallE3
	}
	return &Client{api: api, model: model}
}

// GenerateImage requests a single image for the prompt and returns the
// URL of the first (only) result.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:          c.model,
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		Quality:        openai.CreateImageQualityStandard,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("openai: create image: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", errors.New("openai: create image: empty result list")
	}
	return resp.Data[0].URL, nil
}
