// Package textract wraps the AWS Textract document-text-detection API
// behind the small surface the OCR relay needs.
package textract

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/Tedesqui/imagebook/internal/config"
	"github.com/Tedesqui/imagebook/internal/model"
)

// API is the slice of the Textract client used by this package.
// Kept to one method so tests can substitute a double.
type API interface {
	DetectDocumentText(ctx context.Context, params *textract.DetectDocumentTextInput, optFns ...func(*textract.Options)) (*textract.DetectDocumentTextOutput, error)
}

// Client performs synchronous text detection on raw image bytes.
type Client struct {
	api API
}

// New builds a Textract client from the OCR settings. When an explicit
// key pair is configured it is used as a static credential provider;
// otherwise the SDK default chain applies. Credentials are not verified
// here — a bad or missing pair surfaces on the first DetectText call.
func New(ctx context.Context, cfg config.OCRSettings) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("textract: aws config: %w", err)
	}

	return &Client{api: textract.NewFromConfig(awsCfg)}, nil
}

// NewWithAPI builds a client around an existing API implementation.
func NewWithAPI(api API) *Client {
	return &Client{api: api}
}

// DetectText sends the image bytes to Textract and returns every block
// the provider detected, in provider order. Filtering to LINE blocks is
// the caller's concern.
func (c *Client) DetectText(ctx context.Context, image []byte) ([]model.TextBlock, error) {
	out, err := c.api.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: image},
	})
	if err != nil {
		return nil, fmt.Errorf("textract: detect document text: %w", err)
	}

	blocks := make([]model.TextBlock, 0, len(out.Blocks))
	for _, b := range out.Blocks {
		blocks = append(blocks, model.TextBlock{
			Type: string(b.BlockType),
			Text: aws.ToString(b.Text),
		})
	}
	return blocks, nil
}
