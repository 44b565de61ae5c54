package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// ImagePayload is one generated image: raw bytes plus media type.
type ImagePayload struct {
	Data      []byte
	MediaType string
}

// ImageProvider is the abstraction for image-generation calls. A call may
// return zero payloads; callers treat that as a generation failure rather
// than an error.
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string) ([]ImagePayload, error)
}

// GeminiImageProvider implements ImageProvider using the Imagen models
// behind the Gemini API.
type GeminiImageProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiImageProvider creates an image provider for the configured
// Imagen model.
func NewGeminiImageProvider(ctx context.Context, cfg ImageConfig) (*GeminiImageProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required for image generation")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiImageProvider{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (p *GeminiImageProvider) GenerateImage(ctx context.Context, prompt string) ([]ImagePayload, error) {
	result, err := p.client.Models.GenerateImages(ctx, p.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		return nil, mapGeminiError(err)
	}

	var payloads []ImagePayload
	for _, img := range result.GeneratedImages {
		if img.Image == nil || len(img.Image.ImageBytes) == 0 {
			continue
		}
		mediaType := img.Image.MIMEType
		if mediaType == "" {
			mediaType = "image/png"
		}
		payloads = append(payloads, ImagePayload{
			Data:      img.Image.ImageBytes,
			MediaType: mediaType,
		})
	}

	return payloads, nil
}
