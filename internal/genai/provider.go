// Package genai is the boundary to the generative text/image service. The
// Provider interface is what the builder depends on; the Gemini client is
// one implementation, and tests substitute fakes.
package genai

import (
	"context"
	"errors"
	"strings"
)

// PendingImagePrefix marks an image reference as awaiting generation. The
// remainder of the string is the descriptive sub-prompt to generate from.
const PendingImagePrefix = "GENERATE_IMAGE:"

// IsPendingImage reports whether ref carries the pending-image sentinel.
func IsPendingImage(ref string) bool {
	return strings.HasPrefix(ref, PendingImagePrefix)
}

// ImagePrompt extracts the sub-prompt from a pending image reference.
func ImagePrompt(ref string) string {
	return strings.TrimSpace(strings.TrimPrefix(ref, PendingImagePrefix))
}

var (
	// ErrNoAPIKey indicates the provider was constructed without a credential.
	ErrNoAPIKey = errors.New("genai: api key not configured")
	// ErrEmptyResponse indicates the service returned no usable content.
	ErrEmptyResponse = errors.New("genai: empty response")
)

// Provider is the generation capability injected into the builder.
type Provider interface {
	// GenerateLayout asks for a full app layout from a free-text prompt.
	// Elements needing imagery carry a pending-image sentinel in ImageRef.
	GenerateLayout(ctx context.Context, prompt string) (*Layout, error)
	// GenerateImage produces a single embeddable image reference (a data
	// URI) for the given descriptive prompt.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
