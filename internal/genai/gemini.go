package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const (
	layoutTimeout = 30 * time.Second
	imageTimeout  = 60 * time.Second
)

// GeminiClient implements Provider over the Generative Language REST API.
type GeminiClient struct {
	apiKey     string
	textModel  string
	imageModel string
	baseURL    string
	http       *http.Client
}

// NewGeminiClient builds a client for the given models. The key is required
// at call time, not construction time, so the editor can start without one.
func NewGeminiClient(apiKey, textModel, imageModel string) *GeminiClient {
	return &GeminiClient{
		apiKey:     strings.TrimSpace(apiKey),
		textModel:  textModel,
		imageModel: imageModel,
		baseURL:    defaultBaseURL,
		http:       http.DefaultClient,
	}
}

// SetBaseURL redirects API calls, used by tests.
func (c *GeminiClient) SetBaseURL(u string) { c.baseURL = strings.TrimRight(u, "/") }

const layoutInstructions = `Create a mobile app layout for: %s. Return a JSON structure representing the visual components.
The components must be one of: 'header', 'text', 'image', 'button', 'hero', 'product'.
For components that require an image (image, hero, product), set the 'src' field to a string starting with "GENERATE_IMAGE:" followed by a descriptive prompt for the image (e.g., "GENERATE_IMAGE: A modern minimalist hero image of a coffee shop").
Provide realistic text content and professional styling.`

// GenerateLayout asks the text model for a structured layout. The response
// is constrained to JSON via a response schema, then validated and returned.
func (c *GeminiClient) GenerateLayout(ctx context.Context, prompt string) (*Layout, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	ctx, cancel := context.WithTimeout(ctx, layoutTimeout)
	defer cancel()

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(layoutInstructions, prompt)}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   layoutSchema,
		},
	}
	resp, err := c.generateContent(ctx, c.textModel, req)
	if err != nil {
		return nil, err
	}
	text := resp.firstText()
	if text == "" {
		return nil, ErrEmptyResponse
	}
	var layout Layout
	if err := json.Unmarshal([]byte(text), &layout); err != nil {
		return nil, fmt.Errorf("genai: parse layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// GenerateImage asks the image model for a square image and returns it as a
// data URI. No inline image in the response is an error.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}
	ctx, cancel := context.WithTimeout(ctx, imageTimeout)
	defer cancel()

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{AspectRatio: "1:1"},
		},
	}
	resp, err := c.generateContent(ctx, c.imageModel, req)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return fmt.Sprintf("data:%s;base64,%s", p.InlineData.MimeType, p.InlineData.Data), nil
			}
		}
	}
	return "", ErrEmptyResponse
}

// wire types, mirroring the documented generateContent format

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
	ImageConfig      *imageConfig    `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r *generateResponse) firstText() string {
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

// layoutSchema constrains the text model's output to the Layout wire shape.
var layoutSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "appName": {"type": "STRING"},
    "themeColor": {"type": "STRING"},
    "elements": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "id": {"type": "STRING"},
          "type": {"type": "STRING", "enum": ["header", "text", "image", "button", "hero", "product"]},
          "content": {
            "type": "OBJECT",
            "properties": {
              "title": {"type": "STRING"},
              "subtitle": {"type": "STRING"},
              "text": {"type": "STRING"},
              "src": {"type": "STRING"},
              "label": {"type": "STRING"},
              "price": {"type": "STRING"}
            }
          },
          "style": {
            "type": "OBJECT",
            "properties": {
              "backgroundColor": {"type": "STRING"},
              "textColor": {"type": "STRING"},
              "align": {"type": "STRING"},
              "padding": {"type": "STRING"},
              "borderRadius": {"type": "STRING"}
            }
          }
        },
        "required": ["id", "type", "content", "style"]
      }
    }
  },
  "required": ["appName", "elements", "themeColor"]
}`)

func (c *GeminiClient) generateContent(ctx context.Context, model string, req generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var apiErr map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("genai: http %d: %v", resp.StatusCode, apiErr)
	}
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
