package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the OpenAI-compatible chat-completions image endpoint.
// A single request carries the source image URL plus the editing prompt and
// returns a URL for the generated image.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// EditRequest describes one image edit.
type EditRequest struct {
	Model       string
	ImageURL    string
	Prompt      string
	Orientation string // "landscape" or "portrait"
}

type chatMessageContent struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL *struct {
		URL string `json:"url"`
	} `json:"image_url,omitempty"`
}

type chatMessageIn struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type imageConfig struct {
	NumImages     int    `json:"num_images"`
	ImageSize     string `json:"image_size"`
	Quality       string `json:"quality"`
	InputFidelity string `json:"input_fidelity"`
}

type chatCompletionIn struct {
	Model       string          `json:"model"`
	Messages    []chatMessageIn `json:"messages"`
	Modalities  []string        `json:"modalities"`
	ImageConfig imageConfig     `json:"image_config"`
	MaxTokens   int             `json:"max_tokens"`
}

type chatCompletionOut struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
			Images  []struct {
				URL      string `json:"url"`
				ImageURL struct {
					URL string `json:"url"`
				} `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ImageSize maps photo orientation to the 3:2 sizes the models accept.
func ImageSize(orientation string) string {
	if orientation == "portrait" {
		return "1024x1536"
	}
	return "1536x1024"
}

// Edit submits the image edit and returns the URL of the generated image.
// The context bounds the whole call; callers pass a deadline matching the
// configured enhancement timeout.
func (c *Client) Edit(ctx context.Context, in EditRequest) (string, error) {
	content, err := json.Marshal([]map[string]interface{}{
		{"type": "image_url", "image_url": map[string]string{"url": in.ImageURL}},
		{"type": "text", "text": in.Prompt},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal message content: %w", err)
	}

	reqBody := chatCompletionIn{
		Model:      in.Model,
		Messages:   []chatMessageIn{{Role: "user", Content: content}},
		Modalities: []string{"image"},
		ImageConfig: imageConfig{
			NumImages:     1,
			ImageSize:     ImageSize(in.Orientation),
			Quality:       "high",
			InputFidelity: "high",
		},
		MaxTokens: 1000,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("enhancement API failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result chatCompletionOut
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	imageURL := extractImageURL(&result)
	if imageURL == "" {
		snippet := string(body)
		if len(snippet) > 500 {
			snippet = snippet[:500]
		}
		return "", fmt.Errorf("no enhanced image in API response: %s", snippet)
	}

	return imageURL, nil
}

// extractImageURL pulls the generated image URL out of the completion.
// gpt-image-1.5 responds with a content array; other models fall back to
// the message.images property.
func extractImageURL(result *chatCompletionOut) string {
	if len(result.Choices) == 0 {
		return ""
	}
	msg := result.Choices[0].Message

	var contentItems []chatMessageContent
	if err := json.Unmarshal(msg.Content, &contentItems); err == nil {
		for _, item := range contentItems {
			if item.Type == "image_url" && item.ImageURL != nil && item.ImageURL.URL != "" {
				return item.ImageURL.URL
			}
		}
	}

	for _, img := range msg.Images {
		if img.ImageURL.URL != "" {
			return img.ImageURL.URL
		}
		if img.URL != "" {
			return img.URL
		}
	}
	return ""
}

// Download fetches the generated image bytes from the URL the API returned.
func (c *Client) Download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download enhanced image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// RetryWithBackoff executes a function with exponential backoff retry logic
func RetryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
