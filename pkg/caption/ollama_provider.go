package caption

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type OllamaProvider struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

var _ Provider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	return &OllamaProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type ollamaGenerateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Stream bool     `json:"stream"`
}

type ollamaGenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

const captionPrompt = "Describe this image in one short sentence."

func (o *OllamaProvider) Caption(ctx context.Context, image string) (string, error) {
	payload, err := imagePayload(image)
	if err != nil {
		return "", err
	}

	reqPayload := ollamaGenerateRequest{
		Model:  o.ModelName,
		Prompt: captionPrompt,
		Images: []string{payload},
		Stream: false,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := o.BaseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(body))
	}

	var genResp ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	text := strings.TrimSpace(genResp.Response)
	if text == "" {
		return "", errors.New("empty caption response")
	}
	return text, nil
}

// imagePayload extracts the raw base64 body from a data URL. Plain base64
// strings pass through unchanged; opaque blob references cannot be captioned.
func imagePayload(image string) (string, error) {
	if strings.HasPrefix(image, "data:") {
		idx := strings.Index(image, ",")
		if idx < 0 {
			return "", errors.New("malformed data URL")
		}
		return image[idx+1:], nil
	}
	if strings.HasPrefix(image, "blob:") || strings.HasPrefix(image, "http") {
		return "", errors.New("image reference is not inline data")
	}
	return image, nil
}
