package caption

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOllamaCaptionStripsDataURLPrefix(t *testing.T) {
	var received ollamaGenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(ollamaGenerateResponse{
			Model:    received.Model,
			Response: "  A dog running on a beach.  ",
			Done:     true,
		})
	}))
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "llava")

	text, err := provider.Caption(context.Background(), "data:image/png;base64,aGVsbG8=")
	assert.NoError(t, err)
	assert.Equal(t, "A dog running on a beach.", text)
	assert.Equal(t, "llava", received.Model)
	assert.Equal(t, []string{"aGVsbG8="}, received.Images)
	assert.False(t, received.Stream)
}

func TestOllamaCaptionRejectsOpaqueReferences(t *testing.T) {
	provider := NewOllamaProvider("http://localhost:1", "llava")

	// Transient blob references cannot be resolved server-side.
	_, err := provider.Caption(context.Background(), "blob:http://localhost/abc-123")
	assert.Error(t, err)

	_, err = provider.Caption(context.Background(), "https://example.com/image.png")
	assert.Error(t, err)
}

func TestOllamaCaptionErrorsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "llava")

	_, err := provider.Caption(context.Background(), "aGVsbG8=")
	assert.Error(t, err)
}

func TestOllamaCaptionErrorsOnEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "   ", Done: true})
	}))
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "llava")

	_, err := provider.Caption(context.Background(), "aGVsbG8=")
	assert.Error(t, err)
}
