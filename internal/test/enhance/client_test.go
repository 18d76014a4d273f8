package enhance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"listing-lift-backend/internal/enhance"
)

func TestImageSize(t *testing.T) {
	assert.Equal(t, "1536x1024", enhance.ImageSize("landscape"))
	assert.Equal(t, "1024x1536", enhance.ImageSize("portrait"))
	assert.Equal(t, "1536x1024", enhance.ImageSize(""))
	assert.Equal(t, "1536x1024", enhance.ImageSize("sideways"))
}

func TestClient_Edit_ContentArray(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": [
				{"type": "text", "text": "Here you go"},
				{"type": "image_url", "image_url": {"url": "https://cdn.test/enhanced.jpg"}}
			]}}]
		}`))
	}))
	defer server.Close()

	client := enhance.NewClient(server.URL, "test-key", 10*time.Second)
	url, err := client.Edit(context.Background(), enhance.EditRequest{
		Model:       "gpt-image-1.5",
		ImageURL:    "https://cdn.test/original.jpg",
		Prompt:      "Brighten the kitchen",
		Orientation: "landscape",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/enhanced.jpg", url)

	assert.Equal(t, "gpt-image-1.5", gotBody["model"])
	assert.Equal(t, []interface{}{"image"}, gotBody["modalities"])
	imageConfig := gotBody["image_config"].(map[string]interface{})
	assert.Equal(t, "1536x1024", imageConfig["image_size"])
	assert.Equal(t, "high", imageConfig["quality"])
	assert.Equal(t, "high", imageConfig["input_fidelity"])
	assert.Equal(t, float64(1), imageConfig["num_images"])
}

func TestClient_Edit_ImagesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {
				"content": "Done",
				"images": [{"image_url": {"url": "https://cdn.test/flux-result.jpg"}}]
			}}]
		}`))
	}))
	defer server.Close()

	client := enhance.NewClient(server.URL, "test-key", 10*time.Second)
	url, err := client.Edit(context.Background(), enhance.EditRequest{
		Model:       "flux-kontext",
		ImageURL:    "https://cdn.test/original.jpg",
		Prompt:      "Enhance",
		Orientation: "portrait",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/flux-result.jpg", url)
}

func TestClient_Edit_NoImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "sorry, no image"}}]}`))
	}))
	defer server.Close()

	client := enhance.NewClient(server.URL, "test-key", 10*time.Second)
	_, err := client.Edit(context.Background(), enhance.EditRequest{
		Model:    "gpt-image-1.5",
		ImageURL: "https://cdn.test/original.jpg",
		Prompt:   "Enhance",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no enhanced image")
}

func TestClient_Edit_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream unavailable`))
	}))
	defer server.Close()

	client := enhance.NewClient(server.URL, "test-key", 10*time.Second)
	_, err := client.Edit(context.Background(), enhance.EditRequest{
		Model:    "gpt-image-1.5",
		ImageURL: "https://cdn.test/original.jpg",
		Prompt:   "Enhance",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	client := enhance.NewClient("https://unused.test", "test-key", 10*time.Second)
	data, err := client.Download(context.Background(), server.URL+"/enhanced.jpg")

	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestRetryWithBackoff(t *testing.T) {
	callCount := 0
	err := enhance.RetryWithBackoff(func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestRetryWithBackoff_Exhausted(t *testing.T) {
	err := enhance.RetryWithBackoff(func() error {
		return assert.AnError
	}, 2)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 2 retries")
}
