package vlm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsun/ski-results/internal/common"
)

func TestClassifyHTTPError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		err       error
		transient bool
	}{
		{"timeout status", http.StatusRequestTimeout, errors.New("timeout"), true},
		{"rate limited", http.StatusTooManyRequests, errors.New("429"), true},
		{"server error", http.StatusInternalServerError, errors.New("500"), true},
		{"bad gateway", http.StatusBadGateway, errors.New("502"), true},
		{"payload too large", http.StatusRequestEntityTooLarge, errors.New("413"), true},
		{"bad request", http.StatusBadRequest, errors.New("400"), false},
		{"unauthorized", http.StatusUnauthorized, errors.New("401"), false},
		{"forbidden", http.StatusForbidden, errors.New("403"), false},
		{"transport failure", 0, errors.New("connection reset"), true},
		{"caller cancelled", 0, context.Canceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyHTTPError(tt.status, tt.err)
			var mie *common.ModelInvocationError
			require.True(t, errors.As(err, &mie))
			assert.Equal(t, tt.transient, mie.Transient)
			assert.Equal(t, tt.status, mie.Status)
		})
	}
}

func completionsHandler(t *testing.T, reply string, capture *map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": reply}},
			},
		})
	}
}

func TestClientInvoke(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(completionsHandler(t, `{"results": []}`, &body))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "sk-test", Model: "test-model"}, nil)

	out, err := c.Invoke(context.Background(), []byte{0x01, 0x02}, "image/png", "parse this sheet")
	require.NoError(t, err)
	assert.Equal(t, `{"results": []}`, out)

	assert.Equal(t, "test-model", body["model"])
	messages := body["messages"].([]any)
	require.Len(t, messages, 2)
	user := messages[1].(map[string]any)
	content := user["content"].([]any)
	require.Len(t, content, 2)

	imagePart := content[0].(map[string]any)
	assert.Equal(t, "image_url", imagePart["type"])
	url := imagePart["image_url"].(map[string]any)["url"].(string)
	assert.Contains(t, url, "data:image/png;base64,")

	textPart := content[1].(map[string]any)
	assert.Equal(t, "parse this sheet", textPart["text"])
}

func TestClientInvokeText(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(completionsHandler(t, "ok", &body))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "sk-test"}, nil)

	out, err := c.InvokeText(context.Background(), "parse this text")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	user := body["messages"].([]any)[1].(map[string]any)
	content := user["content"].([]any)
	require.Len(t, content, 1, "text-only invocation carries no image part")
}

func TestClientInvokeErrorStatuses(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		transient bool
	}{
		{"rate limited is transient", http.StatusTooManyRequests, true},
		{"auth failure is permanent", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error": "nope"}`))
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL, APIKey: "sk-test"}, nil)
			_, err := c.InvokeText(context.Background(), "hello")

			var mie *common.ModelInvocationError
			require.True(t, errors.As(err, &mie))
			assert.Equal(t, tt.transient, mie.Transient)
			assert.Equal(t, tt.status, mie.Status)
		})
	}
}

func TestClientTruncatedResponseIsTransient(t *testing.T) {
	// Advertise a longer body than is written; the client sees an
	// unexpected EOF while reading.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "1024")
		_, _ = w.Write([]byte(`{"choices`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "sk-test"}, nil)
	_, err := c.InvokeText(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read response body")
	assert.True(t, common.IsTransient(err), "truncated reads retry like transport failures")
}

func TestClientEmptyChoicesIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "sk-test"}, nil)
	_, err := c.InvokeText(context.Background(), "hello")

	require.Error(t, err)
	assert.False(t, common.IsTransient(err))
}
