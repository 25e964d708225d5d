package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cordwain/internal/domain/ticket"
	"cordwain/internal/shared/config"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, func() {
		client.Close()
		mr.Close()
	}
}

func TestClient_Translate(t *testing.T) {
	t.Run("sends language pair and returns translation", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")

			var req translateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "de", req.SourceLang)
			assert.Equal(t, "en", req.TargetLang)
			assert.Equal(t, "Bitte Sohle prüfen", req.Text)

			json.NewEncoder(w).Encode(translateResponse{Translation: "Please check the sole"})
		}))
		defer server.Close()

		client := NewClient(&config.TranslationConfig{
			Endpoint:       server.URL,
			APIKey:         "secret",
			TimeoutSeconds: 5,
		})

		result, err := client.Translate(context.Background(), "Bitte Sohle prüfen", ticket.LangGerman, ticket.LangEnglish)
		assert.NoError(t, err)
		assert.Equal(t, "Please check the sole", result)
		assert.Equal(t, "Bearer secret", gotAuth)
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(&config.TranslationConfig{Endpoint: server.URL, TimeoutSeconds: 5})

		_, err := client.Translate(context.Background(), "text", ticket.LangGerman, ticket.LangEnglish)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("unconfigured endpoint fails fast", func(t *testing.T) {
		client := NewClient(&config.TranslationConfig{})

		_, err := client.Translate(context.Background(), "text", ticket.LangGerman, ticket.LangEnglish)
		assert.Error(t, err)
	})
}

// countingTranslator counts how often the upstream service is hit.
type countingTranslator struct {
	calls  int
	result string
	err    error
}

func (c *countingTranslator) Translate(ctx context.Context, text string, source, target ticket.Language) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.result, nil
}

func TestCachedTranslator(t *testing.T) {
	t.Run("second call is served from cache", func(t *testing.T) {
		client, cleanup := setupTestRedis(t)
		defer cleanup()

		upstream := &countingTranslator{result: "Please check the sole"}
		cached := NewCachedTranslator(upstream, client, time.Hour)

		first, err := cached.Translate(context.Background(), "Bitte Sohle prüfen", ticket.LangGerman, ticket.LangEnglish)
		require.NoError(t, err)
		second, err := cached.Translate(context.Background(), "Bitte Sohle prüfen", ticket.LangGerman, ticket.LangEnglish)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, upstream.calls)
	})

	t.Run("direction is part of the cache key", func(t *testing.T) {
		client, cleanup := setupTestRedis(t)
		defer cleanup()

		upstream := &countingTranslator{result: "whatever"}
		cached := NewCachedTranslator(upstream, client, time.Hour)

		_, err := cached.Translate(context.Background(), "text", ticket.LangGerman, ticket.LangEnglish)
		require.NoError(t, err)
		_, err = cached.Translate(context.Background(), "text", ticket.LangEnglish, ticket.LangGerman)
		require.NoError(t, err)

		assert.Equal(t, 2, upstream.calls)
	})

	t.Run("upstream failure is not cached", func(t *testing.T) {
		client, cleanup := setupTestRedis(t)
		defer cleanup()

		upstream := &countingTranslator{err: fmt.Errorf("service down")}
		cached := NewCachedTranslator(upstream, client, time.Hour)

		_, err := cached.Translate(context.Background(), "text", ticket.LangGerman, ticket.LangEnglish)
		assert.Error(t, err)

		upstream.err = nil
		upstream.result = "recovered"
		result, err := cached.Translate(context.Background(), "text", ticket.LangGerman, ticket.LangEnglish)
		assert.NoError(t, err)
		assert.Equal(t, "recovered", result)
		assert.Equal(t, 2, upstream.calls)
	})
}
