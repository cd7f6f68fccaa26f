package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/somnolent"
	somnolenthttp "github.com/fwojciec/somnolent/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method string
	Path   string
	Auth   string
	Type   string
	Text   string
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	t.Run("posts text with bearer token", func(t *testing.T) {
		t.Parallel()

		requests := make(chan capturedRequest, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Text string `json:"text"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			requests <- capturedRequest{
				Method: r.Method,
				Path:   r.URL.Path,
				Auth:   r.Header.Get("Authorization"),
				Type:   r.Header.Get("Content-Type"),
				Text:   body.Text,
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"data":{"id":"1445880548472328192","text":"It was late. #TheNap"}}`))
		}))
		defer server.Close()

		p := somnolenthttp.NewPublisher("secret", somnolenthttp.WithAPIURL(server.URL+"/"))

		post, err := p.Publish(context.Background(), "It was late. #TheNap")

		require.NoError(t, err)
		assert.Equal(t, &somnolent.Post{ID: "1445880548472328192", Text: "It was late. #TheNap"}, post)
		assert.Equal(t, capturedRequest{
			Method: http.MethodPost,
			Path:   "/2/tweets",
			Auth:   "Bearer secret",
			Type:   "application/json",
			Text:   "It was late. #TheNap",
		}, <-requests)
	})

	t.Run("returns EINVALID when credentials are rejected", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		p := somnolenthttp.NewPublisher("bad", somnolenthttp.WithAPIURL(server.URL))

		_, err := p.Publish(context.Background(), "text")

		assert.Equal(t, somnolent.EINVALID, somnolent.ErrorCode(err))
	})

	t.Run("returns EINTERNAL with detail on server error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"title":"Too Many Requests"}`))
		}))
		defer server.Close()

		p := somnolenthttp.NewPublisher("secret", somnolenthttp.WithAPIURL(server.URL), somnolenthttp.WithHTTPClient(server.Client()))

		_, err := p.Publish(context.Background(), "text")

		assert.Equal(t, somnolent.EINTERNAL, somnolent.ErrorCode(err))
		assert.Contains(t, somnolent.ErrorMessage(err), "429")
		assert.Contains(t, somnolent.ErrorMessage(err), "Too Many Requests")
	})

	t.Run("returns EINTERNAL for malformed response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		p := somnolenthttp.NewPublisher("secret", somnolenthttp.WithAPIURL(server.URL))

		_, err := p.Publish(context.Background(), "text")

		assert.Equal(t, somnolent.EINTERNAL, somnolent.ErrorCode(err))
	})
}

// Compile-time verification that Publisher implements somnolent.Publisher
var _ somnolent.Publisher = (*somnolenthttp.Publisher)(nil)
