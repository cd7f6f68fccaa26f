package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/somnolent"
)

// DefaultAPIURL is the base URL of the X API.
const DefaultAPIURL = "https://api.twitter.com"

// Ensure Publisher implements somnolent.Publisher at compile time.
var _ somnolent.Publisher = (*Publisher)(nil)

// Publisher posts status updates through the X API v2 using an OAuth 2.0
// user-context bearer token.
type Publisher struct {
	client *http.Client
	apiURL string
	token  string
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithAPIURL overrides the API base URL.
func WithAPIURL(u string) PublisherOption {
	return func(p *Publisher) {
		p.apiURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient sets the client used for API requests.
func WithHTTPClient(c *http.Client) PublisherOption {
	return func(p *Publisher) {
		p.client = c
	}
}

// NewPublisher creates a Publisher authenticating with token.
func NewPublisher(token string, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		client: &http.Client{Timeout: 30 * time.Second},
		apiURL: DefaultAPIURL,
		token:  token,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type createTweetRequest struct {
	Text string `json:"text"`
}

type createTweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// Publish posts text as a new tweet.
// Rejected credentials are reported as EINVALID; other failures as EINTERNAL.
func (p *Publisher) Publish(ctx context.Context, text string) (*somnolent.Post, error) {
	body, err := json.Marshal(createTweetRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, somnolent.Errorf(somnolent.EINTERNAL, "publish: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, somnolent.Errorf(somnolent.EINVALID, "publish rejected: HTTP %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, somnolent.Errorf(somnolent.EINTERNAL, "publish failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var out createTweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, somnolent.Errorf(somnolent.EINTERNAL, "decode publish response: %v", err)
	}

	return &somnolent.Post{ID: out.Data.ID, Text: out.Data.Text}, nil
}
