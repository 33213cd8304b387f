package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"moodbot/app/config"

	"github.com/samber/do"
)

const (
	defaultBaseURL = "https://newsapi.org"
	requestTimeout = 30 * time.Second
)

type Client struct {
	cfg        *config.Config
	baseURL    string
	httpClient *http.Client

	mu     sync.RWMutex
	apiKey string
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		cfg:     cfg,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		apiKey: cfg.News.APIKey,
	}, nil
}

// SetAPIKey swaps the access key at runtime without a restart.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.apiKey = key
}

func (c *Client) currentAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.apiKey
}

type headlinesResponse struct {
	Articles []struct {
		Title  string `json:"title"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// TopHeadlines returns the latest headlines as "Title - Source" strings.
func (c *Client) TopHeadlines(ctx context.Context) ([]string, error) {
	query := url.Values{}
	query.Set("country", c.cfg.News.Country)
	query.Set("apiKey", c.currentAPIKey())

	requestURL := fmt.Sprintf("%s/v2/top-headlines?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create headlines request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("headlines request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("headlines request returned status %d", resp.StatusCode)
	}

	var parsed headlinesResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse headlines response: %w", err)
	}

	headlines := make([]string, 0, len(parsed.Articles))
	for _, article := range parsed.Articles {
		headlines = append(headlines, fmt.Sprintf("%s - %s", article.Title, article.Source.Name))
	}

	return headlines, nil
}
