package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"moodbot/app/config"

	"github.com/samber/do"
)

const (
	defaultBaseURL = "https://api-inference.huggingface.co"
	requestTimeout = 30 * time.Second
)

// Sentiment is the summary produced by the sentiment model for one text.
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (s Sentiment) String() string {
	return fmt.Sprintf("%s %.2f", s.Label, s.Score)
}

// Entity is a single named entity annotation.
type Entity struct {
	Text  string
	Label string
}

type Client struct {
	cfg        *config.Config
	baseURL    string
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	return &Client{
		cfg:     do.MustInvoke[*config.Config](di),
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// AnalyzeSentiment runs the configured sentiment model and returns the
// highest-scoring label.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (Sentiment, error) {
	var raw [][]Sentiment
	if err := c.infer(ctx, c.cfg.HuggingFace.SentimentModel, text, &raw); err != nil {
		return Sentiment{}, err
	}

	if len(raw) == 0 || len(raw[0]) == 0 {
		return Sentiment{}, fmt.Errorf("sentiment model returned no labels")
	}

	best := raw[0][0]
	for _, candidate := range raw[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return best, nil
}

type nerItem struct {
	EntityGroup string  `json:"entity_group"`
	Word        string  `json:"word"`
	Score       float64 `json:"score"`
}

// ExtractEntities runs the configured NER model over the text. The result may
// be empty.
func (c *Client) ExtractEntities(ctx context.Context, text string) ([]Entity, error) {
	var raw []nerItem
	if err := c.infer(ctx, c.cfg.HuggingFace.NERModel, text, &raw); err != nil {
		return nil, err
	}

	entities := make([]Entity, 0, len(raw))
	for _, item := range raw {
		entities = append(entities, Entity{
			Text:  item.Word,
			Label: item.EntityGroup,
		})
	}

	return entities, nil
}

func (c *Client) infer(ctx context.Context, model, text string, out any) error {
	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return fmt.Errorf("failed to marshal inference request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create inference request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.cfg.HuggingFace.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.HuggingFace.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read inference response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference request to %s returned status %d", model, resp.StatusCode)
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse inference response: %w", err)
	}

	return nil
}
