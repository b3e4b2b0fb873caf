package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Client talks to the hosted completion endpoint. Calls are rate limited so
// a chatty widget cannot exhaust the upstream quota.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
}

func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/30), 5),
	}
}

type completionRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type completionResponse struct {
	Text string `json:"text"`
}

// Complete sends a prompt to the completion API and returns the generated
// text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(completionRequest{
		Prompt:    prompt,
		MaxTokens: 300,
	}); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/v1/completions", c.endpoint), &body)
	if err != nil {
		return "", err
	}
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		dumpBytes, _ := httputil.DumpResponse(resp, true)
		log.WithField("prefix", "ai").WithField("resp", string(dumpBytes)).Error("error response from completion api")
		return "", fmt.Errorf("fail to query completion api")
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.Text, nil
}
