// Package letter talks to a local text-generation endpoint to turn a
// short prompt into a formal leave letter.
//
// The service is untrusted and unreliable. By contract with the leave
// workflow, a failed call does not return an error: it returns a string
// beginning with the "---ERROR:" sentinel, which submission validation
// detects and rejects. Draft never fails with a Go error for remote
// problems; only a nil-context misuse would.
package letter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Sentinel prefixes every failure draft.
const Sentinel = "---ERROR:"

// Client calls the letter-drafting microservice.
type Client struct {
	BaseURL string
	Model   string
	HTTP    *http.Client
}

// New creates a client with a configurable timeout.
func New(baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second // generation can be slow
	}
	return &Client{
		BaseURL: baseURL,
		Model:   model,
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

const promptTemplate = `You are an employee named %s.
Write a formal leave letter to your manager based *only* on the following user prompt.
The letter must be professional, concise, and start with "Dear [Manager Name],"

User's Prompt: %q

Your formal letter:`

// Draft generates a formal leave letter for the given prompt and
// display name. On any remote failure the returned string starts with
// Sentinel and embeds the original prompt so the user can still
// recover their text.
func (c *Client) Draft(ctx context.Context, prompt, userName string) string {
	payload := map[string]interface{}{
		"model":  c.Model,
		"prompt": fmt.Sprintf(promptTemplate, userName, prompt),
		"stream": false,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return c.failure(fmt.Sprintf("invalid request: %v", err), prompt)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return c.failure(fmt.Sprintf("could not connect to letter service at %s: %v", c.BaseURL, err), prompt)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return c.failure(fmt.Sprintf("letter service error %s: %s", resp.Status, string(bodyBytes)), prompt)
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return c.failure(fmt.Sprintf("failed to decode response: %v", err), prompt)
	}

	generated := strings.Trim(strings.TrimSpace(out.Response), `"`)
	if generated == "" {
		return c.failure("letter service returned an empty draft", prompt)
	}

	return generated
}

func (c *Client) failure(detail, prompt string) string {
	return fmt.Sprintf("%s %s---\n\nUser Prompt: %s", Sentinel, detail, prompt)
}
