package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jide-lab/fieldlens/internal/extract"
	"github.com/jide-lab/fieldlens/internal/llm"
)

// answerSchema constrains the inference response before we trust it: an
// answer string and a score in [0,1].
var answerSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"answer": map[string]any{"type": "string"},
		"score":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	},
	"required": []string{"answer", "score"},
}

type askRequest struct {
	Inputs askInputs `json:"inputs"`
}

type askInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// Ask implements llm.Model against the hosted question-answering endpoint.
func (c *Client) Ask(ctx context.Context, question, docContext string) (llm.Answer, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Debug("qa.ask.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"question", question,
		"context_len", len(docContext),
	)

	body := askRequest{Inputs: askInputs{Question: question, Context: docContext}}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Warn("qa.ask.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Answer{}, err
	}

	if err := extract.ValidateJSONAgainstSchema(answerSchema, raw); err != nil {
		c.log.Warn("qa.ask.bad_response",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Answer{}, fmt.Errorf("qa response rejected: %w", err)
	}

	var ans llm.Answer
	if err := json.Unmarshal(raw, &ans); err != nil {
		return llm.Answer{}, fmt.Errorf("decode qa response: %w", err)
	}

	c.log.Debug("qa.ask.ok",
		"req_id", rid,
		"score", ans.Score,
		"answer_len", len(ans.Answer),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ans, nil
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qa http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("qa response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("qa status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

var _ llm.Model = (*Client)(nil)
