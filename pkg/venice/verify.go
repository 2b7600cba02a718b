package venice

import (
	"context"
	"fmt"
	"net/http"
)

// VerifyResult is the outcome of an API key check.
type VerifyResult struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	Message    string `json:"message"`
}

// Verify checks the API key with a minimal chat completion. A 200 proves the
// key outright; a 400 still proves it, since authentication happens before
// request validation. Only a 401 marks the key invalid.
func (c *Client) Verify(ctx context.Context) VerifyResult {
	body := map[string]any{
		"model":       "venice-uncensored",
		"messages":    []map[string]string{{"role": "user", "content": "ping"}},
		"temperature": 0.1,
		"max_tokens":  5,
	}

	resp, err := c.authorized().
		SetContext(ctx).
		SetBody(body).
		Post(c.baseURL + chatPath)
	if err != nil {
		return VerifyResult{Message: fmt.Sprintf("verification request failed: %v", err)}
	}

	result := VerifyResult{
		StatusCode: resp.StatusCode(),
		RequestID:  requestID(resp),
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusBadRequest:
		result.Success = true
		result.Message = "API key is valid"
	case http.StatusUnauthorized:
		result.Message = "API key is invalid"
	default:
		result.Message = fmt.Sprintf("unexpected status %d: %s", resp.StatusCode(), resp.String())
	}

	return result
}
