package utils

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var transientStatus = regexp.MustCompile(`status (429|5\d\d)`)

// IsTransient reports whether a completion failure looks temporary (rate
// limits, server errors, timeouts). The generator never retries; the result
// only labels logs and metrics.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") {
		return true
	}
	return transientStatus.MatchString(errMsg)
}

// Slugify lowercases s and collapses every whitespace run into a single dash.
func Slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
