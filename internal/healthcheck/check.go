package healthcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/jonathan/api-catalog/internal/fetch"
	"github.com/jonathan/api-catalog/internal/types"
)

// MinImageBytes is the body size accepted as an image when the server does
// not label it as one
const MinImageBytes = 100

// PreviewBytes is how much of a text or JSON body verbose output shows
const PreviewBytes = 200

// Result is the outcome of probing one record
type Result struct {
	// Index is the record's position in the store
	Index       int           `json:"-"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	URL         string        `json:"url"`
	Passed      bool          `json:"passed"`
	Detail      string        `json:"detail"`
	StatusCode  int           `json:"status-code,omitempty"`
	ContentType string        `json:"content-type,omitempty"`
	Title       string        `json:"page-title,omitempty"`
	Preview     string        `json:"-"`
	Duration    time.Duration `json:"duration-ms"`
}

// MarshalJSON reports the duration in milliseconds
func (r Result) MarshalJSON() ([]byte, error) {
	type alias Result
	return json.Marshal(struct {
		alias
		Duration int64 `json:"duration-ms"`
	}{alias: alias(r), Duration: r.Duration.Milliseconds()})
}

// Checker checks single records
type Checker struct {
	fetcher *fetch.Fetcher
}

// NewChecker creates a checker using the given fetch options
func NewChecker(opts *fetch.Options) *Checker {
	return &Checker{fetcher: fetch.New(opts)}
}

// Testable reports whether a record has a try-it to run
func Testable(r *types.APIRecord) bool {
	return r.TryIt != nil && r.TryIt.URL != ""
}

// Check requests the record's try-it endpoint and judges the response against
// the expected response type. The record must be Testable.
func (c *Checker) Check(ctx context.Context, index int, r *types.APIRecord) Result {
	res := Result{
		Index:    index,
		Name:     r.Name,
		Category: r.Category,
		URL:      ResolveURL(r.TryIt.URL, r.TryIt.Params),
	}

	start := time.Now()
	resp, err := c.fetcher.Get(ctx, res.URL)
	res.Duration = time.Since(start)
	if err != nil {
		res.Detail = describeError(err)
		return res
	}

	res.StatusCode = resp.StatusCode
	res.ContentType = resp.ContentType
	if fetch.IsHTML(resp.ContentType) {
		res.Title = fetch.ExtractTitle(string(resp.Body))
	}

	res.Passed, res.Detail = judge(r.TryIt.ResponseType, resp)
	if !res.Passed && res.Title != "" {
		res.Detail += fmt.Sprintf(" (page title: %q)", res.Title)
	}
	if r.TryIt.ResponseType != types.ResponseImage {
		res.Preview = preview(resp.Body)
	}
	return res
}

func judge(expected types.ResponseType, resp *fetch.Result) (bool, string) {
	status := resp.StatusCode
	size := len(resp.Body)
	contentType := strings.ToLower(resp.ContentType)

	if status < 200 || status >= 400 {
		return false, fmt.Sprintf("HTTP %d", status)
	}

	switch expected {
	case types.ResponseJSON:
		if json.Valid(resp.Body) {
			return true, fmt.Sprintf("HTTP %d, valid JSON (%d bytes)", status, size)
		}
		// Bodies cut off at the read limit are not valid JSON on their own
		if strings.Contains(contentType, "json") || strings.Contains(contentType, "javascript") {
			return true, fmt.Sprintf("HTTP %d, JSON content-type (%d bytes)", status, size)
		}
		return false, fmt.Sprintf("HTTP %d, expected JSON but got %s", status, resp.ContentType)
	case types.ResponseImage:
		if strings.Contains(contentType, "image") || size > MinImageBytes {
			return true, fmt.Sprintf("HTTP %d, %s (%d bytes)", status, resp.ContentType, size)
		}
		return false, fmt.Sprintf("HTTP %d, expected image but got %s", status, resp.ContentType)
	default:
		return true, fmt.Sprintf("HTTP %d, %d bytes", status, size)
	}
}

func describeError(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return "Connection timeout"
	case errors.Is(err, context.Canceled):
		return "Cancelled"
	}

	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) {
		if fetchErr.Message == "invalid URL" {
			return "URL error: invalid URL"
		}
		if fetchErr.Cause != nil {
			return fmt.Sprintf("Connection error: %v", fetchErr.Cause)
		}
		return fmt.Sprintf("Connection error: %s", fetchErr.Message)
	}
	return fmt.Sprintf("Error: %v", err)
}

func preview(body []byte) string {
	if len(body) > PreviewBytes {
		body = body[:PreviewBytes]
	}
	return strings.ToValidUTF8(string(body), "�")
}
