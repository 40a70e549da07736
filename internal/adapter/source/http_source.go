package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"devops-reference/internal/domain"
)

// maxAssetSize bounds a single fetched document. Larger documents are rejected, not truncated.
const maxAssetSize = 16 << 20

// HTTPSource fetches assets relative to a base URL.
type HTTPSource struct {
	baseURL *url.URL
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource. A zero timeout leaves requests bounded only by the context.
func NewHTTPSource(baseURL string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid source base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported source URL scheme %q", u.Scheme)
	}
	return &HTTPSource{
		baseURL: u,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Fetch implements domain.Source. Any non-2xx status is reported as unavailable.
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return nil, domain.NewSourceUnavailableError(name, err)
	}
	target := s.baseURL.ResolveReference(ref).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, domain.NewSourceUnavailableError(name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.NewSourceUnavailableError(name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewSourceUnavailableError(name, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, target)).
			WithContext("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize+1))
	if err != nil {
		return nil, domain.NewSourceUnavailableError(name, err)
	}
	if len(body) > maxAssetSize {
		return nil, domain.NewSourceUnavailableError(name, fmt.Errorf("%s exceeds %d bytes", target, maxAssetSize)).
			WithContext("limit", maxAssetSize)
	}
	return body, nil
}
