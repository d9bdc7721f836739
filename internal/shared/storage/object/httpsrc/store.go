// Package httpsrc reads objects over plain HTTP GET requests.
package httpsrc

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"

	"resume-page/internal/shared/storage/object"
)

// Store implements ObjectStore by fetching <baseURL>/<key>.
type Store struct {
	client  *http.Client
	baseURL *url.URL
}

// New creates an HTTP-backed store. A nil client uses http.DefaultClient.
func New(baseURL string, client *http.Client) (*Store, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errors.New("resume url is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrap(err, "parse resume url")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Errorf("unsupported url scheme %q", parsed.Scheme)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Store{client: client, baseURL: parsed}, nil
}

// Open performs a single GET request. Any non-2xx answer is a StatusError.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	target := s.resolve(storageKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", target)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, &object.StatusError{Code: resp.StatusCode, Key: storageKey}
	}
	return resp.Body, nil
}

func (s *Store) resolve(storageKey string) string {
	key := strings.TrimLeft(strings.TrimSpace(storageKey), "/")
	if key == "" {
		return s.baseURL.String()
	}
	return s.baseURL.JoinPath(key).String()
}

var _ object.ObjectStore = (*Store)(nil)
