// Package loader reads and decodes the résumé document.
package loader

import (
	"context"
	"encoding/json"
	"io"
	"path"
	"time"

	"github.com/go-faster/errors"

	"resume-page/internal/shared/metrics"
	"resume-page/internal/shared/storage/object"
	"resume-page/internal/shared/telemetry"
	"resume-page/resume/model"
)

// Loader performs one read of the résumé document per call. It never
// retries and never caches.
type Loader struct {
	store    object.ObjectStore
	key      string
	location string
}

// Option customises a Loader.
type Option func(*Loader)

// WithLocation overrides the location shown in logs and error views.
func WithLocation(location string) Option {
	return func(l *Loader) {
		l.location = location
	}
}

// New builds a Loader reading key from store.
func New(store object.ObjectStore, key string, opts ...Option) *Loader {
	l := &Loader{
		store:    store,
		key:      key,
		location: path.Clean("/" + key)[1:],
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Location describes where the document is read from.
func (l *Loader) Location() string {
	return l.location
}

// Load reads, decodes and normalizes the document. Every failure is returned
// as an *UnavailableError.
func (l *Loader) Load(ctx context.Context) (*model.Document, error) {
	start := time.Now()
	doc, err := l.load(ctx)
	if err != nil {
		metrics.ObserveLoad(metrics.OutcomeError, time.Since(start))
		unavailable := &UnavailableError{Location: l.location, Cause: err}
		telemetry.Error("resume.load_failed", map[string]any{
			"location": l.location,
			"status":   unavailable.Status(),
			"error":    err,
		})
		return nil, unavailable
	}
	metrics.ObserveLoad(metrics.OutcomeOK, time.Since(start))

	if missing := doc.MissingFields(); len(missing) > 0 {
		telemetry.Warn("resume.missing_fields", map[string]any{
			"location": l.location,
			"fields":   missing,
		})
	}
	return doc, nil
}

func (l *Loader) load(ctx context.Context) (*model.Document, error) {
	rc, err := l.store.Open(ctx, l.key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse resume json")
	}
	doc.Normalize()
	return &doc, nil
}
