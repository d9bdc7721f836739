package object

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-faster/errors"
)

//go:generate mockgen -source=store.go -destination=mock/store.go -package=mock

// ObjectStore defines the contract for reading the stored résumé document.
type ObjectStore interface {
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// StatusError reports a transport level failure that carries a status code.
// Stores map their own "not found" conditions to http.StatusNotFound.
type StatusError struct {
	Code int
	Key  string
}

func (e *StatusError) Error() string {
	text := http.StatusText(e.Code)
	if text == "" {
		return fmt.Sprintf("http error: status %d", e.Code)
	}
	return fmt.Sprintf("http error: status %d %s", e.Code, text)
}

// StatusCode extracts the status of a StatusError in err's chain, or 0.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}
