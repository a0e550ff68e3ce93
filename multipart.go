// package multipart encodes request bodies in the multipart/form-data wire
// format (RFC 7578) and binds them onto outbound [net/http] requests.
//
// The core is [Builder]: it owns a random boundary token and an in-memory
// body, appends text and file fields in call order, and is consumed by
// Finish, which yields the body bytes together with the Content-Type header
// value carrying the same boundary. [SendFile] and [SendFiles] wrap the
// Builder for the common case of posting files with a plain *http.Request.
package multipart

import (
	"github.com/pldubouilh/ureq-mime-multipart/internal/encoder"
)

type Builder = encoder.Builder

// New returns a Builder with a freshly generated random boundary.
func New() (*Builder, error) { return encoder.New() }

// NewWithBoundary returns a Builder using the given boundary token, for
// callers that need deterministic output.
func NewWithBoundary(boundary string) (*Builder, error) {
	return encoder.NewWithBoundary(boundary)
}

var (
	ErrOpenFile   = encoder.ErrOpenFile
	ErrReadSource = encoder.ErrReadSource
	ErrWriteBody  = encoder.ErrWriteBody

	ErrFinished           = encoder.ErrFinished
	ErrInvalidBoundary    = encoder.ErrInvalidBoundary
	ErrInvalidContentType = encoder.ErrInvalidContentType
)
