package encoder

import "errors"

var (
	// I/O errors. ErrReadSource and ErrWriteBody tell the two sides of a
	// failed copy apart: the caller's stream versus the body being built.
	ErrOpenFile   = errors.New("multipart: failed to open file")
	ErrReadSource = errors.New("multipart: failed to read source")
	ErrWriteBody  = errors.New("multipart: failed to write body")

	// Usage errors.
	ErrFinished           = errors.New("multipart: builder already finished")
	ErrInvalidBoundary    = errors.New("multipart: invalid boundary")
	ErrInvalidContentType = errors.New("multipart: invalid content type")
)
