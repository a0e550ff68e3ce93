package encoder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/pldubouilh/ureq-mime-multipart/internal/mimetype"
)

// Builder assembles a multipart/form-data body (RFC 7578) in memory, one
// field at a time, together with the Content-Type header value matching its
// boundary. Fields appear in the body in exactly the order they were added.
//
// A Builder is single-owner: it must not be used from more than one
// goroutine, and it is consumed by Finish.
type Builder struct {
	boundary    string
	inner       bytes.Buffer
	dataWritten bool
	finished    bool
}

// New returns a Builder with a freshly generated random boundary and an
// empty body.
func New() (*Builder, error) {
	boundary, err := randomBoundary()
	if err != nil {
		return nil, err
	}
	return &Builder{boundary: boundary}, nil
}

// NewWithBoundary returns a Builder using the given boundary token, so that
// output is deterministic. The token must satisfy rfc2046#section-5.1.1.
func NewWithBoundary(boundary string) (*Builder, error) {
	if err := validateBoundary(boundary); err != nil {
		return nil, err
	}
	return &Builder{boundary: boundary}, nil
}

// AddText appends a text field holding the raw UTF-8 bytes of text. The
// terminating CRLF is deferred until the next field or Finish.
func (b *Builder) AddText(name, text string) error {
	if err := b.writeFieldHeaders(name, "", ""); err != nil {
		return err
	}
	return b.sink(b.inner.WriteString(text))
}

// AddStream appends a field whose content is read from r until EOF, with no
// transformation. filename and contentType may be empty; an empty
// contentType falls back to application/octet-stream so that receiving
// servers treat the part as a file rather than inline text.
func (b *Builder) AddStream(r io.Reader, name, filename, contentType string) error {
	if contentType == "" {
		contentType = mimetype.OctetStream
	}
	if err := b.writeFieldHeaders(name, filename, contentType); err != nil {
		return err
	}
	if _, err := io.Copy(sinkWriter{&b.inner}, r); err != nil {
		if errors.Is(err, ErrWriteBody) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	return nil
}

// AddFile opens the file at path and appends its contents as a file field.
// The content type is inferred from the extension and the filename is the
// path's final element, omitted when the path has no file name component.
func (b *Builder) AddFile(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFile, err)
	}
	defer f.Close()
	return b.AddStream(f, name, baseFilename(path), mimetype.ByExtension(path))
}

// Finish terminates the last field if any, writes the closing boundary line
// and returns the Content-Type header value with the encoded body. The
// closing line is written even when no field was added; an empty multipart
// body is still well formed. The Builder is consumed: any later call fails
// with ErrFinished.
func (b *Builder) Finish() (contentType string, body []byte, err error) {
	if b.finished {
		return "", nil, ErrFinished
	}
	b.finished = true
	if b.dataWritten {
		if err := b.sink(b.inner.WriteString("\r\n")); err != nil {
			return "", nil, err
		}
	}
	if err := b.sink(b.inner.WriteString("--" + b.boundary + "--\r\n")); err != nil {
		return "", nil, err
	}
	return b.ContentType(), b.inner.Bytes(), nil
}

// Boundary returns the token shared by the header value and every delimiter
// line of the body.
func (b *Builder) Boundary() string { return b.boundary }

// ContentType returns the value to send in the Content-Type request header.
func (b *Builder) ContentType() string {
	return "multipart/form-data; boundary=" + b.boundary
}

// writeBoundary opens the next field block. The first delimiter has no
// leading CRLF; every later one first terminates the previous field's
// content. Content bytes are never scanned, so termination must stay lazy.
func (b *Builder) writeBoundary() error {
	if b.dataWritten {
		if err := b.sink(b.inner.WriteString("\r\n")); err != nil {
			return err
		}
	}
	return b.sink(b.inner.WriteString("--" + b.boundary + "\r\n"))
}

func (b *Builder) writeFieldHeaders(name, filename, contentType string) error {
	if b.finished {
		return ErrFinished
	}
	if contentType != "" && !httpguts.ValidHeaderFieldValue(contentType) {
		return fmt.Errorf("%w: %q", ErrInvalidContentType, contentType)
	}
	if err := b.writeBoundary(); err != nil {
		return err
	}
	b.dataWritten = true
	if err := b.sink(fmt.Fprintf(&b.inner, `Content-Disposition: form-data; name="%s"`, escapeQuotes(name))); err != nil {
		return err
	}
	if filename != "" {
		if err := b.sink(fmt.Fprintf(&b.inner, `; filename="%s"`, escapeQuotes(filename))); err != nil {
			return err
		}
	}
	if contentType != "" {
		if err := b.sink(fmt.Fprintf(&b.inner, "\r\nContent-Type: %s", contentType)); err != nil {
			return err
		}
	}
	return b.sink(b.inner.WriteString("\r\n\r\n"))
}

// sink classifies failures of the body buffer. A bytes.Buffer never fails,
// but the contract keeps sink errors representable for other buffer
// strategies.
func (b *Builder) sink(_ int, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteBody, err)
	}
	return nil
}

// sinkWriter tags write-side errors during io.Copy so they remain
// distinguishable from read-side ones.
type sinkWriter struct{ w io.Writer }

func (s sinkWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrWriteBody, err)
	}
	return n, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// baseFilename returns the final path element, or "" when the path has no
// file name component.
func baseFilename(path string) string {
	switch base := filepath.Base(path); base {
	case ".", "..", string(filepath.Separator):
		return ""
	default:
		return base
	}
}
