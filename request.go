package multipart

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
)

// SendFile encodes the file at path as the only field of a multipart body,
// under the given field name, attaches the body to req and sends it with
// client. The response and error come back from the client unchanged. A nil
// client means [http.DefaultClient].
func SendFile(client *http.Client, req *http.Request, name, path string) (*http.Response, error) {
	b, err := New()
	if err != nil {
		return nil, err
	}
	if err := b.AddFile(name, path); err != nil {
		return nil, err
	}
	return send(client, req, b)
}

// SendFiles encodes every file in paths, in order, each under a field named
// after the file itself, then sends the body like [SendFile]. Any encode
// failure aborts the call before anything is sent.
func SendFiles(client *http.Client, req *http.Request, paths []string) (*http.Response, error) {
	b, err := New()
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if err := b.AddFile(filepath.Base(path), path); err != nil {
			return nil, err
		}
	}
	return send(client, req, b)
}

func send(client *http.Client, req *http.Request, b *Builder) (*http.Response, error) {
	contentType, data, err := b.Finish()
	if err != nil {
		return nil, err
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set("Content-Type", contentType)
	setBody(req, data)
	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req)
}

// setBody installs data on req the way net/http expects a replayable byte
// body: Body plus a GetBody snapshot and the resulting ContentLength.
func setBody(req *http.Request, data []byte) {
	req.ContentLength = int64(len(data))
	req.Body = io.NopCloser(bytes.NewReader(data))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}
