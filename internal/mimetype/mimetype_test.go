package mimetype_test

import (
	"testing"

	"github.com/pldubouilh/ureq-mime-multipart/internal/mimetype"
)

func TestByExtension(t *testing.T) {
	cases := map[string]string{
		"sample.txt":           "text/plain; charset=utf-8",
		"dir/photo.JPG":        "image/jpeg",
		"archive.tar.gz":       "application/gzip",
		"payload.json":         "application/json",
		"noextension":          mimetype.OctetStream,
		"trailing.unknownext9": mimetype.OctetStream,
		"":                     mimetype.OctetStream,
	}
	for path, want := range cases {
		if got := mimetype.ByExtension(path); got != want {
			t.Errorf("ByExtension(%q): got %q, want %q", path, got, want)
		}
	}
}
