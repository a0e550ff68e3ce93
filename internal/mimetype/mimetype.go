// package mimetype guesses a Content-Type from a file extension. It is a
// best-guess collaborator: unknown extensions fall back to OctetStream and a
// lookup never fails.
package mimetype

import (
	"mime"
	"path/filepath"
	"strings"
)

const OctetStream = "application/octet-stream"

// Common extensions are resolved from a fixed table before consulting the
// host's MIME database, so results do not vary across platforms.
var byExtension = map[string]string{
	".css":  "text/css; charset=utf-8",
	".csv":  "text/csv; charset=utf-8",
	".gif":  "image/gif",
	".gz":   "application/gzip",
	".htm":  "text/html; charset=utf-8",
	".html": "text/html; charset=utf-8",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".mp3":  "audio/mpeg",
	".mp4":  "video/mp4",
	".pdf":  "application/pdf",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".txt":  "text/plain; charset=utf-8",
	".webp": "image/webp",
	".xml":  "text/xml; charset=utf-8",
	".zip":  "application/zip",
}

// ByExtension returns the content type for the extension of path, or
// OctetStream when the extension is missing or unrecognized.
func ByExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := byExtension[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return OctetStream
}
