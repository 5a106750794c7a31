package constants

import "strings"

// AllowedMIMETypes holds the upload types the pipeline accepts.
var AllowedMIMETypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"text/plain":      {},
}

// IsSupportedMIME reports whether the pipeline can extract text from mime.
func IsSupportedMIME(mime string) bool {
	_, ok := AllowedMIMETypes[normalizeMIME(mime)]
	return ok
}

func normalizeMIME(mime string) string {
	// strip parameters like "; charset=utf-8"
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.ToLower(strings.TrimSpace(mime))
}
