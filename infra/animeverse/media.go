package animeverse

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// maxAttachmentBytes caps inline uploads; the backend stores the data
// URI verbatim, so oversized files would bloat every thread fetch.
const maxAttachmentBytes = 5 << 20

// EncodeMediaFile reads an image file and returns it as a data URI
// suitable for the mediaBase64 field of a comment submission.
func EncodeMediaFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("attachment: %w", err)
	}
	if info.Size() > maxAttachmentBytes {
		return "", fmt.Errorf("attachment %s exceeds %d MB", path, maxAttachmentBytes>>20)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("attachment: %w", err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("attachment %s is not an image (%s)", path, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
