package imaging

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

type signature struct {
	contentType string
	prefix      []byte
}

// Formats Compress can decode, keyed by their leading bytes.
var signatures = []signature{
	{"image/jpeg", []byte{0xFF, 0xD8, 0xFF}},
	{"image/png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{"image/gif", []byte("GIF87a")},
	{"image/gif", []byte("GIF89a")},
	{"image/webp", []byte("RIFF")},
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Detect returns the content type of an upload. The leading bytes must match
// a supported format and agree with the sniffed MIME type, so a renamed
// binary is rejected even when it starts with a known signature.
func Detect(data []byte) (string, error) {
	var matched string
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig.prefix) {
			matched = sig.contentType
			break
		}
	}
	if matched == "" {
		return "", fmt.Errorf("%w: unrecognized file signature", ErrNotImage)
	}

	sniffed := http.DetectContentType(data)
	if sniffed != matched {
		return "", fmt.Errorf("%w: content looks like %s", ErrNotImage, sniffed)
	}
	return matched, nil
}

// CheckExtension rejects file names whose extension is not a supported image.
func CheckExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return fmt.Errorf("%w: file has no extension", ErrNotImage)
	}
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: extension %s not allowed", ErrNotImage, ext)
	}
	return nil
}
