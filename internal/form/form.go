// Package form decodes uploaded recipe images. The API carries images as
// base64 data URIs inside JSON bodies.
package form

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const magicNumberSeek = 512

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrNoImage             = errors.New("no image provided")
	ErrInvalidEncoding     = errors.New("invalid base64 image encoding")
)

type File struct {
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

// DecodeBase64Image decodes an image given either as a data URI
// ("data:image/png;base64,...") or as bare base64. The MIME type is
// sniffed from the decoded bytes, not trusted from the URI.
func DecodeBase64Image(encoded string) (*File, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, ErrNoImage
	}

	if strings.HasPrefix(encoded, "data:") {
		_, payload, found := strings.Cut(encoded, ",")
		if !found {
			return nil, ErrInvalidEncoding
		}
		encoded = payload
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncoding, err)
	}

	contentType := http.DetectContentType(data[:min(len(data), magicNumberSeek)])
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return &File{
		Size:     int64(len(data)),
		Data:     data,
		Suffix:   mimeTypeSuffix[contentType],
		MimeType: contentType,
	}, nil
}
