package services

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
)

// kept in line with allowedImageMimeTypes so uploaded photos can be analyzed
var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// sniffable by http.DetectContentType
var allowedImageMimeTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// StripDataURLPrefix drops a leading "data:<mime>;base64," header. Input
// without a comma is returned unchanged.
func StripDataURLPrefix(imageData string) string {
	parts := strings.Split(imageData, ",")
	if len(parts) > 1 && parts[1] != "" {
		return parts[1]
	}
	return imageData
}

// DecodeBase64Image decodes a raw base64 payload and reports its sniffed MIME
// type. Errors wrap ErrInvalidImage.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, encoded)
	if cleaned == "" {
		return nil, "", fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	var data []byte
	var err error
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		data, err = enc.DecodeString(cleaned)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: not valid base64", ErrInvalidImage)
	}

	mimeType := http.DetectContentType(data)
	if !slices.Contains(allowedImageMimeTypes, mimeType) {
		return nil, "", fmt.Errorf("%w: unsupported content type %s", ErrInvalidImage, mimeType)
	}
	return data, mimeType, nil
}

func IsAllowedImageFile(fileName string) bool {
	return slices.Contains(allowedImageExtensions, strings.ToLower(filepath.Ext(fileName)))
}

// AllowedImageExtensions lists accepted upload extensions, comma separated.
func AllowedImageExtensions() string {
	return strings.Join(allowedImageExtensions, ", ")
}
