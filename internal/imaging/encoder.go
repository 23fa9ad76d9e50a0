package imaging

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"imagestudio/internal/domain"
)

// DefaultMIMEType is assumed when a data URL header carries no usable MIME type.
const DefaultMIMEType = "application/octet-stream"

// Asset is an immutable base64 encoding of an image together with its MIME
// type and a self-contained data URL that renders directly in a browser.
type Asset struct {
	Base64   string
	MIMEType string
	DataURL  string
}

// Bytes decodes the base64 payload back into raw image bytes.
func (a Asset) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(a.Base64)
	if err != nil {
		return nil, fmt.Errorf("imaging: decode payload: %w", err)
	}
	return data, nil
}

// Encode reads the full contents of r and produces an Asset. The MIME type is
// taken from contentType when it names a concrete type, otherwise sniffed from
// the leading bytes. A failed read reports domain.ErrFileRead.
func Encode(r io.Reader, contentType string) (*Asset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileRead, err)
	}
	mimeType := resolveMIMEType(contentType, data)
	return FromBytes(data, mimeType), nil
}

// FromBytes builds an Asset for raw bytes that are already in memory.
func FromBytes(data []byte, mimeType string) *Asset {
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	payload := base64.StdEncoding.EncodeToString(data)
	return &Asset{
		Base64:   payload,
		MIMEType: mimeType,
		DataURL:  DataURL(mimeType, payload),
	}
}

// DataURL assembles the canonical data URL for an encoded payload.
func DataURL(mimeType, payload string) string {
	return "data:" + mimeType + ";base64," + payload
}

// ParseDataURL splits a data URL at the first comma into header and payload.
// The MIME type is the substring between ":" and the first ";" of the header;
// when that extraction fails the type defaults to application/octet-stream.
func ParseDataURL(s string) (*Asset, error) {
	header, payload, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("imaging: malformed data url")
	}
	return &Asset{
		Base64:   payload,
		MIMEType: mimeTypeFromHeader(header),
		DataURL:  s,
	}, nil
}

func mimeTypeFromHeader(header string) string {
	colon := strings.Index(header, ":")
	if colon < 0 {
		return DefaultMIMEType
	}
	semi := strings.Index(header[colon+1:], ";")
	if semi <= 0 {
		return DefaultMIMEType
	}
	return header[colon+1 : colon+1+semi]
}

func resolveMIMEType(contentType string, data []byte) string {
	mimeType := strings.TrimSpace(contentType)
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	if mimeType != "" && mimeType != DefaultMIMEType {
		return mimeType
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return DefaultMIMEType
}
