package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("file is too large")
)

// Image is an uploaded picture in its wire form: bare base64 without a data-URI prefix.
type Image struct {
	Encoded string
	MIME    string
	Size    int64
}

// FromRequest reads the multipart file field. A missing field or a
// non-multipart body yields (nil, nil).
func FromRequest(r *http.Request, field string, maxSize int64) (*Image, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if header.Size == 0 {
		return nil, nil
	}
	return Read(file, header, maxSize)
}

func Read(file multipart.File, header *multipart.FileHeader, maxSize int64) (*Image, error) {
	if maxSize > 0 && header.Size > maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, header.Size, maxSize)
	}
	return Encode(file, maxSize)
}

// Encode reads at most maxSize bytes from r, checks they sniff as an image and
// returns them base64 encoded.
func Encode(r io.Reader, maxSize int64) (*Image, error) {
	limited := r
	if maxSize > 0 {
		limited = io.LimitReader(r, maxSize+1)
	}
	raw, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && int64(len(raw)) > maxSize {
		return nil, fmt.Errorf("%w: limit %d", ErrTooLarge, maxSize)
	}
	mime := mimetype.Detect(raw)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, mime.String())
	}
	return &Image{
		Encoded: base64.StdEncoding.EncodeToString(raw),
		MIME:    mime.String(),
		Size:    int64(len(raw)),
	}, nil
}

// Normalize converts a data URI to bare base64 and leaves other values as they are.
func Normalize(stored string) string {
	stored = strings.TrimSpace(stored)
	if strings.HasPrefix(stored, "data:") {
		if i := strings.Index(stored, ","); i >= 0 {
			return stored[i+1:]
		}
	}
	return stored
}

// DisplaySrc turns a stored image value into something an <img src> accepts.
// Stored values can be bare base64, data URIs, absolute URLs or file names
// relative to baseURL.
func DisplaySrc(stored, baseURL string) string {
	stored = strings.TrimSpace(stored)
	switch {
	case stored == "":
		return ""
	case strings.HasPrefix(stored, "data:"),
		strings.HasPrefix(stored, "http://"),
		strings.HasPrefix(stored, "https://"),
		strings.HasPrefix(stored, "/"):
		return stored
	}
	if raw, err := base64.StdEncoding.DecodeString(stored); err == nil && len(raw) > 0 {
		mime := mimetype.Detect(raw)
		if strings.HasPrefix(mime.String(), "image/") {
			return "data:" + mime.String() + ";base64," + stored
		}
	}
	if baseURL != "" {
		return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(stored, "/")
	}
	return stored
}
