// Package attachment checks files uploaded with the document verification
// form. Only metadata is kept; file contents are sniffed and hashed, never
// stored.
package attachment

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxBytes is the per-file size ceiling.
const DefaultMaxBytes int64 = 5 * 1024 * 1024

// AllowedTypes lists the accepted MIME types.
var AllowedTypes = []string{"image/jpeg", "image/jpg", "image/png", "application/pdf"}

// Meta describes one uploaded file.
type Meta struct {
	ID     uuid.UUID `yaml:"id" json:"id"`
	Name   string    `yaml:"name" json:"name"`
	Size   int64     `yaml:"size" json:"size"`
	Type   string    `yaml:"type" json:"type"`
	SHA256 string    `yaml:"sha256,omitempty" json:"sha256,omitempty"`
}

// Policy holds upload limits.
type Policy struct {
	MaxBytes int64
	Allowed  []string
}

// DefaultPolicy returns the portal limits: JPG, PNG or PDF up to 5 MB.
func DefaultPolicy() Policy {
	return Policy{MaxBytes: DefaultMaxBytes, Allowed: AllowedTypes}
}

// Check validates the type first, then the size.
func (p Policy) Check(m Meta) error {
	if len(p.Allowed) > 0 && !slices.Contains(p.Allowed, m.Type) {
		return fmt.Errorf("%w: %s has type %q", ErrUnsupportedType, m.Name, m.Type)
	}
	if p.MaxBytes > 0 && m.Size > p.MaxBytes {
		return fmt.Errorf("%w: %s is %s", ErrTooLarge, m.Name, FormatSize(m.Size))
	}
	return nil
}

// Inspect reads r to build the metadata of a file called name. The MIME
// type is detected from content rather than trusted from the name.
func Inspect(name string, r io.Reader) (Meta, error) {
	// 512 bytes is the most http.DetectContentType looks at.
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Meta{}, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	head = head[:n]

	h := sha256.New()
	h.Write(head)
	rest, err := io.Copy(h, r)
	if err != nil {
		return Meta{}, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	return Meta{
		ID:     uuid.New(),
		Name:   SanitizeFilename(name),
		Size:   int64(n) + rest,
		Type:   normalizeType(http.DetectContentType(head)),
		SHA256: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// Open inspects the file at path.
func Open(path string) (Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return Meta{}, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	return Inspect(filepath.Base(path), f)
}

// normalizeType drops parameters such as "; charset=utf-8".
func normalizeType(t string) string {
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

// SanitizeFilename strips path components and NUL bytes. Empty or special
// names become "unnamed".
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "\x00", "")

	if name == "." || name == ".." || name == "" || name == "/" {
		name = "unnamed"
	}
	return name
}

var sizeUnits = []string{"Bytes", "KB", "MB"}

// FormatSize renders a byte count with up to two decimals, e.g. "1.5 MB".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
