package attachment_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/attachment"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	pdfHeader = []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")
	jpgHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
)

func TestInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  []byte
		wantType string
		wantName string
	}{
		{"png", "photo.png", pngHeader, "image/png", "photo.png"},
		{"pdf", "scan.pdf", pdfHeader, "application/pdf", "scan.pdf"},
		{"jpeg", "id.jpg", jpgHeader, "image/jpeg", "id.jpg"},
		{"text drops charset", "notes.txt", []byte("hello world"), "text/plain", "notes.txt"},
		{"path is stripped", "../../etc/passport.pdf", pdfHeader, "application/pdf", "passport.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := attachment.Inspect(tt.filename, bytes.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, m.Type)
			assert.Equal(t, tt.wantName, m.Name)
			assert.Equal(t, int64(len(tt.content)), m.Size)
			assert.Len(t, m.SHA256, 64)
			assert.NotEqual(t, uuid.Nil, m.ID)
		})
	}

	t.Run("large content is fully counted", func(t *testing.T) {
		t.Parallel()
		content := append(append([]byte{}, pdfHeader...), bytes.Repeat([]byte("x"), 4096)...)
		m, err := attachment.Inspect("big.pdf", bytes.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, int64(len(content)), m.Size)
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "aadhaar.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	m, err := attachment.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "aadhaar.png", m.Name)
	assert.Equal(t, "image/png", m.Type)

	_, err = attachment.Open(filepath.Join(dir, "missing.pdf"))
	assert.ErrorIs(t, err, attachment.ErrFailedToOpenFile)
}

func TestPolicyCheck(t *testing.T) {
	t.Parallel()

	p := attachment.DefaultPolicy()

	assert.NoError(t, p.Check(attachment.Meta{Name: "a.pdf", Type: "application/pdf", Size: attachment.DefaultMaxBytes}))
	assert.NoError(t, p.Check(attachment.Meta{Name: "a.jpg", Type: "image/jpg", Size: 10}))

	err := p.Check(attachment.Meta{Name: "a.pdf", Type: "application/pdf", Size: attachment.DefaultMaxBytes + 1})
	assert.ErrorIs(t, err, attachment.ErrTooLarge)
	assert.Equal(t, attachment.MsgTooLarge, attachment.Message(err))

	err = p.Check(attachment.Meta{Name: "a.gif", Type: "image/gif", Size: attachment.DefaultMaxBytes + 1})
	assert.ErrorIs(t, err, attachment.ErrUnsupportedType, "type is checked before size")
	assert.Equal(t, attachment.MsgUnsupportedType, attachment.Message(err))

	assert.Equal(t, "", attachment.Message(os.ErrNotExist))
}

func TestPolicyMessage(t *testing.T) {
	t.Parallel()

	t.Run("default ceiling", func(t *testing.T) {
		t.Parallel()
		p := attachment.DefaultPolicy()
		err := p.Check(attachment.Meta{Name: "a.pdf", Type: "application/pdf", Size: attachment.DefaultMaxBytes + 1})
		assert.Equal(t, attachment.MsgTooLarge, p.Message(err))
		assert.Equal(t, "JPG, PNG or PDF up to 5MB", p.Describe())
	})

	t.Run("configured ceiling", func(t *testing.T) {
		t.Parallel()
		p := attachment.Policy{MaxBytes: 1536 * 1024, Allowed: attachment.AllowedTypes}
		err := p.Check(attachment.Meta{Name: "a.pdf", Type: "application/pdf", Size: 2 << 20})
		require.ErrorIs(t, err, attachment.ErrTooLarge)
		assert.Equal(t, "File size should be less than 1.5MB", p.Message(err))
		assert.Equal(t, "JPG, PNG or PDF up to 1.5MB", p.Describe())
		assert.Equal(t, attachment.MsgUnsupportedType, p.Message(attachment.ErrUnsupportedType))
		assert.Equal(t, attachment.MsgNone, p.Message(attachment.ErrNone))
	})

	t.Run("no ceiling", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "JPG, PNG or PDF", attachment.Policy{}.Describe())
	})
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := attachment.NewSet(attachment.DefaultPolicy())
	assert.ErrorIs(t, s.RequireAny(), attachment.ErrNone)
	assert.Equal(t, attachment.MsgNone, attachment.Message(s.RequireAny()))

	first, err := s.Add(attachment.Meta{Name: "a.pdf", Type: "application/pdf", Size: 100})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	_, err = s.Add(attachment.Meta{Name: "b.exe", Type: "application/octet-stream", Size: 100})
	assert.ErrorIs(t, err, attachment.ErrUnsupportedType)

	second, err := s.Add(attachment.Meta{Name: "b.png", Type: "image/png", Size: 200})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.pdf", "b.png"}, s.Names())
	assert.NoError(t, s.RequireAny())

	require.NoError(t, s.Remove(first.ID))
	assert.Equal(t, []string{"b.png"}, s.Names())
	assert.ErrorIs(t, s.Remove(first.ID), attachment.ErrNotFound)

	list := s.List()
	list[0].Name = "mutated"
	assert.Equal(t, second.Name, s.List()[0].Name)

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:               "0 Bytes",
		500:             "500 Bytes",
		1024:            "1 KB",
		1536:            "1.5 KB",
		5 * 1024 * 1024: "5 MB",
		1234567:         "1.18 MB",
		3 << 30:         "3072 MB",
	}
	for in, want := range tests {
		assert.Equal(t, want, attachment.FormatSize(in), "FormatSize(%d)", in)
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "passwd", attachment.SanitizeFilename("../../../etc/passwd"))
	assert.Equal(t, "file.txt", attachment.SanitizeFilename(`C:\Windows\file.txt`))
	assert.Equal(t, "unnamed", attachment.SanitizeFilename(".."))
	assert.Equal(t, "unnamed", attachment.SanitizeFilename(""))
	assert.False(t, strings.Contains(attachment.SanitizeFilename("a\x00b.pdf"), "\x00"))
}
