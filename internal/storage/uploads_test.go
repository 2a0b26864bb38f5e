package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	file, header, err := req.FormFile(field)
	require.NoError(t, err)
	return file, header
}

func TestUploaderSave(t *testing.T) {
	u, err := NewUploader(t.TempDir(), 5, nil)
	require.NoError(t, err)

	file, header := multipartRequest(t, "aadhaar", "card.PDF", []byte("%PDF-1.4 test"))
	defer file.Close()

	name, err := u.Save("aadhaar", file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "aadhaar-"))
	assert.True(t, strings.HasSuffix(name, ".pdf"), "extension is lowercased")

	data, err := os.ReadFile(filepath.Join(u.Dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)
}

func TestUploaderRejectsExtension(t *testing.T) {
	u, err := NewUploader(t.TempDir(), 5, nil)
	require.NoError(t, err)

	for _, filename := range []string{"payload.exe", "script.sh", "archive.zip", "noext"} {
		file, header := multipartRequest(t, "pan", filename, []byte("data"))
		_, err := u.Save("pan", file, header)
		assert.ErrorIs(t, err, ErrBadExtension, filename)
		file.Close()
	}
}

func TestUploaderRejectsOversize(t *testing.T) {
	u, err := NewUploader(t.TempDir(), 5, nil)
	require.NoError(t, err)
	u.MaxBytes = 64 // shrink the cap so the test stays small

	file, header := multipartRequest(t, "aadhaar", "big.jpg", bytes.Repeat([]byte("x"), 200))
	defer file.Close()

	_, err = u.Save("aadhaar", file, header)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := os.ReadDir(u.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no partial file may remain on disk")
}

func TestUploaderUniqueNames(t *testing.T) {
	u, err := NewUploader(t.TempDir(), 5, nil)
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		file, header := multipartRequest(t, "proof", "same.png", []byte("img"))
		name, err := u.Save("proof", file, header)
		file.Close()
		require.NoError(t, err)
		assert.False(t, seen[name], "filenames must not collide")
		seen[name] = true
	}
}
