package filestorage

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

func uploadedFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	basePath := t.TempDir()
	storage, err := NewLocalStorage(basePath, "http://localhost:8080/uploads")
	require.NoError(t, err)

	stored, err := storage.Save(uploadedFile(t, "receipt.pdf", "pdf-bytes"), "receipts")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.URL, "http://localhost:8080/uploads/receipts/"))
	assert.True(t, strings.HasPrefix(stored.PublicID, "receipts/"))
	assert.True(t, strings.HasSuffix(stored.PublicID, ".pdf"))

	onDisk := filepath.Join(basePath, filepath.FromSlash(stored.PublicID))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))

	require.NoError(t, storage.Delete(stored.PublicID))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_UniqueFilenames(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	first, err := storage.Save(uploadedFile(t, "photo.png", "a"), "complaints")
	require.NoError(t, err)
	second, err := storage.Save(uploadedFile(t, "photo.png", "b"), "complaints")
	require.NoError(t, err)

	assert.NotEqual(t, first.PublicID, second.PublicID)
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	assert.NoError(t, storage.Delete("receipts/does-not-exist.pdf"))
	assert.NoError(t, storage.Delete(""))
}

func TestLocalStorage_DeleteRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	assert.Error(t, storage.Delete("../../etc/passwd"))
	assert.Error(t, storage.Delete("/etc/passwd"))
}
