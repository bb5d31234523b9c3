package utils

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxUploadBytes))
	fhs := req.MultipartForm.File[field]
	require.Len(t, fhs, 1)
	return fhs[0]
}

func TestSaveUpload(t *testing.T) {
	tmp := t.TempDir()
	dest := t.TempDir()

	fh := multipartFile(t, "avatar", "me.png", []byte("png-bytes"))
	name, err := SaveUpload(fh, tmp, dest, "7_avatar")
	require.NoError(t, err)
	assert.Equal(t, "7_avatar.png", name)

	got, err := os.ReadFile(filepath.Join(dest, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), got)

	// The staging directory is left clean on success.
	left, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestSaveUploadRejectsOversizedFile(t *testing.T) {
	fh := multipartFile(t, "avatar", "big.jpg", []byte("x"))
	fh.Size = MaxUploadBytes + 1

	_, err := SaveUpload(fh, t.TempDir(), t.TempDir(), "7_avatar")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveUploadExtensionFallback(t *testing.T) {
	fh := multipartFile(t, "avatar", "noext", []byte("data"))
	fh.Header.Del("Content-Type")

	name, err := SaveUpload(fh, t.TempDir(), t.TempDir(), "7_avatar")
	require.NoError(t, err)
	assert.Equal(t, "7_avatar.jpg", name)
}
