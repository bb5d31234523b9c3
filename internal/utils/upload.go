package utils

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
)

// MaxUploadBytes caps uploaded files at 3 MiB.
const MaxUploadBytes = 3 << 20

// ErrFileTooLarge is returned for uploads past MaxUploadBytes.
var ErrFileTooLarge = errors.New("file exceeds 3 MiB limit")

// SaveUpload stages a multipart file into tmpDir and then relocates it to
// destDir under baseName plus the original extension. It returns the final
// file name. The two-step copy keeps half-written files out of the public
// directory.
func SaveUpload(fh *multipart.FileHeader, tmpDir, destDir, baseName string) (string, error) {
	if fh.Size > MaxUploadBytes {
		return "", ErrFileTooLarge
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	staged, err := os.CreateTemp(tmpDir, "upload-*")
	if err != nil {
		return "", err
	}
	stagedPath := staged.Name()
	if _, err := io.Copy(staged, io.LimitReader(src, MaxUploadBytes+1)); err != nil {
		staged.Close()
		_ = os.Remove(stagedPath)
		return "", err
	}
	if err := staged.Close(); err != nil {
		_ = os.Remove(stagedPath)
		return "", err
	}

	name := baseName + uploadExt(fh)
	if err := os.Rename(stagedPath, filepath.Join(destDir, name)); err != nil {
		_ = os.Remove(stagedPath)
		return "", err
	}
	return name, nil
}

// uploadExt picks a file extension from the original name, falling back to
// the declared content type and finally ".jpg".
func uploadExt(fh *multipart.FileHeader) string {
	if ext := filepath.Ext(fh.Filename); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(fh.Header.Get("Content-Type")); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".jpg"
}
