package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"coursehub/config"
)

// SaveUploadedFile stores an uploaded blob under destDir with a unique
// timestamped name and returns the stored path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := time.Now().Format("20060102150405") + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// GetFileURL resolves a stored path to the public URL it is served under.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return config.AppConfig.BaseURL + "/" + filepath.ToSlash(filePath)
}
