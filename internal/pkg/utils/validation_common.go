package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
)

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

func ValidateImage(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	if fileHeader == nil {
		return errors.New("image file is missing")
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return errors.New("file size exceeds the maximum limit")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range allowedImageExtensions {
		if ext == allowed {
			return nil
		}
	}
	return errors.New("invalid file format")
}

// ParseUrlParamID parses the positive integer ids used by the clinic backend.
func ParseUrlParamID(param string) (int, error) {
	if param == "" {
		return 0, errors.New("parameter is missing from url path")
	}

	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("parameter must be a positive number")
	}
	return id, nil
}
