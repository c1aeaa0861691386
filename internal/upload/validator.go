package upload

import (
	"errors"
	"path/filepath"
	"strings"
)

// MaxFileSize matches the original gateway's 10MB upload limit.
const MaxFileSize = 10 << 20

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

func ValidateImageExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("only image files are allowed")
	}

	return nil
}
