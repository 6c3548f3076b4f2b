package students

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxPhotoSize = 2 * 1024 * 1024 // 2MB

var allowedPhotoExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// ValidatePhoto checks the upload against the allowed image extensions and
// size cap.
func ValidatePhoto(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		return fmt.Errorf("unsupported file type %q: allowed types are png, jpg, jpeg, gif", ext)
	}
	if file.Size > maxPhotoSize {
		return fmt.Errorf("file too large: maximum size is 2MB")
	}
	return nil
}

// PhotoFilename builds a collision-free stored name for an upload.
func PhotoFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
}
