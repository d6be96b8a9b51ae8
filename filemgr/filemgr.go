package filemgr

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"wayfare/utils"

	"github.com/disintegration/imaging"
)

var uploadRoot = func() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}()

// SaveImageWithThumb stores the uploaded image under uploadRoot/subdir and
// writes a resized thumbnail next to it. Returns the stored file name.
func SaveImageWithThumb(file multipart.File, header *multipart.FileHeader, subdir string, thumbWidth int) (string, error) {
	dir := filepath.Join(uploadRoot, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := utils.GetUUID() + ext

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), raw, 0644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	thumbPath := filepath.Join(dir, "thumb_"+name)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}

	return name, nil
}
