package filemgr

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"eventforge/utils"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

type PictureType string

const (
	PicBanner PictureType = "banner"
	PicThumb  PictureType = "thumb"
)

const uploadRoot = "static/eventpic"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var ErrInvalidImage = errors.New("invalid image file")

// SaveBanner validates and stores an uploaded banner image, writing a
// 300px-wide thumbnail next to it. Returns the stored banner filename.
func SaveBanner(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(utils.SanitizeFilename(header.Filename)))
	if !allowedExtensions[ext] {
		return "", ErrInvalidImage
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return "", ErrInvalidImage
	}

	name := utils.GetUUID()
	bannerDir := filepath.Join(uploadRoot, string(PicBanner))
	thumbDir := filepath.Join(uploadRoot, string(PicThumb))
	for _, dir := range []string{bannerDir, thumbDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	filename := name + ".jpg"
	if err := imaging.Save(img, filepath.Join(bannerDir, filename)); err != nil {
		return "", fmt.Errorf("save banner: %w", err)
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, filename)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}

	return filename, nil
}
