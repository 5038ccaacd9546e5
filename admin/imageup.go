package admin

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"domz/utils"

	"github.com/disintegration/imaging"
)

var productPicDir = "./static/productpic"

// processProductImage re-encodes the uploaded photo as JPEG and writes
// a 300px thumbnail next to it. Returns the public path of the full
// image.
func processProductImage(file *multipart.FileHeader, productID string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	fileName := productID + ".jpg"
	originalPath := filepath.Join(productPicDir, fileName)
	thumbDir := filepath.Join(productPicDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := utils.EnsureDir(productPicDir); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := utils.EnsureDir(thumbDir); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, originalPath, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/static/productpic/" + fileName, nil
}
