package admin

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
)

func photoHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="photo"; filename="photo.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if err := png.Encode(part, image.NewRGBA(image.Rect(0, 0, 400, 400))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(10 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}

	files := req.MultipartForm.File["photo"]
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	return files[0]
}

func TestProcessProductImageWritesOriginalAndThumbnail(t *testing.T) {
	orig := productPicDir
	productPicDir = t.TempDir()
	defer func() { productPicDir = orig }()

	path, err := processProductImage(photoHeader(t), "prod123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/static/productpic/prod123.jpg" {
		t.Fatalf("unexpected public path %q", path)
	}

	if _, err := os.Stat(filepath.Join(productPicDir, "prod123.jpg")); err != nil {
		t.Fatalf("missing compressed image: %v", err)
	}
	if _, err := os.Stat(filepath.Join(productPicDir, "thumb", "prod123.jpg")); err != nil {
		t.Fatalf("missing thumbnail: %v", err)
	}
}
