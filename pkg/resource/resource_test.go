package resource

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeSizeEmbedded(t *testing.T) {
	data := EmbeddedData{Data: encodePNG(t, 12, 34)}
	width, height, err := DecodeSize(data)
	if err != nil {
		t.Fatalf("DecodeSize: %v", err)
	}
	if width != 12 || height != 34 {
		t.Fatalf("expected 12x34, got %dx%d", width, height)
	}
}

func TestDecodeSizeNone(t *testing.T) {
	if _, _, err := DecodeSize(None{}); err == nil {
		t.Fatal("expected an error for a None resource")
	}
}

func TestDecodeFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, encodePNG(t, 4, 4), 0o644); err != nil {
		t.Fatalf("writing test image: %v", err)
	}

	img, err := Decode(AbsoluteFilePath{Path: path})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Fatalf("expected 4x4 image, got %v", bounds)
	}
}

func TestManifestResolve(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "resources.yaml")
	content := "resources:\n  logo: images/logo.png\n  banner: /opt/assets/banner.png\n"
	if err := os.WriteFile(manifestPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	m, err := LoadManifest(manifestPath)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}

	logo, ok := m.Resolve("logo").(AbsoluteFilePath)
	if !ok {
		t.Fatalf("expected AbsoluteFilePath, got %T", m.Resolve("logo"))
	}
	if want := filepath.Join(dir, "images", "logo.png"); logo.Path != want {
		t.Fatalf("expected %q, got %q", want, logo.Path)
	}

	banner, ok := m.Resolve("banner").(AbsoluteFilePath)
	if !ok || banner.Path != "/opt/assets/banner.png" {
		t.Fatalf("absolute paths should pass through, got %#v", m.Resolve("banner"))
	}

	if _, ok := m.Resolve("missing").(None); !ok {
		t.Fatalf("unknown names should resolve to None, got %T", m.Resolve("missing"))
	}
}
