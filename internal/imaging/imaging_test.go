package imaging

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// pngFixture encodes a solid image of the given size as PNG.
func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDownscale(t *testing.T) {
	svc := NewService()

	scaled, err := svc.Downscale(context.Background(), pngFixture(t, 10, 5), 4)
	if err != nil {
		t.Fatalf("Downscale() error = %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(scaled))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Errorf("dimensions = %dx%d, want 4x2", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDownscaleNeverEnlarges(t *testing.T) {
	svc := NewService()

	scaled, err := svc.Downscale(context.Background(), pngFixture(t, 6, 3), 100)
	if err != nil {
		t.Fatalf("Downscale() error = %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(scaled))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 3 {
		t.Errorf("dimensions = %dx%d, want unchanged 6x3", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestConvertToJPEG(t *testing.T) {
	svc := NewService()

	converted, err := svc.ConvertToJPEG(context.Background(), pngFixture(t, 3, 3))
	if err != nil {
		t.Fatalf("ConvertToJPEG() error = %v", err)
	}

	_, format, err := image.Decode(bytes.NewReader(converted))
	if err != nil {
		t.Fatal(err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
}

func TestConvertToJPEGRejectsGarbage(t *testing.T) {
	svc := NewService()
	if _, err := svc.ConvertToJPEG(context.Background(), []byte("not an image")); err == nil {
		t.Error("ConvertToJPEG() should fail on non-image data")
	}
}

func TestStampTimes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	stamp := time.Date(2020, 6, 15, 15, 4, 5, 0, time.Local)
	if err := StampTimes(path, stamp); err != nil {
		t.Fatalf("StampTimes() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(stamp) {
		t.Errorf("ModTime = %v, want %v", info.ModTime(), stamp)
	}
}

func TestClearDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := ClearDir(dir); err != nil {
		t.Fatalf("ClearDir() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("%d entries remain, want 0", len(entries))
	}
}

func TestClearDirRefusesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := ClearDir(dir); err == nil {
		t.Fatal("ClearDir() should refuse a directory containing subdirectories")
	}

	// Nothing may have been deleted.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("%d entries remain, want 2", len(entries))
	}
}

func TestClearDirMissingIsNoop(t *testing.T) {
	if err := ClearDir(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("ClearDir() on a missing directory = %v, want nil", err)
	}
}
