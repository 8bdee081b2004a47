package imaging

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// Service provides image post-processing for downloaded photos.
//
// Service is used to:
//   - Downscale photos to fit a maximum dimension before saving
//   - Convert photos to JPEG format
//
// Example usage:
//
//	svc := imaging.NewService()
//
//	data, _ := client.DownloadBytes(ctx, photo.SourceURL)
//	data, _ = svc.Downscale(ctx, data, 2048)
//	data, _ = svc.ConvertToJPEG(ctx, data)
type Service struct{}

// NewService creates a new Service.
func NewService() *Service {
	return &Service{}
}

// Downscale resizes a photo so that neither dimension exceeds maxSize,
// preserving the aspect ratio. A photo already within bounds is still
// re-encoded as JPEG.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused)
//   - data: Original photo data (JPEG, PNG, etc.)
//   - maxSize: Maximum width and height in pixels
//
// Returns the photo as JPEG-encoded bytes. The Catmull-Rom algorithm is
// used for high-quality scaling.
//
// Example:
//
//	// A 4000x3000 photo becomes 2048x1536.
//	// A 1600x1200 photo keeps its dimensions (but is re-encoded).
//	scaled, err := svc.Downscale(ctx, data, 2048)
func (s *Service) Downscale(ctx context.Context, data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Shrink the longer side to maxSize, never enlarge.
	if width > maxSize || height > maxSize {
		if width >= height {
			height = height * maxSize / width
			width = maxSize
		} else {
			width = width * maxSize / height
			height = maxSize
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ConvertToJPEG converts a photo to JPEG format.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused)
//   - data: Original photo data (JPEG, PNG, GIF, etc.)
//
// Returns the photo as JPEG-encoded bytes with 90% quality. Input that is
// already JPEG is re-encoded, which may slightly change file size.
func (s *Service) ConvertToJPEG(ctx context.Context, data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
