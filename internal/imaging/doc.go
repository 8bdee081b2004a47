// Package imaging provides file system and image processing utilities.
//
// This package contains functions for:
//   - Directory creation and cleanup
//   - Timestamp stamping of saved photos
//   - Photo downscaling and format conversion
//
// # File Operations
//
//	// Ensure the output directory exists
//	err := imaging.EnsureDir("/photos/archive")
//
//	// Stamp a saved photo with its upload date
//	err := imaging.StampTimes("/photos/Kitchen - 01.jpg", uploaded)
//
//	// Empty a staging directory (refuses if it contains subdirectories)
//	err := imaging.ClearDir(tempDir)
//
// # Image Processing
//
// The Service handles photo manipulation:
//
//	svc := imaging.NewService()
//
//	// Downscale so neither dimension exceeds 2048 pixels
//	scaled, _ := svc.Downscale(ctx, data, 2048)
//
//	// Convert to JPEG
//	jpg, _ := svc.ConvertToJPEG(ctx, data)
package imaging
