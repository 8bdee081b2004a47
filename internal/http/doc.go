// Package http provides an HTTP client for downloading full-size photos.
//
// The Client in this package handles:
//   - A stable User-Agent header
//   - File downloads with progress tracking
//   - File size retrieval via HEAD requests
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	client.DownloadFile(ctx, photoURL, "/photos/Kitchen - 01.jpg", func(written, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(written)/float64(total)*100)
//	})
//
// Downloads never overwrite an existing file; colliding destinations fail
// with an error wrapping os.ErrExist.
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress
// tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
