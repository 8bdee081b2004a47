// Package download orchestrates the full photo job.
//
// The Manager ties the other packages together: it extracts photos from
// saved album pages (dash), runs the naming pipeline over them (naming),
// and downloads the renamed photos concurrently with retry and timestamp
// stamping (http, imaging).
//
// # Usage Flow
//
//	manager := download.NewManager(settings, func(e download.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//
//	// 1. Extract photos from the saved pages
//	err := manager.Initialize([]string{"album.mhtml"})
//
//	// 2. Compute filenames; repeat after any option change
//	result := manager.Plan()
//
//	// 3. Review: fix refused photos by hand if needed
//	manager.Customize(3, "Main Bathroom")
//
//	// 4. Download everything
//	err = manager.Execute(ctx)
//
// # Execution Gate
//
// Execute refuses to start while any photo carries a blocking status
// (ERROR_MINOR or worse). Once running, an individual photo failure marks
// that photo ERROR_SEVERE and the rest of the batch continues.
//
// # Progress Reporting
//
// All user-facing feedback flows through a single callback as
// level-tagged ProgressEvents; the CLI prints them and the TUI styles
// them. Byte and file counts for progress bars come from Progress().
package download
