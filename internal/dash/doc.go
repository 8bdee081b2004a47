// Package dash extracts photo metadata from saved portal album pages.
//
// The input is a page capture (MHTML or HTML) of a photo album as saved
// from a browser. The package undoes the quoted-printable transport
// encoding those captures use, locates the album panel within the page,
// and yields one Photo per entry with its full-size image URL,
// description, and upload date:
//
//	photos, err := dash.ProcessFile("album.mhtml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range photos {
//	    fmt.Println(p.OriginalDescription, p.SourceURL)
//	}
//
// Individual entries that are missing data are skipped silently; only a
// page whose overall structure is unrecognizable produces an error.
package dash
