package dash

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/Nius/Photo-Renamer/internal/model"
)

// ErrUnrecognizedLayout is returned when a file reads fine but the photo
// album markup cannot be located in it. This usually means the portal has
// changed the structure of its pages.
var ErrUnrecognizedLayout = errors.New("page structure was unrecognizable")

// quotedPrintableNewline matches the soft line breaks that MHTML inserts
// into long attribute values. They must go before anything else, because a
// break can land in the middle of a URL or an entity.
var quotedPrintableNewline = regexp.MustCompile(`=\r?\n`)

// albumPanel captures the div that holds every photo on the page: from the
// RadAjaxPanel declaration through the end of the line carrying the last
// DateUploaded span.
var albumPanel = regexp.MustCompile(`<div class="RadAjaxPanel".*DivPhotosPanel" style="display: block;">([\S\s]*DateUploaded">.*</div>)`)

// ProcessFile extracts photos from a saved album page at the given path.
//
// The file is expected to be an MHTML (or plain HTML) capture of a portal
// album page, the kind a browser's "save page" command produces. See
// Parse for the extraction rules.
//
// Returns an error if the file cannot be read or the album markup is not
// found; individual malformed photo entries are skipped, not fatal.
func ProcessFile(path string) ([]*model.Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read album page: %w", err)
	}
	photos, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return photos, nil
}

// Parse extracts photos from the raw contents of a saved album page.
//
// Saved pages arrive quoted-printable encoded: every equals sign becomes
// "=3D" and long lines are split with "=\r\n" soft breaks. Parse performs
// the following steps:
//
//  1. Undoes the quoted-printable transport encoding
//  2. Isolates the photo album panel from the surrounding page chrome
//  3. Walks the anchor of each album photo, reading the full-size image
//     URL from its href and the description and upload date from the
//     escaped HTML held in its data-title attribute
//
// A photo whose URL does not parse or whose data-title lacks a
// description or date span is skipped; one bad entry should not lose the
// rest of the album. Parse returns ErrUnrecognizedLayout when the album
// panel itself cannot be found.
func Parse(raw string) ([]*model.Photo, error) {
	cleaned := quotedPrintableNewline.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, `3D"`, `"`)
	cleaned = strings.ReplaceAll(cleaned, "=3D", "=")

	match := albumPanel.FindStringSubmatch(cleaned)
	if match == nil {
		return nil, ErrUnrecognizedLayout
	}
	panel := match[1]

	var photos []*model.Photo
	for _, anchor := range photoAnchors(panel) {
		photo, ok := parseAnchor(anchor)
		if !ok {
			continue
		}
		photos = append(photos, photo)
	}
	return photos, nil
}

// photoAnchors returns the opening <a ...> tag of every album photo in the
// panel. The photo itself is an img with class "album_photo", but that img
// is only a thumbnail; the enclosing anchor carries the full-size URL and
// the photo metadata, so the anchors are what we collect.
func photoAnchors(panel string) []string {
	var anchors []string
	for from := 0; ; {
		rel := strings.Index(panel[from:], `class="album_photo"`)
		if rel == -1 {
			break
		}
		at := from + rel
		from = at + 1

		open := strings.LastIndex(panel[:at], "<a ")
		if open == -1 {
			continue
		}
		end := strings.Index(panel[open:], ">")
		if end == -1 {
			continue
		}
		anchors = append(anchors, panel[open:open+end+1])
	}
	return anchors
}

// parseAnchor builds a photo from one album anchor tag. Reports false if
// any required piece is missing or malformed.
func parseAnchor(anchor string) (*model.Photo, bool) {
	src, ok := attrValue(anchor, "href")
	if !ok {
		return nil, false
	}
	src = strings.ReplaceAll(src, "&amp;", "&")
	parsed, err := url.Parse(src)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, false
	}

	// The description and date live in escaped HTML stored as the
	// data-title attribute. Unescape it and read the spans inside.
	title, ok := attrValue(anchor, "data-title")
	if !ok {
		return nil, false
	}
	title = html.UnescapeString(strings.ReplaceAll(title, "&amp;", "&"))

	description, ok := spanText(title, "description")
	if !ok {
		return nil, false
	}
	date, ok := spanText(title, "DateUploaded")
	if !ok {
		return nil, false
	}

	return model.NewPhoto(src, html.UnescapeString(description), date), true
}

// attrValue reads a double-quoted attribute from a single HTML tag.
func attrValue(tag, name string) (string, bool) {
	marker := name + `="`
	start := strings.Index(tag, marker)
	if start == -1 {
		return "", false
	}
	start += len(marker)
	end := strings.Index(tag[start:], `"`)
	if end == -1 {
		return "", false
	}
	return tag[start : start+end], true
}

// spanText returns the inner text of the first span whose id contains the
// given fragment. Span ids on the portal are prefixed with a per-photo
// numeric key, so matching on the whole id is not possible.
func spanText(content, idFragment string) (string, bool) {
	for from := 0; ; {
		rel := strings.Index(content[from:], "<span")
		if rel == -1 {
			return "", false
		}
		open := from + rel
		openEnd := strings.Index(content[open:], ">")
		if openEnd == -1 {
			return "", false
		}
		tag := content[open : open+openEnd+1]
		from = open + openEnd + 1

		id, ok := attrValue(tag, "id")
		if !ok || !strings.Contains(id, idFragment) {
			continue
		}

		end := strings.Index(content[from:], "</span>")
		if end == -1 {
			return "", false
		}
		return content[from : from+end], true
	}
}
