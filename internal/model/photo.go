package model

import (
	"regexp"
	"strconv"
)

// MaxPreferredIndex is the largest preferred index honored when parsing a
// description. Anything above this is treated as "no preference" so that
// the index allocator's preference table stays small.
const MaxPreferredIndex = 299

// Photo represents a single photograph extracted from a DASH album archive.
//
// A Photo carries two descriptions: the immutable OriginalDescription as it
// appeared in the archive, and the mutable working Description produced by
// the naming pipeline. Every pipeline pass recomputes Description and Status
// from OriginalDescription, so a stale Description is only meaningful
// relative to the most recent pass.
//
// Once Customized is set (the user typed a description by hand), the
// pipeline must skip the photo entirely: the user's text is authoritative
// and only an explicit un-customize returns the photo to automatic
// processing.
type Photo struct {
	// SourceURL is the full-size photo location, used only for download.
	SourceURL string

	// OriginalDescription is the raw description from the archive.
	// Never modified after construction.
	OriginalDescription string

	// PreferredIndex is the numeric hint parsed from the tail of
	// OriginalDescription at construction, or -1 when absent, unparsable,
	// or above MaxPreferredIndex. A trailing parenthetical number such as
	// "Kitchen (4)" takes priority over a bare one such as "Kitchen 4".
	// Never recomputed.
	PreferredIndex int

	// UploadDate is the upload date string as reported by the archive.
	// Opaque to the naming pipeline; the downloader parses it when
	// stamping file timestamps.
	UploadDate string

	// Status reflects the photo's readiness or error state.
	Status Status

	// Description is the current working filename stem candidate.
	Description string

	// AssignedIndex is the sequential index chosen by the allocator for
	// the most recent pass, or -1 before allocation.
	AssignedIndex int

	// Customized marks the description as user-supplied.
	Customized bool
}

// Trailing-number patterns for preferred index detection.
// The parenthetical form is checked first; "Bathroom 4 (51)" prefers 51.
var (
	parenIndexPattern = regexp.MustCompile(`\(([0-9]+)\)$`)
	bareIndexPattern  = regexp.MustCompile(`([0-9]+)$`)
)

// NewPhoto creates a Photo and derives its PreferredIndex from the
// description.
func NewPhoto(sourceURL, description, uploadDate string) *Photo {
	return &Photo{
		SourceURL:           sourceURL,
		OriginalDescription: description,
		PreferredIndex:      ParsePreferredIndex(description),
		UploadDate:          uploadDate,
		Status:              StatusReady,
		AssignedIndex:       -1,
	}
}

// ParsePreferredIndex extracts the preferred index hint from a raw
// description. It returns -1 when the description carries no trailing
// number, when the number does not parse, or when it exceeds
// MaxPreferredIndex.
func ParsePreferredIndex(description string) int {
	match := parenIndexPattern.FindStringSubmatch(description)
	if match == nil {
		match = bareIndexPattern.FindStringSubmatch(description)
	}
	if match == nil {
		return -1
	}

	index, err := strconv.Atoi(match[1])
	if err != nil || index > MaxPreferredIndex {
		// A number too large for int lands here too.
		return -1
	}
	return index
}
