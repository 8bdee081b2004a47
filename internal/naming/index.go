package naming

import (
	"fmt"
	"strings"

	"github.com/Nius/Photo-Renamer/internal/model"
)

// Allocator assigns sequential indexes to photos that share a description.
//
// Photos are grouped by case-insensitive equality of their working
// description. Within a group, a photo that ends with a trailing number in
// its original description "prefers" that index, and the allocator honors
// the preference when it can: the first photo to register a given
// preferred value wins it, later photos requesting the same value are
// treated as having no preference, and a preferred slot is surrendered
// when it is needed to keep the sequence gap-free.
//
// Use is strictly two-pass: Register every photo in the batch, then call
// AppendAll exactly once. Interleaving the two would let early groups
// close before all of their members arrive.
type Allocator struct {
	width  int
	order  []string
	groups map[string]*descriptionGroup
}

// descriptionGroup tracks the photos registered under one description.
type descriptionGroup struct {
	withPref map[int]*model.Photo
	nonPref  []*model.Photo
}

// NewAllocator creates an Allocator producing indexes zero-padded to the
// given digit width (2 or 3, chosen from the batch size).
func NewAllocator(width int) *Allocator {
	return &Allocator{
		width:  width,
		groups: make(map[string]*descriptionGroup),
	}
}

// Register adds a photo for later index assignment, grouped by its current
// working description.
func (a *Allocator) Register(photo *model.Photo) {
	key := strings.ToLower(photo.Description)
	group := a.groups[key]
	if group == nil {
		group = &descriptionGroup{withPref: make(map[int]*model.Photo)}
		a.groups[key] = group
		a.order = append(a.order, key)
	}
	group.register(photo)
}

// register files the photo under its preference, demoting it to the
// no-preference list when the preferred value is absent or already taken.
func (g *descriptionGroup) register(photo *model.Photo) {
	if photo.PreferredIndex < 0 {
		g.nonPref = append(g.nonPref, photo)
		return
	}
	if g.withPref[photo.PreferredIndex] != nil {
		g.nonPref = append(g.nonPref, photo)
		return
	}
	g.withPref[photo.PreferredIndex] = photo
}

// AppendAll assigns every registered photo its final index and appends the
// index text to its description. Groups are processed in registration
// order, so allocation is deterministic for a given batch.
//
// When indexUnique is false, a group with exactly one member keeps its
// bare description: a truly unique name needs no index.
func (a *Allocator) AppendAll(indexUnique bool) {
	for _, key := range a.order {
		a.groups[key].appendIndexes(a.width, indexUnique)
	}
}

func (g *descriptionGroup) appendIndexes(width int, indexUnique bool) {
	total := len(g.withPref) + len(g.nonPref)

	if !indexUnique && total == 1 {
		return
	}

	current := 1

	// Phase 1: walk the slots upward. A slot goes to the photo that
	// prefers it, if any; otherwise to the next no-preference photo in
	// registration order. The phase ends when a slot has no preferred
	// claimant and the no-preference supply is exhausted.
	nextNonPref := 0
	for current <= total {
		if preferred := g.withPref[current]; preferred != nil {
			assignIndex(preferred, current, width)
		} else {
			if nextNonPref >= len(g.nonPref) {
				break
			}
			assignIndex(g.nonPref[nextNonPref], current, width)
			nextNonPref++
		}
		current++
	}

	// Phase 2: keep walking the slots, consuming the remaining preferred
	// photos in ascending preference order and ignoring their preferences
	// from here on. The scan resumes above the slot phase 1 just found
	// empty; every unconsumed preference is strictly greater than it, so
	// nothing is skipped and the scan always lands on a photo.
	nextPreferred := current + 1
	for current <= total {
		var preferred *model.Photo
		for preferred == nil {
			preferred = g.withPref[nextPreferred]
			nextPreferred++
		}
		assignIndex(preferred, current, width)
		current++
	}
}

// assignIndex records the final index on the photo and appends the index
// text to its working description.
func assignIndex(photo *model.Photo, index, width int) {
	photo.AssignedIndex = index
	photo.Description += FormatIndex(index, width)
}

// FormatIndex renders the index suffix appended to a description, e.g.
// " - 04" at width 2 or " - 004" at width 3.
func FormatIndex(index, width int) string {
	return fmt.Sprintf(" - %0*d", width, index)
}
