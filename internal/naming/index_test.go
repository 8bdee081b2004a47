package naming

import (
	"testing"

	"github.com/Nius/Photo-Renamer/internal/model"
)

// photoWith builds a photo as it would arrive at the allocator: working
// description already normalized, preference already parsed.
func photoWith(description string, preferred int) *model.Photo {
	return &model.Photo{
		Description:    description,
		PreferredIndex: preferred,
		AssignedIndex:  -1,
	}
}

func TestAllocator_RegistrationOrder(t *testing.T) {
	a := photoWith("Bathroom", -1)
	b := photoWith("Bathroom", -1)

	alloc := NewAllocator(2)
	alloc.Register(a)
	alloc.Register(b)
	alloc.AppendAll(false)

	if a.Description != "Bathroom - 01" {
		t.Errorf("first registered = %q, want %q", a.Description, "Bathroom - 01")
	}
	if b.Description != "Bathroom - 02" {
		t.Errorf("second registered = %q, want %q", b.Description, "Bathroom - 02")
	}
}

func TestAllocator_SingletonSuppression(t *testing.T) {
	p := photoWith("Garage", -1)

	alloc := NewAllocator(2)
	alloc.Register(p)
	alloc.AppendAll(false)

	if p.Description != "Garage" {
		t.Errorf("Description = %q, want bare %q", p.Description, "Garage")
	}
	if p.AssignedIndex != -1 {
		t.Errorf("AssignedIndex = %d, want -1", p.AssignedIndex)
	}
}

func TestAllocator_SingletonIndexedWhenConfigured(t *testing.T) {
	p := photoWith("Garage", -1)

	alloc := NewAllocator(2)
	alloc.Register(p)
	alloc.AppendAll(true)

	if p.Description != "Garage - 01" {
		t.Errorf("Description = %q, want %q", p.Description, "Garage - 01")
	}
}

func TestAllocator_PreferenceHonored(t *testing.T) {
	first := photoWith("Kitchen", -1)
	second := photoWith("Kitchen", 2)
	third := photoWith("Kitchen", -1)

	alloc := NewAllocator(2)
	alloc.Register(first)
	alloc.Register(second)
	alloc.Register(third)
	alloc.AppendAll(false)

	if second.AssignedIndex != 2 {
		t.Errorf("preferring photo got index %d, want 2", second.AssignedIndex)
	}
	if first.AssignedIndex != 1 || third.AssignedIndex != 3 {
		t.Errorf("gap-fillers got %d and %d, want 1 and 3", first.AssignedIndex, third.AssignedIndex)
	}
}

func TestAllocator_PreferenceCollision(t *testing.T) {
	first := photoWith("Kitchen", 1)
	second := photoWith("Kitchen", 1)

	alloc := NewAllocator(2)
	alloc.Register(first)
	alloc.Register(second)
	alloc.AppendAll(false)

	// The first registrant wins the contested slot; the loser is treated
	// as having no preference.
	if first.AssignedIndex != 1 {
		t.Errorf("first registrant got %d, want 1", first.AssignedIndex)
	}
	if second.AssignedIndex != 2 {
		t.Errorf("second registrant got %d, want 2", second.AssignedIndex)
	}
}

func TestAllocator_OutOfRangePreferencesCompact(t *testing.T) {
	// Preferences far beyond the group size still produce a gap-free
	// 1..N sequence, assigned in ascending preference order.
	low := photoWith("Deck", 5)
	high := photoWith("Deck", 7)

	alloc := NewAllocator(2)
	alloc.Register(high)
	alloc.Register(low)
	alloc.AppendAll(false)

	if low.AssignedIndex != 1 {
		t.Errorf("preference 5 got %d, want 1", low.AssignedIndex)
	}
	if high.AssignedIndex != 2 {
		t.Errorf("preference 7 got %d, want 2", high.AssignedIndex)
	}
}

func TestAllocator_GapFillThenPhaseTwo(t *testing.T) {
	// One photo prefers slot 2, one no-preference photo fills slot 1,
	// and the photo preferring 9 is swept up by phase 2 for slot 3.
	pref2 := photoWith("Hall", 2)
	pref9 := photoWith("Hall", 9)
	filler := photoWith("Hall", -1)

	alloc := NewAllocator(2)
	alloc.Register(pref2)
	alloc.Register(pref9)
	alloc.Register(filler)
	alloc.AppendAll(false)

	if filler.AssignedIndex != 1 {
		t.Errorf("filler got %d, want 1", filler.AssignedIndex)
	}
	if pref2.AssignedIndex != 2 {
		t.Errorf("preference 2 got %d, want 2", pref2.AssignedIndex)
	}
	if pref9.AssignedIndex != 3 {
		t.Errorf("preference 9 got %d, want 3", pref9.AssignedIndex)
	}
}

func TestAllocator_UniqueGapFreeIndexes(t *testing.T) {
	photos := []*model.Photo{
		photoWith("Porch", 3),
		photoWith("Porch", 3),
		photoWith("Porch", 250),
		photoWith("Porch", -1),
		photoWith("Porch", 1),
		photoWith("Porch", -1),
	}

	alloc := NewAllocator(2)
	for _, p := range photos {
		alloc.Register(p)
	}
	alloc.AppendAll(false)

	seen := make(map[int]bool)
	for _, p := range photos {
		if p.AssignedIndex < 1 || p.AssignedIndex > len(photos) {
			t.Errorf("index %d out of range [1, %d]", p.AssignedIndex, len(photos))
		}
		if seen[p.AssignedIndex] {
			t.Errorf("index %d assigned twice", p.AssignedIndex)
		}
		seen[p.AssignedIndex] = true
	}
}

func TestAllocator_CaseInsensitiveGrouping(t *testing.T) {
	a := photoWith("Kitchen", -1)
	b := photoWith("KITCHEN", -1)

	alloc := NewAllocator(2)
	alloc.Register(a)
	alloc.Register(b)
	alloc.AppendAll(false)

	// One group of two: both get indexes, each keeping its own casing.
	if a.Description != "Kitchen - 01" {
		t.Errorf("a.Description = %q, want %q", a.Description, "Kitchen - 01")
	}
	if b.Description != "KITCHEN - 02" {
		t.Errorf("b.Description = %q, want %q", b.Description, "KITCHEN - 02")
	}
}

func TestFormatIndex(t *testing.T) {
	tests := []struct {
		index, width int
		want         string
	}{
		{1, 2, " - 01"},
		{42, 2, " - 42"},
		{1, 3, " - 001"},
		{42, 3, " - 042"},
		{100, 3, " - 100"},
	}

	for _, tt := range tests {
		if got := FormatIndex(tt.index, tt.width); got != tt.want {
			t.Errorf("FormatIndex(%d, %d) = %q, want %q", tt.index, tt.width, got, tt.want)
		}
	}
}
