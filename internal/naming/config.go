package naming

// Length limits that cannot be overridden by configuration.
const (
	// OSMaxPath is the hard ceiling on a computed filename length: one
	// less than the smallest path limit among the major platforms
	// (Windows 260, Linux 255, macOS 1024).
	OSMaxPath = 254

	// MinimumLength is the hard floor on a computed filename length:
	// room for an index suffix such as " - 001" plus at least two
	// characters of identification.
	MinimumLength = 8
)

// ReplacementChar selects what replaces invalid filename characters.
type ReplacementChar int

const (
	// ReplaceHyphen substitutes "-" for each invalid character.
	ReplaceHyphen ReplacementChar = iota

	// ReplaceComma substitutes "," for each invalid character.
	ReplaceComma

	// ReplaceNothing removes invalid characters outright. Whitespace runs
	// left behind by removed characters are collapsed afterwards.
	ReplaceNothing
)

// Char returns the replacement text. A string rather than a rune, because
// ReplaceNothing is zero characters.
func (r ReplacementChar) Char() string {
	switch r {
	case ReplaceHyphen:
		return "-"
	case ReplaceComma:
		return ","
	default:
		return ""
	}
}

// OverlengthBehavior selects how the normalizer handles computed filenames
// that exceed the configured or OS-derived length limit.
type OverlengthBehavior int

const (
	// Refuse blocks execution when any name is too long.
	Refuse OverlengthBehavior = iota

	// Warn flags too-long names but permits execution.
	Warn

	// Truncate chops the excess off the description, then the suffix,
	// then the prefix.
	Truncate

	// DropVowels removes vowels from the description, suffix, and prefix
	// in turn, then falls back to Truncate if that is not enough.
	DropVowels

	// DoNothing ignores the configured limit entirely. The hard OS
	// ceiling still applies.
	DoNothing
)

// Config is a read-only snapshot of the options driving one pipeline pass.
//
// A Config is created fresh for each pass (see config.Settings
// ToNamingConfig) and never mutated, so it is safe to share across
// concurrent reads within the pass.
type Config struct {
	// Prefix is prepended to every computed filename stem.
	Prefix string

	// Suffix is appended to every computed filename stem, before the
	// index text.
	Suffix string

	// Undescribed is the fallback description for photos whose
	// description sanitizes down to nothing.
	Undescribed string

	// Replacement selects the substitute for invalid characters.
	Replacement ReplacementChar

	// RemoveTrailingNumbers strips trailing bare and parenthetical
	// numbers from descriptions before any other transformation.
	RemoveTrailingNumbers bool

	// CorrectCaps rewrites descriptions in title-style capitalization.
	CorrectCaps bool

	// IndexUnique appends an index even to photos whose description is
	// unique within the batch.
	IndexUnique bool

	// OverLength is the remediation policy for names over the limit.
	OverLength OverlengthBehavior

	// UserMaxLength is the user-configured maximum filename length.
	UserMaxLength int

	// OSMaxLength is the maximum filename length permitted by the
	// platform given the chosen output directory: OSMaxPath minus the
	// directory path length.
	OSMaxLength int
}
