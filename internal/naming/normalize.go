package naming

import (
	"regexp"
	"strings"

	"github.com/Nius/Photo-Renamer/internal/model"
)

// Trailing-number patterns for description cleanup. The bare form runs
// first so a description like "Bathroom 4 (51)" still ends with its
// parenthetical index when the second pattern is applied.
var (
	bareTrailingNumber  = regexp.MustCompile(`[0-9]+$`)
	parenTrailingNumber = regexp.MustCompile(` *\([0-9]+\)$`)
)

// Echo carries the sanitized prefix/suffix/fallback values back to the
// caller so the configuration surface can reflect them without triggering
// another pass.
type Echo struct {
	Prefix      string
	Suffix      string
	Undescribed string
}

// Result is the outcome of one batch pass.
type Result struct {
	// Worst is the most severe status across the whole batch, customized
	// photos included.
	Worst model.Status

	// Echo holds the pre-sanitized affix and fallback texts applied
	// during the pass.
	Echo Echo
}

// ProcessBatch runs the full naming pipeline over one photo batch.
//
// Every non-customized photo has its Description and Status recomputed
// from its OriginalDescription: trailing numbers stripped, capitalization
// corrected, invalid characters replaced, the empty-description fallback
// applied, and the length budget enforced per the configured over-length
// policy. The photos are then grouped by final description and assigned
// unique sequential indexes (see Allocator).
//
// Customized photos are skipped entirely but still contribute their
// retained status to the returned worst-of-batch aggregate.
func ProcessBatch(photos []*model.Photo, cfg *Config) Result {
	// Two digits of index suffice for up to 99 photos; the archive
	// parser's limits guarantee we never need four.
	width := 2
	indexLen := 5 // len(" - NN")
	if len(photos) >= 100 {
		width = 3
		indexLen = 6 // len(" - NNN")
	}

	replacement := cfg.Replacement.Char()

	// The prefix, suffix, and fallback are part of every computed name,
	// so they are sanitized once here rather than per photo. They are
	// deliberately not trimmed: a trailing space on the prefix or a
	// leading space on the suffix is a legitimate choice.
	prefix := ReplaceInvalid(cfg.Prefix, replacement)
	suffix := ReplaceInvalid(cfg.Suffix, replacement)
	undescribed := ReplaceInvalid(cfg.Undescribed, replacement)
	if cfg.Replacement == ReplaceNothing {
		prefix = CollapseWhitespace(prefix)
		suffix = CollapseWhitespace(suffix)
		undescribed = CollapseWhitespace(undescribed)
	}

	allocator := NewAllocator(width)

	for _, photo := range photos {
		if photo.Customized {
			continue
		}
		normalizePhoto(photo, cfg, prefix, suffix, undescribed, indexLen)
		allocator.Register(photo)
	}

	allocator.AppendAll(cfg.IndexUnique)

	worst := model.StatusReady
	for _, photo := range photos {
		worst = model.Worst(worst, photo.Status)
	}

	return Result{
		Worst: worst,
		Echo:  Echo{Prefix: prefix, Suffix: suffix, Undescribed: undescribed},
	}
}

// normalizePhoto recomputes one photo's working description and status.
// The prefix and suffix arrive pre-sanitized; they are copied locally
// because the shortening loop may shrink them for this photo only.
func normalizePhoto(photo *model.Photo, cfg *Config, prefix, suffix, undescribed string, indexLen int) {
	description := photo.OriginalDescription

	// Trailing numbers were recorded as the preferred index when the
	// photo was constructed; here they are only removed from the text.
	if cfg.RemoveTrailingNumbers {
		description = bareTrailingNumber.ReplaceAllString(description, "")
		description = parenTrailingNumber.ReplaceAllString(description, "")
	}

	if cfg.CorrectCaps && description != "" {
		description = correctCaps(description)
	}

	// Unlike the affixes, the description is trimmed after replacement.
	description = strings.TrimSpace(ReplaceInvalid(description, cfg.Replacement.Char()))
	if cfg.Replacement == ReplaceNothing {
		description = CollapseWhitespace(description)
	}

	// The fallback applies only now, after sanitization, so that an
	// original description of pure whitespace or symbols also falls back.
	if description == "" {
		description = undescribed
	}

	total := len(prefix) + len(description) + len(suffix) + indexLen
	limit := min(cfg.UserMaxLength, cfg.OSMaxLength)

	// Shorten with increasingly drastic measures until under the limit.
	// Policies without automatic edits stop immediately; the limit
	// violation is classified after the loop.
shortening:
	for total > limit {
		overflow := total - limit

		switch cfg.OverLength {
		case DropVowels:
			switch {
			case HasVowels(description):
				description = dropVowels(description)
			case HasVowels(suffix):
				suffix = dropVowels(suffix)
			case HasVowels(prefix):
				prefix = dropVowels(prefix)
			default:
				// Nothing left to disemvowel: truncate instead.
				if !truncateParts(&description, &suffix, &prefix, overflow) {
					break shortening
				}
			}

		case Truncate:
			if !truncateParts(&description, &suffix, &prefix, overflow) {
				break shortening
			}

		default:
			break shortening
		}

		total = len(prefix) + len(description) + len(suffix) + indexLen
	}

	switch {
	// The platform ceiling overrides any policy.
	case total > OSMaxPath:
		photo.Status = model.StatusRefuseLength
	case total > limit && cfg.OverLength == Refuse:
		photo.Status = model.StatusRefuseLength
	case total > limit && cfg.OverLength != DoNothing:
		photo.Status = model.StatusWarningLength
	case total < MinimumLength:
		photo.Status = model.StatusRefuseLength
	default:
		photo.Status = model.StatusReady
	}

	// The index text is appended later, once the whole batch is
	// registered.
	photo.Description = prefix + description + suffix
	photo.AssignedIndex = -1
}

// truncateParts removes n characters from the end of the description, or
// the suffix once the description is empty, or the prefix once both are.
// It reports false when all three are already empty.
func truncateParts(description, suffix, prefix *string, n int) bool {
	switch {
	case len(*description) > 0:
		*description = TruncateBy(*description, n)
	case len(*suffix) > 0:
		*suffix = TruncateBy(*suffix, n)
	case len(*prefix) > 0:
		*prefix = TruncateBy(*prefix, n)
	default:
		return false
	}
	return true
}

// correctCaps lower-cases the text and then upper-cases the first
// character of every word. A word starts at the beginning of the text or
// after a literal space; only ASCII letters are adjusted, so interior
// multi-space runs and non-letter characters pass through untouched.
func correctCaps(s string) string {
	runes := []rune(strings.ToLower(s))
	for i, r := range runes {
		if r >= 'a' && r <= 'z' && (i == 0 || runes[i-1] == ' ') {
			runes[i] = r - ('a' - 'A')
		}
	}
	return string(runes)
}
