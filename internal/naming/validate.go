package naming

import (
	"strings"

	"github.com/Nius/Photo-Renamer/internal/model"
)

// ValidateCustomized checks a manually entered description and returns the
// status it earns. The photo at the given position in photos is the one
// being edited; its Description holds the new text.
//
// Checks run in order: hard length limits first, then the configured
// limit, then a case-insensitive duplicate scan against every other
// photo's last-committed description, then the invalid-character scan. A
// description over the configured limit is classified by the over-length
// policy alone; the duplicate and symbol checks do not run for it.
func ValidateCustomized(photos []*model.Photo, edited int, cfg *Config) model.Status {
	description := photos[edited].Description

	if len(description) > OSMaxPath || len(description) < MinimumLength {
		return model.StatusRefuseLength
	}

	if len(description) > cfg.UserMaxLength {
		switch cfg.OverLength {
		case Refuse:
			return model.StatusRefuseLength
		case DoNothing:
			return model.StatusReady
		default:
			return model.StatusWarningLength
		}
	}

	for i, other := range photos {
		if i != edited && strings.EqualFold(other.Description, description) {
			return model.StatusRefuseDuplicate
		}
	}

	if ContainsInvalid(description) {
		return model.StatusRefuseSymbol
	}

	return model.StatusReady
}
