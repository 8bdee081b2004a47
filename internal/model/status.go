package model

// Status represents the readiness or error state of a photo, as surfaced
// in the review table and used to gate execution.
//
// The constants are declared in order of severity, from best to worst.
// All comparisons (IsWorseThan, Worst) rely on that declaration order.
type Status int

const (
	// StatusSaved means the photo has been written to the file system.
	StatusSaved Status = iota

	// StatusReady is the default state: the computed filename is valid
	// and the photo is ready to download.
	StatusReady

	// StatusWarningLength means the computed filename exceeds the
	// configured limit, but execution is still permitted.
	StatusWarningLength

	// StatusErrorMinor means the photo was written but a follow-up step
	// (such as timestamp stamping) failed.
	StatusErrorMinor

	// StatusRefuseLength means the computed filename is shorter than the
	// hard minimum or longer than a hard or configured maximum.
	StatusRefuseLength

	// StatusRefuseSymbol means a manually entered description contains an
	// invalid filename character.
	StatusRefuseSymbol

	// StatusRefuseDuplicate means a manually entered description collides
	// with another photo's description.
	StatusRefuseDuplicate

	// StatusErrorSevere means writing or modifying the file failed.
	StatusErrorSevere
)

// IsWorseThan reports whether s has a strictly higher severity than other.
func (s Status) IsWorseThan(other Status) bool {
	return s > other
}

// IsAtLeastAsBadAs reports whether s is at least as severe as other.
// Unlike IsWorseThan, equal statuses satisfy this check.
func (s Status) IsAtLeastAsBadAs(other Status) bool {
	return s >= other
}

// Worst returns the more severe of two statuses. Ties favor a.
func Worst(a, b Status) Status {
	if b.IsWorseThan(a) {
		return b
	}
	return a
}

// BlocksExecution reports whether this status should prevent the batch
// from downloading. Anything at or above minor-error severity blocks.
func (s Status) BlocksExecution() bool {
	return s.IsAtLeastAsBadAs(StatusErrorMinor)
}

// String returns a short human-readable label for the status.
func (s Status) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusReady:
		return "ready"
	case StatusWarningLength:
		return "too long (warning)"
	case StatusErrorMinor:
		return "minor error"
	case StatusRefuseLength:
		return "bad length"
	case StatusRefuseSymbol:
		return "invalid symbol"
	case StatusRefuseDuplicate:
		return "duplicate name"
	case StatusErrorSevere:
		return "write failed"
	default:
		return "unknown"
	}
}
