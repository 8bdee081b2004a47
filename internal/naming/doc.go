// Package naming implements the description-to-filename pipeline: it turns
// raw photo descriptions into clean, collision-free, filesystem-safe
// filename stems.
//
// The pipeline has two halves. The normalizer transforms each photo's
// original description according to a Config snapshot (trailing-number
// stripping, capitalization correction, invalid-character replacement,
// fallback for empty descriptions, length-budget enforcement). The
// allocator then groups photos by their normalized description and appends
// a unique, gap-free sequential index to each, honoring per-photo
// preferred-index hints where possible.
//
// ProcessBatch runs both halves over a whole photo batch:
//
//	cfg := settings.ToNamingConfig(outputDir)
//	result := naming.ProcessBatch(photos, cfg)
//	if result.Worst.BlocksExecution() {
//	    // at least one photo refused its computed name
//	}
//
// The pipeline is a pure in-memory computation with no suspension points.
// It is idempotent: each call fully recomputes Description and Status for
// every non-customized photo from its immutable OriginalDescription, so it
// is safe to re-run after every configuration change. Callers must not
// mutate photos concurrently with a pass.
package naming
