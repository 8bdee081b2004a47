// Package model defines the core data structures shared across
// photo-renamer.
//
// # Photo
//
// Photo represents one photograph from a DASH album archive, carrying the
// immutable original description, the derived preferred-index hint, and the
// mutable working description/status produced by the naming pipeline:
//
//	photo := model.NewPhoto(url, "Kitchen (4)", "6/24/2021 1:31:55 PM")
//	fmt.Println(photo.PreferredIndex) // 4
//
// # Status
//
// Status is the per-photo readiness/error enumeration. Its constants are
// declared best-to-worst, and Worst aggregates a batch:
//
//	worst := model.StatusReady
//	for _, p := range photos {
//	    worst = model.Worst(worst, p.Status)
//	}
//	if worst.BlocksExecution() {
//	    // downloading is not permitted
//	}
package model
