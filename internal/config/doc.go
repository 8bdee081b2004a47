// Package config manages persisted application settings.
//
// Settings are stored as a JSON file. Loading a missing file silently
// returns defaults, so the first run needs no setup:
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings.Prefix = "Unit 4 "
//	settings.Save(config.DefaultPath())
//
// The naming pipeline never reads Settings directly; it receives an
// immutable snapshot built per pass:
//
//	cfg := settings.ToNamingConfig(settings.OutputDirectory)
//	result := naming.ProcessBatch(photos, cfg)
//
// Re-fetching the snapshot before each pass guarantees that a pass sees a
// single consistent view of the options even while the UI mutates
// Settings between passes.
package config
