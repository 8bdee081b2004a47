package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Nius/Photo-Renamer/internal/naming"
)

// Settings holds all configuration options.
type Settings struct {
	// Paths
	OutputDirectory  string `json:"output_directory"`
	AutoUseInputDir  bool   `json:"auto_use_input_dir"`
	DeleteInputFiles bool   `json:"delete_input_files"`

	// File naming
	Prefix                string `json:"prefix"`
	Suffix                string `json:"suffix"`
	UndescribedTitle      string `json:"undescribed_title"`
	ReplacementCharacter  string `json:"replacement_character"` // hyphen, comma, nothing
	RemoveTrailingNumbers bool   `json:"remove_trailing_numbers"`
	CorrectCaps           bool   `json:"correct_caps"`
	IndexUnique           bool   `json:"index_unique_descriptions"`
	OverLengthBehavior    string `json:"over_length_behavior"` // refuse, warn, truncate, drop_vowels, do_nothing
	MaximumFilenameLength int    `json:"maximum_filename_length"`

	// Download settings
	MaxConcurrentDownloads int     `json:"max_concurrent_downloads"`
	DownloadMaxRetries     int     `json:"download_max_retries"`
	DownloadRetryCooldown  float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent  float64 `json:"download_retry_exponent"`

	// Post-processing
	UpdateCreationDate bool `json:"update_creation_date"`
	ConvertToJPG       bool `json:"convert_to_jpg"`
	DownscaleMaxSize   int  `json:"downscale_max_size"` // 0 disables downscaling
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		OutputDirectory:  homeDir,
		AutoUseInputDir:  true,
		DeleteInputFiles: true,

		UndescribedTitle:      "Undescribed",
		ReplacementCharacter:  "hyphen",
		RemoveTrailingNumbers: true,
		CorrectCaps:           true,
		IndexUnique:           true,
		OverLengthBehavior:    "warn",
		MaximumFilenameLength: 64,

		MaxConcurrentDownloads: 4,
		DownloadMaxRetries:     7,
		DownloadRetryCooldown:  0.2,
		DownloadRetryExponent:  4.0,

		UpdateCreationDate: true,
		ConvertToJPG:       false,
		DownscaleMaxSize:   0,
	}
}

// Load reads settings from a JSON file. A missing file is not an error:
// defaults are returned so a first run works without any setup.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the per-user settings file location, so that two
// users sharing a working directory (a network drive, say) do not fight
// over one file.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "photo-renamer", "settings.json")
}

// ToNamingConfig converts settings into the read-only snapshot consumed by
// one naming pipeline pass. The OS-derived length limit is computed from
// the output directory: the platform path ceiling minus the directory path
// length.
func (s *Settings) ToNamingConfig(outputDir string) *naming.Config {
	var replacement naming.ReplacementChar
	switch s.ReplacementCharacter {
	case "comma":
		replacement = naming.ReplaceComma
	case "nothing":
		replacement = naming.ReplaceNothing
	default:
		replacement = naming.ReplaceHyphen
	}

	var overLength naming.OverlengthBehavior
	switch s.OverLengthBehavior {
	case "warn":
		overLength = naming.Warn
	case "truncate":
		overLength = naming.Truncate
	case "drop_vowels":
		overLength = naming.DropVowels
	case "do_nothing":
		overLength = naming.DoNothing
	default:
		// Unrecognized values fail safe.
		overLength = naming.Refuse
	}

	return &naming.Config{
		Prefix:                s.Prefix,
		Suffix:                s.Suffix,
		Undescribed:           s.UndescribedTitle,
		Replacement:           replacement,
		RemoveTrailingNumbers: s.RemoveTrailingNumbers,
		CorrectCaps:           s.CorrectCaps,
		IndexUnique:           s.IndexUnique,
		OverLength:            overLength,
		UserMaxLength:         s.MaximumFilenameLength,
		OSMaxLength:           naming.OSMaxPath - len(outputDir),
	}
}
