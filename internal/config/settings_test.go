package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Nius/Photo-Renamer/internal/naming"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.UndescribedTitle != "Undescribed" {
		t.Errorf("UndescribedTitle = %q, want %q", s.UndescribedTitle, "Undescribed")
	}
	if s.MaximumFilenameLength != 64 {
		t.Errorf("MaximumFilenameLength = %d, want 64", s.MaximumFilenameLength)
	}
	if s.OverLengthBehavior != "warn" {
		t.Errorf("OverLengthBehavior = %q, want %q", s.OverLengthBehavior, "warn")
	}
	if s.MaxConcurrentDownloads != 4 {
		t.Errorf("MaxConcurrentDownloads = %d, want 4", s.MaxConcurrentDownloads)
	}
	if !s.UpdateCreationDate {
		t.Error("UpdateCreationDate should default to true")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "settings.json")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.MaximumFilenameLength != 64 {
		t.Errorf("MaximumFilenameLength = %d, want default 64", s.MaximumFilenameLength)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.json")

	s := DefaultSettings()
	s.Prefix = "Unit 4 "
	s.ReplacementCharacter = "comma"
	s.MaximumFilenameLength = 48

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Prefix != "Unit 4 " {
		t.Errorf("Prefix = %q, want %q", loaded.Prefix, "Unit 4 ")
	}
	if loaded.ReplacementCharacter != "comma" {
		t.Errorf("ReplacementCharacter = %q, want %q", loaded.ReplacementCharacter, "comma")
	}
	if loaded.MaximumFilenameLength != 48 {
		t.Errorf("MaximumFilenameLength = %d, want 48", loaded.MaximumFilenameLength)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"prefix": "Attic "}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Prefix != "Attic " {
		t.Errorf("Prefix = %q, want %q", s.Prefix, "Attic ")
	}
	if s.UndescribedTitle != "Undescribed" {
		t.Errorf("UndescribedTitle = %q, want default %q", s.UndescribedTitle, "Undescribed")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed JSON")
	}
}

func TestToNamingConfig(t *testing.T) {
	s := DefaultSettings()
	s.Prefix = "P "
	s.Suffix = " S"
	s.ReplacementCharacter = "nothing"
	s.OverLengthBehavior = "drop_vowels"
	s.MaximumFilenameLength = 40

	cfg := s.ToNamingConfig("/photos/archive")

	if cfg.Replacement != naming.ReplaceNothing {
		t.Errorf("Replacement = %v, want ReplaceNothing", cfg.Replacement)
	}
	if cfg.OverLength != naming.DropVowels {
		t.Errorf("OverLength = %v, want DropVowels", cfg.OverLength)
	}
	if cfg.UserMaxLength != 40 {
		t.Errorf("UserMaxLength = %d, want 40", cfg.UserMaxLength)
	}
	want := naming.OSMaxPath - len("/photos/archive")
	if cfg.OSMaxLength != want {
		t.Errorf("OSMaxLength = %d, want %d", cfg.OSMaxLength, want)
	}
}

func TestToNamingConfigUnknownBehaviorRefuses(t *testing.T) {
	s := DefaultSettings()
	s.OverLengthBehavior = "explode"

	cfg := s.ToNamingConfig("/x")
	if cfg.OverLength != naming.Refuse {
		t.Errorf("OverLength = %v, want Refuse for unknown value", cfg.OverLength)
	}
}
