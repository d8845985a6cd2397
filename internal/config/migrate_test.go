package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestMigrateV0ToV1(t *testing.T) {
	input := []byte("lang: nl\nnatural_language: true\n")

	migrated, summary, err := MigrateConfig(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.FromVersion != 0 || summary.ToVersion != 1 {
		t.Errorf("expected 0 -> 1, got %d -> %d", summary.FromVersion, summary.ToVersion)
	}
	if !summary.NeedsUpdate {
		t.Error("expected NeedsUpdate")
	}
	if len(summary.DeprecatedFields) != 1 || summary.DeprecatedFields[0] != "lang" {
		t.Errorf("expected deprecated [lang], got %v", summary.DeprecatedFields)
	}
	if len(summary.MissingFields) != 1 || summary.MissingFields[0] != "snooze_duration" {
		t.Errorf("expected missing [snooze_duration], got %v", summary.MissingFields)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(migrated, &raw); err != nil {
		t.Fatalf("migrated config is not valid YAML: %v", err)
	}
	if raw["version"] != 1 {
		t.Errorf("expected version 1, got %v", raw["version"])
	}
	if raw["language"] != "nl" {
		t.Errorf("expected language nl, got %v", raw["language"])
	}
	if _, hasLang := raw["lang"]; hasLang {
		t.Error("deprecated 'lang' key should be removed")
	}
	if raw["snooze_duration"] != "9m" {
		t.Errorf("expected default snooze_duration, got %v", raw["snooze_duration"])
	}
	if raw["natural_language"] != true {
		t.Error("unrelated settings must survive migration")
	}
}

func TestMigratePreservesExistingLanguageKey(t *testing.T) {
	input := []byte("lang: nl\nlanguage: de\n")

	migrated, _, err := MigrateConfig(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(migrated, &raw); err != nil {
		t.Fatalf("migrated config is not valid YAML: %v", err)
	}
	if raw["language"] != "de" {
		t.Errorf("existing language key must win, got %v", raw["language"])
	}
}

func TestMigrateCurrentVersionUnchanged(t *testing.T) {
	input := []byte(`version: 1
language: en
natural_language: false
snooze_duration: 9m
database:
  path: ""
webhook:
  enabled: false
  url: ""
update:
  disabled: false
  check_interval: 24h
  channel: stable
`)

	migrated, summary, err := MigrateConfig(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.NeedsUpdate {
		t.Errorf("complete current-version config should not need update: %+v", summary)
	}
	if string(migrated) != string(input) {
		t.Error("content must be returned unchanged when no migration is needed")
	}
}

func TestMigrateDetectsMissingOptionalSections(t *testing.T) {
	input := []byte("version: 1\nlanguage: en\n")

	migrated, summary, err := MigrateConfig(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.NeedsUpdate {
		t.Error("expected NeedsUpdate for missing optional sections")
	}
	if summary.FromVersion != 1 || summary.ToVersion != 1 {
		t.Errorf("expected 1 -> 1, got %d -> %d", summary.FromVersion, summary.ToVersion)
	}
	if string(migrated) != string(input) {
		t.Error("content must not change until sections are applied")
	}

	expected := map[string]bool{"database": true, "webhook": true, "update": true}
	if len(summary.MissingOptionalSections) != len(expected) {
		t.Fatalf("expected %d missing sections, got %v", len(expected), summary.MissingOptionalSections)
	}
	for _, section := range summary.MissingOptionalSections {
		if !expected[section] {
			t.Errorf("unexpected missing section %q", section)
		}
	}
}

func TestApplyOptionalSections(t *testing.T) {
	input := []byte("version: 1\nlanguage: en\n")

	updated, err := ApplyOptionalSections(input, []string{"webhook", "update"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(updated, &raw); err != nil {
		t.Fatalf("updated config is not valid YAML: %v", err)
	}
	if _, ok := raw["webhook"]; !ok {
		t.Error("webhook section should be added")
	}
	if _, ok := raw["update"]; !ok {
		t.Error("update section should be added")
	}
	if _, ok := raw["database"]; ok {
		t.Error("sections not requested must not be added")
	}
	if raw["language"] != "en" {
		t.Error("existing settings must be preserved")
	}
}

func TestApplyOptionalSectionsNoop(t *testing.T) {
	input := []byte("version: 1\nlanguage: en\n")

	updated, err := ApplyOptionalSections(input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(updated) != string(input) {
		t.Error("no sections requested should be a no-op")
	}
}

func TestMigrateFutureVersion(t *testing.T) {
	input := []byte("version: 99\nlanguage: en\n")

	_, _, err := MigrateConfig(input)
	if err == nil {
		t.Fatal("expected error for future config version")
	}
	if !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMigrateRejectsInvalidV0(t *testing.T) {
	input := []byte("snooze_duration: 9m\n")

	_, _, err := MigrateConfig(input)
	if err == nil {
		t.Fatal("expected error for v0 config without a language")
	}
}

func TestMigrateRejectsInvalidV1(t *testing.T) {
	input := []byte("version: 1\nsnooze_duration: 9m\n")

	_, _, err := MigrateConfig(input)
	if err == nil {
		t.Fatal("expected error for v1 config without language")
	}
}

func TestMigrateInvalidYAML(t *testing.T) {
	if _, _, err := MigrateConfig([]byte("language: [unclosed")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
