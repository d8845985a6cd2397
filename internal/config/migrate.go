package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MigrationSummary contains information about config changes
type MigrationSummary struct {
	FromVersion             int
	ToVersion               int
	DeprecatedFields        []string
	MissingFields           []string
	MissingOptionalSections []string // Top-level optional sections missing (database, webhook, update)
	NeedsUpdate             bool
}

// MigrationFunc is a function that migrates config from version N to N+1
type MigrationFunc func(raw map[string]interface{}, summary *MigrationSummary) error

// migrations is the registry of version-specific migration functions
// Each migration bumps the version by 1
var migrations = map[int]MigrationFunc{
	0: migrateV0ToV1, // v0 (no version field) -> v1
}

// MigrateConfig analyzes and migrates a config file to the latest schema
// Returns the migrated content and a summary of changes
func MigrateConfig(data []byte) ([]byte, *MigrationSummary, error) {
	// Parse the YAML into a generic structure
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Detect current version (default to 0 if not present)
	currentVersion := 0
	if v, ok := raw["version"]; ok {
		if vInt, isInt := v.(int); isInt {
			currentVersion = vInt
		}
	}

	// Validate version is not from the future
	if currentVersion > CurrentConfigVersion {
		return nil, nil, fmt.Errorf(
			"config version %d is newer than supported version %d - please upgrade wekker",
			currentVersion, CurrentConfigVersion,
		)
	}

	// Validate the config matches its declared version (even if no migration needed)
	if err := validateConfigVersion(raw, currentVersion); err != nil {
		return nil, nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Detect missing optional sections
	missingOptionalSections := detectMissingOptionalSections(raw)

	// Already on the latest schema
	if currentVersion == CurrentConfigVersion {
		return data, &MigrationSummary{
			FromVersion:             currentVersion,
			ToVersion:               currentVersion,
			MissingOptionalSections: missingOptionalSections,
			NeedsUpdate:             len(missingOptionalSections) > 0,
		}, nil
	}

	summary := &MigrationSummary{
		FromVersion:             currentVersion,
		ToVersion:               CurrentConfigVersion,
		DeprecatedFields:        []string{},
		MissingFields:           []string{},
		MissingOptionalSections: missingOptionalSections,
		NeedsUpdate:             true,
	}

	// Apply migration chain from current version to latest
	for version := currentVersion; version < CurrentConfigVersion; version++ {
		migrationFunc, exists := migrations[version]
		if !exists {
			return nil, nil, fmt.Errorf("no migration function found for version %d to %d", version, version+1)
		}

		if err := migrationFunc(raw, summary); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate from v%d to v%d: %w", version, version+1, err)
		}
	}

	// Set the new version
	raw["version"] = CurrentConfigVersion

	// Marshal back to YAML with added defaults for missing fields
	updatedYAML, err := marshalWithDefaults(raw, summary.MissingFields)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal updated config: %w", err)
	}

	return updatedYAML, summary, nil
}

// marshalWithDefaults marshals the config and fills in defaults for missing fields
func marshalWithDefaults(raw map[string]interface{}, missingFields []string) ([]byte, error) {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, err
	}

	// Parse into yaml.Node to manipulate with comments
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}

	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		rootNode := node.Content[0]
		if rootNode.Kind == yaml.MappingNode {
			for _, field := range missingFields {
				if field == "snooze_duration" {
					addSnoozeDurationField(rootNode)
				}
			}
		}
	}

	// Marshal with comments preserved
	result, err := yaml.Marshal(&node)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// addSnoozeDurationField appends a snooze_duration entry with its default value
func addSnoozeDurationField(root *yaml.Node) {
	for i := 0; i < len(root.Content); i += 2 {
		if root.Content[i].Value == "snooze_duration" {
			return // Already exists
		}
	}

	keyNode := &yaml.Node{
		Kind:        yaml.ScalarNode,
		Value:       "snooze_duration",
		HeadComment: "How long snooze postpones an alarm",
	}
	valueNode := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: "9m",
	}

	root.Content = append(root.Content, keyNode, valueNode)
}

// detectMissingOptionalSections compares config against the template structure
// to find missing top-level optional sections automatically.
//
// The template config (generated from the Config struct) is the source of
// truth: any new optional section added to the struct is detected as missing
// without manual updates here.
func detectMissingOptionalSections(raw map[string]interface{}) []string {
	var missing []string

	// Generate template to get the complete structure
	templateData, err := GenerateExampleConfig()
	if err != nil {
		// If we can't generate template, return empty (fail-safe)
		return missing
	}

	var templateRaw map[string]interface{}
	if err := yaml.Unmarshal(templateData, &templateRaw); err != nil {
		return missing
	}

	// Scalar settings handled by Load() defaults or migration functions;
	// only whole missing sections are reported here.
	requiredFields := map[string]bool{
		"version":          true,
		"language":         true,
		"natural_language": true,
		"snooze_duration":  true,
	}

	// Compare top-level keys between template and user config
	for key := range templateRaw {
		if requiredFields[key] {
			continue
		}

		if _, exists := raw[key]; !exists {
			missing = append(missing, key)
		}
	}

	return missing
}

// ApplyOptionalSections adds missing optional sections from the template to user's config
func ApplyOptionalSections(userConfig []byte, missingSections []string) ([]byte, error) {
	if len(missingSections) == 0 {
		return userConfig, nil
	}

	// Generate template config to get example values
	templateData, err := GenerateExampleConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to generate template: %w", err)
	}

	// Parse both configs
	var userRaw map[string]interface{}
	if err := yaml.Unmarshal(userConfig, &userRaw); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	var templateRaw map[string]interface{}
	if err := yaml.Unmarshal(templateData, &templateRaw); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	// Copy missing sections from template to user config
	for _, section := range missingSections {
		if value, exists := templateRaw[section]; exists {
			userRaw[section] = value
		}
	}

	// Marshal back to YAML preserving structure
	result, err := yaml.Marshal(userRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return result, nil
}

// VersionValidator validates that a config matches its declared version
type VersionValidator func(raw map[string]interface{}) error

// versionValidators maps version numbers to their validation functions
var versionValidators = map[int]VersionValidator{
	0: validateV0Config,
	1: validateV1Config,
}

// validateConfigVersion validates that the config structure matches its declared version
func validateConfigVersion(raw map[string]interface{}, version int) error {
	validator, exists := versionValidators[version]
	if !exists {
		// No validator means we accept it (for forward compatibility within same major version)
		return nil
	}
	return validator(raw)
}

// validateV0Config validates v0 (legacy) config structure
// V0 configs declare the parsing language under the old 'lang' key
func validateV0Config(raw map[string]interface{}) error {
	_, hasLang := raw["lang"]
	_, hasLanguage := raw["language"]
	if !hasLang && !hasLanguage {
		return fmt.Errorf("v0 config must have a 'lang' setting")
	}

	return nil
}

// validateV1Config validates v1 config structure
func validateV1Config(raw map[string]interface{}) error {
	if _, hasLanguage := raw["language"]; !hasLanguage {
		return fmt.Errorf("v1 config must have a 'language' setting")
	}

	// Full field validation is done by Config.Validate() after loading;
	// this only catches version mismatches.
	return nil
}

// migrateV0ToV1 migrates config from v0 (no version) to v1
// Changes:
// - Renames 'lang' to 'language'
// - Adds snooze_duration with its default when missing
func migrateV0ToV1(raw map[string]interface{}, summary *MigrationSummary) error {
	if v, hasLang := raw["lang"]; hasLang {
		if _, hasLanguage := raw["language"]; !hasLanguage {
			raw["language"] = v
		}
		delete(raw, "lang")
		summary.DeprecatedFields = append(summary.DeprecatedFields, "lang")
	}

	if _, hasSnooze := raw["snooze_duration"]; !hasSnooze {
		summary.MissingFields = append(summary.MissingFields, "snooze_duration")
	}

	return nil
}
