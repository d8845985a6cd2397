package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GenerateExampleConfig creates an example configuration with helpful comments
func GenerateExampleConfig() ([]byte, error) {
	// Create example config structure with placeholder values
	exampleConfig := Config{
		Version:         CurrentConfigVersion,
		Language:        "en",
		NaturalLanguage: false,
		SnoozeDuration:  "9m",
		Database: DatabaseConfig{
			Path: "",
		},
		Webhook: WebhookConfig{
			Enabled: false,
			URL:     "https://example.com/wekker-hook",
		},
		Update: UpdateConfig{
			Disabled:      false,
			CheckInterval: "24h",
			Channel:       "stable",
		},
	}

	// Encode to YAML node for comment manipulation
	var node yaml.Node
	if err := node.Encode(exampleConfig); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	// Add helpful comments
	addConfigComments(&node)

	// Marshal with comments preserved
	result, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return result, nil
}

// addConfigComments adds helpful comments to the configuration structure
func addConfigComments(node *yaml.Node) {
	if node.Kind != yaml.MappingNode || len(node.Content) == 0 {
		return
	}

	// Add header comment to the root mapping
	node.HeadComment = "Wekker Configuration\nAlarm expressions are parsed in the configured language"

	// Add comments to each section
	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		switch keyNode.Value {
		case "language":
			keyNode.HeadComment = "Language for alarm expressions: en, nl, de, fr, es"
		case "natural_language":
			keyNode.HeadComment = "Try the natural-language parser before the rule cascade (English only)"
		case "snooze_duration":
			keyNode.HeadComment = "How long snooze postpones an alarm"
		case "database":
			valueNode.HeadComment = "Database configuration (optional)"
		case "webhook":
			valueNode.HeadComment = "Webhook notifications for alarm events (optional)"
		case "update":
			valueNode.HeadComment = "Self-update behaviour (optional)"
		}
	}
}
