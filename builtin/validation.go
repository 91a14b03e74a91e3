package builtin

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateNodeConfig validates a node configuration against its schema.
func ValidateNodeConfig(meta *NodeMetadata, config map[string]any) error {
	if len(meta.ConfigSchema) == 0 {
		// No schema defined, skip validation
		return nil
	}

	// Round-trip through JSON so YAML-decoded values use JSON's type set.
	schemaJSON, err := json.Marshal(meta.ConfigSchema)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if config == nil {
		config = map[string]any{}
	}
	configJSON, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(configJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("config validation failed: %s", joinErrors(result.Errors()))
	}

	return nil
}

// joinErrors flattens schema violations into one "; "-separated message so a
// config with several mistakes reports all of them at once.
func joinErrors(errs []gojsonschema.ResultError) string {
	var b strings.Builder
	for i, verr := range errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(verr.String())
	}
	return b.String()
}
