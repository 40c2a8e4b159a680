package xmlcfg

import (
	"bytes"
	"fmt"

	_ "embed"

	"github.com/goccy/go-json"
	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchemaJSON string

var configSchemaValidator *jsValidator.Schema

// ValidateConfigDocument checks a YAML configuration document against the configuration schema.
// An empty document is valid.
func ValidateConfigDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode xml config: %w", err)
	}
	if doc == nil {
		return nil
	}

	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to convert xml config to json: %w", err)
	}

	instance, err := jsValidator.UnmarshalJSON(bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("failed to convert xml config to json: %w", err)
	}

	if err := configSchemaValidator.Validate(instance); err != nil {
		return fmt.Errorf("invalid xml config: %w", err)
	}

	return nil
}

func init() {
	schema, err := jsValidator.UnmarshalJSON(bytes.NewReader([]byte(configSchemaJSON)))
	if err != nil {
		panic(err)
	}

	c := jsValidator.NewCompiler()
	if err := c.AddResource("config.schema.json", schema); err != nil {
		panic(err)
	}
	configSchemaValidator = c.MustCompile("config.schema.json")
}
