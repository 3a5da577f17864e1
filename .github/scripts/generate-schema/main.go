// Package main provides a CLI tool to generate JSON schema from devstrap config types.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/devstrap/devstrap/pkg/apis/bootstrap/v1alpha1"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o600
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args); err != nil {
		os.Exit(1)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    customTypeMapper,
	}
	schema := reflector.Reflect(&v1alpha1.Bootstrap{})

	customizeSchema(schema)

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "Error marshaling schema: %v\n", err)
		return fmt.Errorf("marshal schema: %w", err)
	}

	outputPath := "schemas/devstrap-config.schema.json"
	if len(args) > 1 {
		outputPath = args[1]
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		fmt.Fprintf(stderr, "Error creating directory: %v\n", err)
		return fmt.Errorf("create directory: %w", err)
	}

	if err := os.WriteFile(outputPath, schemaJSON, filePermissions); err != nil {
		fmt.Fprintf(stderr, "Error writing schema: %v\n", err)
		return fmt.Errorf("write schema: %w", err)
	}

	fmt.Fprintf(stdout, "Successfully generated JSON schema at %s\n", outputPath)
	return nil
}

// customizeSchema applies all schema customizations.
func customizeSchema(schema *jsonschema.Schema) {
	schema.ID = ""
	schema.Title = "devstrap Bootstrap Configuration"
	schema.Description = "JSON schema for devstrap bootstrap configuration (devstrap.yaml)"

	// Clear required everywhere (all fields use omitzero and have defaults)
	walkSchema(schema, func(s *jsonschema.Schema) {
		s.Required = nil
	})

	// Set kind/apiVersion enums from constants
	if schema.Properties != nil {
		if p, ok := schema.Properties.Get("kind"); ok && p != nil {
			p.Enum = []any{v1alpha1.Kind}
		}
		if p, ok := schema.Properties.Get("apiVersion"); ok && p != nil {
			p.Enum = []any{v1alpha1.APIVersion}
		}
	}
}

// walkSchema traverses the schema tree and calls fn on each node.
func walkSchema(schema *jsonschema.Schema, fn func(*jsonschema.Schema)) {
	if schema == nil {
		return
	}

	fn(schema)

	if schema.Properties != nil {
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			walkSchema(pair.Value, fn)
		}
	}
	if schema.Items != nil {
		walkSchema(schema.Items, fn)
	}
	if schema.AdditionalProperties != nil {
		walkSchema(schema.AdditionalProperties, fn)
	}
}

// customTypeMapper provides custom schema mappings for v1alpha1 types.
func customTypeMapper(t reflect.Type) *jsonschema.Schema {
	if t == reflect.TypeFor[time.Duration]() {
		return &jsonschema.Schema{
			Type:    "string",
			Pattern: "^[0-9]+(ns|us|µs|ms|s|m|h)$",
		}
	}

	return nil
}
